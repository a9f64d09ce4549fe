// Package gatekeeper は呼び出し元が提示した共有シークレットを検証する。
package gatekeeper

import (
	"crypto/subtle"
	"errors"
)

// ErrUnauthorized は共有シークレットが一致しないことを表す。
var ErrUnauthorized = errors.New("共有シークレットが一致しません")

// Authorize はprovidedとconfiguredが完全に一致する場合にtrueを返す。
// 大文字小文字を区別し、正規化は行わない。比較は定数時間で行う。
func Authorize(provided, configured string) bool {
	return subtle.ConstantTimeCompare([]byte(provided), []byte(configured)) == 1
}

// Check はAuthorizeの結果をエラーとして返す。
func Check(provided, configured string) error {
	if !Authorize(provided, configured) {
		return ErrUnauthorized
	}
	return nil
}
