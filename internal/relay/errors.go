package relay

import "fmt"

// TokenFetchError はアクセストークンの取得に失敗したことを表す。
type TokenFetchError struct {
	// Err は原因となったエラー。
	Err error
}

func (e *TokenFetchError) Error() string {
	return fmt.Sprintf("アクセストークンの取得に失敗: %v", e.Err)
}

func (e *TokenFetchError) Unwrap() error {
	return e.Err
}

// MessageSendError はメッセージの送信に失敗したことを表す。
type MessageSendError struct {
	// Err は原因となったエラー。
	Err error
}

func (e *MessageSendError) Error() string {
	return fmt.Sprintf("メッセージの送信に失敗: %v", e.Err)
}

func (e *MessageSendError) Unwrap() error {
	return e.Err
}
