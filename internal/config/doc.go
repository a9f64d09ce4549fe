// Package config は環境変数からプロセス設定を読み込む。
//
// 共有シークレットとWeComの認証情報は起動時に一度だけ読み込まれ、
// 以降は変更されない。必須の値が欠けている場合は ConfigurationError を返し、
// サーバーはリッスンを開始しない。
package config
