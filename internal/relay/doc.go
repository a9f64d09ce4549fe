// Package relay はWeComアプリメッセージの中継処理を提供する。
//
// 1回の中継は2つの外部呼び出しを順番に行う。まずアプリの認証情報で
// アクセストークンを取得し、次にそのトークンでメッセージを送信する。
// トークンはキャッシュせず、リクエストごとに取得する。リトライは行わない。
package relay
