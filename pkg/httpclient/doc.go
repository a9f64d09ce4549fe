// Package httpclient は外部APIとのHTTP通信を行うクライアントを提供する。
//
// WeComのトークン取得APIやメッセージ送信APIを呼び出す際に使用する。
// クライアントはプロセス全体で1つだけ生成し、コネクションプールを
// 全リクエストで共有する。
package httpclient
