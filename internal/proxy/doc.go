// Package proxy はWeComメッセージ中継サービスのHTTPサーバーを提供する。
//
// 呼び出し元から受け取ったメッセージを共有シークレットで認証し、
// relayパッケージを通じてWeComに転送する。GET（クエリ文字列）と
// POST（JSONボディ）の2つの入口を持つが、抽出後の処理は共通である。
package proxy
