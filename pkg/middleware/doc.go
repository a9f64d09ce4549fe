// Package middleware はプロキシのHTTP APIで使用するGinミドルウェアを提供する。
//
// リクエストIDの付与、パニックリカバリ、CORS設定を含む。
package middleware
