package proxy

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/wecom-proxy/internal/config"
	"github.com/nao1215/wecom-proxy/internal/gatekeeper"
	"github.com/nao1215/wecom-proxy/internal/relay"
	"github.com/nao1215/wecom-proxy/pkg/httpclient"
	"github.com/nao1215/wecom-proxy/pkg/middleware"
)

// unauthorizedBody は共有シークレットが一致しない場合のレスポンスボディ。
const unauthorizedBody = "Wrong auth_key"

// Deliverer はメッセージをバックエンドに届ける。
type Deliverer interface {
	Deliver(ctx context.Context, message string) (*httpclient.Response, error)
}

// Server は中継サービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// authKey は呼び出し元が提示すべき共有シークレット。
	authKey string
	// deliverer はWeComへの中継処理。
	deliverer Deliverer
}

// NewServer は設定から新しい中継サーバーを生成する。
// WeComへのHTTPクライアントはここで1つだけ生成し、全リクエストで共有する。
func NewServer(cfg *config.Config) *Server {
	client := httpclient.New(cfg.APIBase)

	s := &Server{
		router:    newRouter(cfg.AllowedOrigins, gin.DefaultWriter),
		port:      cfg.Port,
		authKey:   cfg.AuthKey,
		deliverer: relay.New(client, cfg.Identity),
	}
	s.setupRoutes()

	return s
}

// newRouter は共通ミドルウェアを適用したルーターを生成する。
// アクセスログはRecoveryより外側に置き、パニックしたリクエストも記録する。
func newRouter(allowedOrigins []string, accessLogOutput io.Writer) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLogTo(accessLogOutput))
	router.Use(middleware.Recovery())
	if len(allowedOrigins) > 0 {
		router.Use(middleware.CORS(allowedOrigins))
	}
	return router
}

// Run はHTTPサーバーを起動する。全インターフェースでリッスンする。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// Handler はサーバーのhttp.Handlerを返す。
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// /wecom は旧クライアント向けの別名
	for _, path := range []string{"/relay", "/wecom"} {
		s.router.GET(path, s.handleRelayQuery())
		s.router.POST(path, s.handleRelayJSON())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "wecom-proxy"})
	})
}

// handleRelayQuery はクエリ文字列から中継リクエストを読み取るハンドラを返す。
func (s *Server) handleRelayQuery() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req relayRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}
		s.relay(c, req)
	}
}

// handleRelayJSON はJSONボディから中継リクエストを読み取るハンドラを返す。
func (s *Server) handleRelayJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req relayRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}
		s.relay(c, req)
	}
}

// relay は認証を行い、通過した場合のみWeComへ中継する共通処理。
func (s *Server) relay(c *gin.Context, req relayRequest) {
	requestID := middleware.GetRequestID(c)

	if err := gatekeeper.Check(req.secret(), s.authKey); err != nil {
		log.Printf("認証エラー: request_id=%s, client_ip=%s, error=%v", requestID, c.ClientIP(), err)
		c.String(http.StatusUnauthorized, unauthorizedBody)
		return
	}

	// 本文が空でもそのまま中継する
	ctx := httpclient.WithRequestID(c.Request.Context(), requestID)
	resp, err := s.deliverer.Deliver(ctx, req.message())
	if err != nil {
		log.Printf("中継エラー: request_id=%s, error=%v", requestID, err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	// WeComのレスポンスは加工せずそのまま返す
	contentType := resp.ContentType
	if contentType == "" {
		contentType = "text/plain; charset=utf-8"
	}
	c.Data(resp.StatusCode, contentType, resp.Body)
}
