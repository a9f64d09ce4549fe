package relay

import (
	"context"
	"log"
	"net/url"

	"github.com/nao1215/wecom-proxy/internal/config"
	"github.com/nao1215/wecom-proxy/pkg/httpclient"
)

const (
	// tokenPath はアクセストークン取得APIのパス。
	tokenPath = "/cgi-bin/gettoken"
	// sendPath はアプリメッセージ送信APIのパス。
	sendPath = "/cgi-bin/message/send"
)

// Relay はメッセージをWeComに中継する。
// 保持する値は生成後に変更されないため、複数のgoroutineから同時に使用できる。
type Relay struct {
	// client はWeComAPIへのHTTPクライアント。全リクエストで共有する。
	client *httpclient.Client
	// identity はWeComの認証情報。
	identity config.BackendIdentity
}

// New は新しいRelayを生成する。
func New(client *httpclient.Client, identity config.BackendIdentity) *Relay {
	return &Relay{
		client:   client,
		identity: identity,
	}
}

// Deliver はアクセストークンを取得し、messageをWeComに送信する。
// WeComのレスポンスは解釈せずにそのまま返す。
// トークン取得に失敗した場合、送信は行わない。
func (r *Relay) Deliver(ctx context.Context, message string) (*httpclient.Response, error) {
	token, err := r.fetchToken(ctx)
	if err != nil {
		return nil, err
	}
	return r.send(ctx, token, NewEnvelope(message, r.identity))
}

// fetchToken はgettoken APIからアクセストークンを取得する。
func (r *Relay) fetchToken(ctx context.Context) (string, error) {
	query := url.Values{}
	query.Set("corpid", r.identity.CorpID)
	query.Set("corpsecret", r.identity.CorpSecret)

	var resp tokenResponse
	if err := r.client.GetJSON(ctx, tokenPath, query, &resp.body); err != nil {
		return "", &TokenFetchError{Err: err}
	}

	// access_tokenが無くても失敗扱いにせず空のまま送信に進む。
	// 送信側でWeComが拒否するため、呼び出し元にはそのエラー応答が返る。
	// TODO: errcodeが0以外ならTokenFetchErrorを返す。既存クライアントの挙動確認後に切り替える。
	token := resp.accessToken()
	if token == "" {
		log.Printf("access_tokenが取得できませんでした: errcode=%v, errmsg=%v", resp.field("errcode"), resp.field("errmsg"))
	}
	return token, nil
}

// send はmessage/send APIにEnvelopeを送信する。
func (r *Relay) send(ctx context.Context, token string, envelope Envelope) (*httpclient.Response, error) {
	query := url.Values{}
	query.Set("access_token", token)

	resp, err := r.client.PostJSON(ctx, sendPath, query, envelope)
	if err != nil {
		return nil, &MessageSendError{Err: err}
	}
	return resp, nil
}
