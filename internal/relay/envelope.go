package relay

import "github.com/nao1215/wecom-proxy/internal/config"

const (
	// msgTypeText はテキストメッセージを表すmsgtype。
	msgTypeText = "text"
	// duplicateCheckInterval は同一内容のメッセージを重複とみなす秒数。
	duplicateCheckInterval = 600
)

// tokenResponse はgettoken APIのレスポンス。
// オブジェクト以外のJSONが返っても失敗させないため、汎用の値として受ける。
type tokenResponse struct {
	body any
}

// accessToken はaccess_tokenを文字列として返す。存在しないか文字列でなければ空文字列。
func (r tokenResponse) accessToken() string {
	m, ok := r.body.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := m["access_token"].(string)
	return s
}

// field はトップレベルのフィールド値を返す。ログ出力用。
func (r tokenResponse) field(key string) any {
	m, _ := r.body.(map[string]any)
	return m[key]
}

// Envelope はmessage/send APIに送信するテキストメッセージ。
type Envelope struct {
	// ToUser は宛先ユーザー。"@all"でアプリの全メンバー。
	ToUser string `json:"touser"`
	// AgentID はアプリのAgentID。
	AgentID string `json:"agentid"`
	// MsgType は常に"text"。
	MsgType string `json:"msgtype"`
	// DuplicateCheckInterval は重複チェックの間隔（秒）。常に600。
	DuplicateCheckInterval int `json:"duplicate_check_interval"`
	// Text はメッセージ本文。
	Text TextContent `json:"text"`
}

// TextContent はテキストメッセージの本文。
type TextContent struct {
	// Content は送信するテキスト。
	Content string `json:"content"`
}

// NewEnvelope は認証情報とメッセージ本文から送信用のEnvelopeを生成する。
func NewEnvelope(message string, identity config.BackendIdentity) Envelope {
	return Envelope{
		ToUser:                 identity.DefaultRecipient,
		AgentID:                identity.AgentID,
		MsgType:                msgTypeText,
		DuplicateCheckInterval: duplicateCheckInterval,
		Text:                   TextContent{Content: message},
	}
}
