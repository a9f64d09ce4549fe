package proxy

// relayRequest は中継リクエストのパラメータ。
// GETではクエリ文字列、POSTではJSONボディから読み取る。
// 旧クライアント向けに auth_key / msg の名前も受け付ける。
type relayRequest struct {
	// ProvidedSecret は呼び出し元が提示した共有シークレット。
	ProvidedSecret string `form:"providedSecret" json:"providedSecret"`
	// Text は送信するメッセージ本文。
	Text string `form:"text" json:"text"`
	// AuthKey はProvidedSecretの旧名。
	AuthKey string `form:"auth_key" json:"auth_key"`
	// Msg はTextの旧名。
	Msg string `form:"msg" json:"msg"`
}

// secret は提示された共有シークレットを返す。両方ある場合はProvidedSecretを優先する。
func (r relayRequest) secret() string {
	if r.ProvidedSecret != "" {
		return r.ProvidedSecret
	}
	return r.AuthKey
}

// message は送信するメッセージ本文を返す。両方ある場合はTextを優先する。
func (r relayRequest) message() string {
	if r.Text != "" {
		return r.Text
	}
	return r.Msg
}
