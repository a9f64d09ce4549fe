package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultRecipient はWECOM_TOUIDが未設定の場合の宛先。アプリの全メンバーを表す。
const DefaultRecipient = "@all"

// BackendIdentity はWeComに対するこのプロキシ自身の認証情報。
// 起動時に一度だけ読み込まれ、以降は読み取り専用で全リクエストから共有される。
type BackendIdentity struct {
	// CorpID は企業ID。
	CorpID string `env:"WECOM_CID,required,notEmpty"`
	// CorpSecret はアプリのSecret。
	CorpSecret string `env:"WECOM_SECRET,required,notEmpty"`
	// AgentID はアプリのAgentID。
	AgentID string `env:"WECOM_AID,required,notEmpty"`
	// DefaultRecipient はメッセージの宛先ユーザー。
	DefaultRecipient string `env:"WECOM_TOUID" envDefault:"@all"`
}

// Config はプロセス全体の設定。
type Config struct {
	// AuthKey は呼び出し元が提示すべき共有シークレット。
	AuthKey string `env:"AUTH_KEY,required,notEmpty"`
	// Identity はWeComの認証情報。
	Identity BackendIdentity
	// APIBase はWeComAPIのベースURL。
	APIBase string `env:"WECOM_API_BASE" envDefault:"https://qyapi.weixin.qq.com"`
	// Port はHTTPサーバーのリッスンポート。
	Port string `env:"PORT" envDefault:"3000"`
	// AllowedOrigins はCORSを許可するオリジン。空ならCORSヘッダーを付与しない。
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// ConfigurationError は必須の環境変数が欠けているなど、設定が不正であることを表す。
// このエラーが返った場合、プロセスは起動してはならない。
type ConfigurationError struct {
	// Missing は未設定だった環境変数名。
	Missing []string
	// Err は元のエラー。
	Err error
}

func (e *ConfigurationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("必須の環境変数が設定されていません: %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("設定の読み込みに失敗: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Load は環境変数から設定を読み込む。
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom は指定されたマップから設定を読み込む。
// environmentがnilの場合はプロセスの環境変数を使用する。
func LoadFrom(environment map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, toConfigurationError(err)
	}
	return cfg, nil
}

// toConfigurationError はcaarlos0/envのエラーをConfigurationErrorに変換する。
func toConfigurationError(err error) *ConfigurationError {
	cfgErr := &ConfigurationError{Err: err}

	var aggErr env.AggregateError
	if !errors.As(err, &aggErr) {
		return cfgErr
	}
	for _, e := range aggErr.Errors {
		var notSet env.VarIsNotSetError
		var empty env.EmptyVarError
		switch {
		case errors.As(e, &notSet):
			cfgErr.Missing = append(cfgErr.Missing, notSet.Key)
		case errors.As(e, &empty):
			cfgErr.Missing = append(cfgErr.Missing, empty.Key)
		}
	}
	return cfgErr
}
