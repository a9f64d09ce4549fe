// WeComメッセージ中継サービスのエントリポイント。
// 共有シークレットで認証したリクエストを、WeComアプリメッセージとして転送する。
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nao1215/wecom-proxy/internal/config"
	"github.com/nao1215/wecom-proxy/internal/proxy"
	"github.com/spf13/cobra"
)

// version はビルド時に -ldflags で上書きされる。
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd はルートコマンドを生成する。引数なしで実行するとサーバーを起動する。
func newRootCmd() *cobra.Command {
	var port string

	root := &cobra.Command{
		Use:           "wecom-proxy",
		Short:         "WeComアプリメッセージの中継サーバー",
		Long:          "共有シークレットで認証したHTTPリクエストを、WeComアプリメッセージとして転送します。",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(port)
			if err != nil {
				log.Printf("設定の読み込みに失敗: %v", err)
				return err
			}

			server := proxy.NewServer(cfg)

			log.Printf("WeCom中継サービスを起動します: :%s", cfg.Port)
			if err := server.Run(); err != nil {
				log.Printf("WeCom中継サービスの起動に失敗: %v", err)
				return err
			}
			return nil
		},
	}
	root.Flags().StringVarP(&port, "port", "p", "", "リッスンポート（環境変数PORTより優先、既定値3000）")

	root.AddCommand(newVersionCmd())
	return root
}

// loadConfig は環境変数から設定を読み込み、portが指定されていれば上書きする。
func loadConfig(port string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if port != "" {
		cfg.Port = port
	}
	return cfg, nil
}

// newVersionCmd はバージョンを表示するサブコマンドを生成する。
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "バージョンを表示する",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wecom-proxy %s\n", version)
		},
	}
}
