package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/IMBotPlatform/yunhu2onebot/pkg/platform/yunhu"
)

// rootOptions 保存全局 flag。
type rootOptions struct {
	configPath string
	verbose    bool
}

// newRootCmd 构建 Cobra 命令树。
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "yunhu2onebot",
		Short: "Convert Yunhu webhook events into OneBot 12 events",
		Example: "  yunhu2onebot convert -i event.json\n" +
			"  yunhu2onebot convert --lines --query '$.message[0].type' < events.jsonl\n" +
			"  yunhu2onebot replay --config config.yaml < events.jsonl",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to YAML config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log skipped events to stderr")
	root.AddCommand(newConvertCmd(opts))
	root.AddCommand(newReplayCmd(opts))
	return root
}

// loadConverter 读取配置并创建转换器；未指定配置文件时使用默认值。
func (o *rootOptions) loadConverter(stderr io.Writer) (*yunhu.Converter, error) {
	cfg := yunhu.DefaultConfig()
	if o.configPath != "" {
		loaded, err := yunhu.LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}
	return yunhu.NewConverter(
		yunhu.WithConfig(cfg),
		yunhu.WithLogger(o.logger(stderr)),
	), nil
}

// logger 在 --verbose 时返回写向 stderr 的日志器，否则返回 nil（静默）。
func (o *rootOptions) logger(stderr io.Writer) *log.Logger {
	if !o.verbose {
		return nil
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return log.New(stderr, "yunhu2onebot: ", log.LstdFlags)
}
