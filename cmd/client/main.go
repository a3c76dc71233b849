package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"l7obs/internal/client/app"
)

var cfg app.Config

var rootCmd = &cobra.Command{
	Use:   "l7obs-client",
	Short: "查询 server 上的会话日志（按 IP、PID 或 flow id）",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.IP == "" && cfg.PID == 0 && cfg.FlowID == 0 {
			return fmt.Errorf("--ip、--pid、--flow-id 至少指定一个")
		}
		return app.RunLogs(cfg, cmd.OutOrStdout())
	},
	SilenceUsage: true,
}

var perfCmd = &cobra.Command{
	Use:   "perf",
	Short: "查询流级别的 L7 性能统计（按 IP 或 flow id）",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.IP == "" && cfg.FlowID == 0 {
			return fmt.Errorf("--ip、--flow-id 至少指定一个")
		}
		return app.RunPerf(cfg, cmd.OutOrStdout())
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.Server, "server", "http://127.0.0.1:8090", "Server 地址")
	pf.StringVar(&cfg.IP, "ip", "", "按 IP 查询（源或目的）")
	pf.Uint32Var(&cfg.PID, "pid", 0, "按进程号查询")
	pf.Uint64Var(&cfg.FlowID, "flow-id", 0, "按 flow id 查询")
	pf.IntVar(&cfg.Limit, "limit", 200, "最多返回的行数")
	pf.DurationVar(&cfg.Timeout, "timeout", 10*time.Second, "请求超时")

	rootCmd.AddCommand(perfCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
