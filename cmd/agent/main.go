package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"l7obs/internal/agent/app"
	"l7obs/internal/logging"
)

var (
	configFile string
	flags      app.Config
)

var rootCmd = &cobra.Command{
	Use:   "l7obs-agent",
	Short: "抓包解析 L7 协议，上报会话日志和性能统计",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		closer, err := logging.Init(cfg.Log)
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := app.Run(ctx, *cfg); err != nil {
			log.WithError(err).Error("agent 退出")
			return err
		}
		log.Info("agent 正常退出")
		return nil
	},
	SilenceUsage: true,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "打印合并后的生效配置（YAML）",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(map[string]*app.Config{"l7obs": cfg})
	},
}

// loadConfig 读配置文件和环境变量，命令行显式给出的参数最后覆盖。
func loadConfig(cmd *cobra.Command) (*app.Config, error) {
	cfg, err := app.Load(configFile)
	if err != nil {
		return nil, err
	}
	fs := cmd.Flags()
	if fs.Changed("interface") {
		cfg.Interface = flags.Interface
	}
	if fs.Changed("pcap") {
		cfg.PcapFile = flags.PcapFile
	}
	if fs.Changed("server-ip") {
		cfg.ServerIP = flags.ServerIP
	}
	if fs.Changed("server-port") {
		cfg.ServerPort = flags.ServerPort
	}
	if fs.Changed("ports") {
		cfg.ServerPorts = flags.ServerPorts
	}
	if fs.Changed("ebpf") {
		cfg.EnableEBPF = flags.EnableEBPF
	}
	if fs.Changed("metrics-addr") {
		cfg.MetricsAddr = flags.MetricsAddr
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = flags.Log.Level
	}
	return cfg, nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "配置文件路径（YAML，根节点 l7obs）")
	pf.StringVarP(&flags.Interface, "interface", "i", "", "要监听的网卡名（如 eth0），any 表示所有网卡")
	pf.StringVar(&flags.PcapFile, "pcap", "", "回放 pcap 文件，代替实时抓包")
	pf.StringVar(&flags.ServerIP, "server-ip", "", "Server IP")
	pf.IntVar(&flags.ServerPort, "server-port", 0, "Server 端口")
	pf.Var(newPortsValue(&flags.ServerPorts), "ports", "服务端口列表，逗号分隔")
	pf.BoolVar(&flags.EnableEBPF, "ebpf", false, "用 eBPF 关联进程号")
	pf.StringVar(&flags.MetricsAddr, "metrics-addr", "", "Prometheus /metrics 监听地址，空串关闭")
	pf.StringVar(&flags.Log.Level, "log-level", "", "日志级别")

	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
