package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"l7obs/internal/logging"
	"l7obs/internal/server/app"
)

var (
	configFile string
	flags      app.Config
)

var rootCmd = &cobra.Command{
	Use:   "l7obs-server",
	Short: "接收 agent 上报的会话日志和性能统计，提供查询接口",
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
		gin.SetMode(gin.ReleaseMode)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv, err := app.NewServer(*cfg)
		if err != nil {
			return fmt.Errorf("server 初始化失败：%w", err)
		}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("关闭存储失败")
			}
		}()

		log.WithFields(log.Fields{"listen": cfg.ListenAddr, "db": cfg.DBDriver}).Info("server 启动")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server 运行失败：%w", err)
		}
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

func loadConfig(cmd *cobra.Command) (*app.Config, error) {
	cfg, err := app.Load(configFile)
	if err != nil {
		return nil, err
	}
	fs := cmd.Flags()
	if fs.Changed("listen") {
		cfg.ListenAddr = flags.ListenAddr
	}
	if fs.Changed("db-driver") {
		cfg.DBDriver = flags.DBDriver
	}
	if fs.Changed("db") {
		cfg.DBPath = flags.DBPath
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = flags.Log.Level
	}
	return cfg, nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "配置文件路径（YAML，根节点 l7obs）")
	pf.StringVar(&flags.ListenAddr, "listen", "", "监听地址")
	pf.StringVar(&flags.DBDriver, "db-driver", "", "数据库类型：duckdb 或 sqlite")
	pf.StringVar(&flags.DBPath, "db", "", "数据库文件路径")
	pf.StringVar(&flags.Log.Level, "log-level", "", "日志级别")

	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
