// Package app 组装 server：存储后端 + gin 路由。
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"l7obs/internal/metrics"
	"l7obs/internal/server/api"
	"l7obs/internal/server/storage"
	"l7obs/internal/server/storage/duckdb"
	"l7obs/internal/server/storage/sqlite"
)

type Server struct {
	httpServer *http.Server
	store      storage.Store
}

func NewServer(cfg Config) (*Server, error) {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8090"
	}

	store, err := openStore(cfg.DBDriver, cfg.DBPath)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), accessLog())
	api.NewHandlers(store).Register(router)
	router.GET(metrics.DefaultPath, gin.WrapH(promhttp.Handler()))

	return &Server{
		store: store,
		httpServer: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

func openStore(driver, path string) (storage.Store, error) {
	switch driver {
	case "", "duckdb":
		return duckdb.NewStore(path)
	case "sqlite":
		return sqlite.NewStore(path)
	default:
		return nil, fmt.Errorf("不支持的数据库类型：%s", driver)
	}
}

// accessLog 用 logrus 记录请求，代替 gin 默认的 Logger 中间件。
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		entry := log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
			"remote":  c.ClientIP(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("请求失败")
			return
		}
		entry.Debug("请求完成")
	}
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	_ = s.httpServer.Shutdown(ctx)
	return s.store.Close()
}
