package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const DefaultPath = "/metrics"

// Server 单独暴露 /metrics，给没有 HTTP 服务的 agent 用。
type Server struct {
	addr   string
	path   string
	ln     net.Listener
	server *http.Server
}

func NewServer(addr, path string) *Server {
	if path == "" {
		path = DefaultPath
	}
	return &Server{addr: addr, path: path}
}

// Start 先同步监听，端口被占用时直接返回错误。
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("监听指标端口失败：%w", err)
	}
	s.ln = ln

	mux := http.NewServeMux()
	mux.Handle(s.path, promhttp.Handler())
	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.WithFields(log.Fields{"addr": ln.Addr().String(), "path": s.path}).Info("指标服务启动")
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("指标服务异常退出")
		}
	}()
	return nil
}

// Addr 返回实际监听的地址，未启动时为空。
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("关闭指标服务失败：%w", err)
	}
	return nil
}
