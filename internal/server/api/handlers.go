// Package api 是 server 的 HTTP 接口：接收 agent 上报，提供查询。
package api

import (
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"l7obs/internal/metrics"
	"l7obs/internal/server/storage"
	"l7obs/pkg/flowlogpb"
	"l7obs/pkg/model"
)

// 单次上报的 body 上限
const maxBodyBytes = 32 << 20

type Handlers struct {
	store storage.Store
}

func NewHandlers(store storage.Store) *Handlers {
	return &Handlers{store: store}
}

// Register 把接口挂到 /api/v1 下。
func (h *Handlers) Register(r gin.IRouter) {
	v1 := r.Group("/api/v1")
	{
		v1.POST("/upload", h.Upload)
		v1.POST("/perf", h.UploadPerf)
		v1.GET("/query", h.Query)
		v1.GET("/perf", h.QueryPerf)
	}
}

// Upload 接收长度前缀的 protobuf 会话日志批次。
func (h *Handlers) Upload(c *gin.Context) {
	if ct := c.ContentType(); ct != "application/x-protobuf" {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Content-Type 必须是 application/x-protobuf"})
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "body 过大"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取 body 失败：" + err.Error()})
		return
	}

	rows, err := flowlogpb.DecodeBatch(body)
	if err != nil {
		metrics.ServerRejectedTotal.WithLabelValues(metrics.KindLogs).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "解析上报数据失败：" + err.Error()})
		return
	}
	if err := h.store.SaveLogs(c.Request.Context(), rows); err != nil {
		log.WithError(err).WithField("rows", len(rows)).Error("写入会话日志失败")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "写入数据库失败：" + err.Error()})
		return
	}
	metrics.ServerIngestedRowsTotal.WithLabelValues(metrics.KindLogs).Add(float64(len(rows)))
	log.WithFields(log.Fields{"rows": len(rows), "remote": c.ClientIP()}).Debug("收到会话日志")
	c.Status(http.StatusNoContent)
}

func (h *Handlers) UploadPerf(c *gin.Context) {
	var rows []model.L7PerfStats
	if err := c.ShouldBindJSON(&rows); err != nil {
		metrics.ServerRejectedTotal.WithLabelValues(metrics.KindPerf).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON 解析失败：" + err.Error()})
		return
	}
	for i := range rows {
		if net.ParseIP(rows[i].IPSrc) == nil || net.ParseIP(rows[i].IPDst) == nil {
			metrics.ServerRejectedTotal.WithLabelValues(metrics.KindPerf).Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "ip_src/ip_dst 非法"})
			return
		}
	}
	if err := h.store.SavePerf(c.Request.Context(), rows); err != nil {
		log.WithError(err).WithField("rows", len(rows)).Error("写入性能统计失败")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "写入数据库失败：" + err.Error()})
		return
	}
	metrics.ServerIngestedRowsTotal.WithLabelValues(metrics.KindPerf).Add(float64(len(rows)))
	c.Status(http.StatusNoContent)
}

// Query 按 ip / pid / flow_id 查询会话日志，至少给一个条件。
func (h *Handlers) Query(c *gin.Context) {
	q, ok := parseQuery(c, true)
	if !ok {
		return
	}
	rows, err := h.store.QueryLogs(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询失败：" + err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handlers) QueryPerf(c *gin.Context) {
	q, ok := parseQuery(c, false)
	if !ok {
		return
	}
	rows, err := h.store.QueryPerf(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询失败：" + err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// parseQuery 解析查询参数，出错时已经写好响应。
func parseQuery(c *gin.Context, allowPID bool) (model.L7Query, bool) {
	var q model.L7Query
	if ip := c.Query("ip"); ip != "" {
		if net.ParseIP(ip) == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ip 参数非法"})
			return q, false
		}
		q.IP = ip
	}
	if raw := c.Query("pid"); raw != "" && allowPID {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || v == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pid 参数非法"})
			return q, false
		}
		q.PID = uint32(v)
	}
	if raw := c.Query("flow_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 0, 64)
		if err != nil || v == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "flow_id 参数非法"})
			return q, false
		}
		q.FlowID = v
	}
	if q.IP == "" && q.PID == 0 && q.FlowID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ip、pid、flow_id 至少指定一个"})
		return q, false
	}
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			q.Limit = storage.ClampLimit(v)
		}
	}
	return q, true
}
