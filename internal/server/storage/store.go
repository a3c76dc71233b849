// Package storage 定义 server 的存储接口，sqlite 和 duckdb 两个后端共用 SQLStore。
package storage

import (
	"context"

	"l7obs/pkg/model"
)

const (
	DefaultLimit = 200
	MaxLimit     = 2000
)

type Store interface {
	SaveLogs(ctx context.Context, rows []model.L7FlowLog) error
	SavePerf(ctx context.Context, rows []model.L7PerfStats) error
	QueryLogs(ctx context.Context, q model.L7Query) ([]model.L7FlowLog, error)
	QueryPerf(ctx context.Context, q model.L7Query) ([]model.L7PerfStats, error)
	Close() error
}

// ClampLimit 把 limit 限制在 (0, MaxLimit]，非正数取默认值。
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return min(limit, MaxLimit)
}
