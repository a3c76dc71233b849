package duckdb

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"

	"l7obs/internal/server/storage"
)

const DefaultPath = "./l7obs.duckdb"

// NewStore 打开 DuckDB 文件。DuckDB 是嵌入式列存数据库，适合按 IP、流聚合的分析查询。
func NewStore(path string) (*storage.SQLStore, error) {
	if path == "" {
		path = DefaultPath
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("打开 DuckDB 失败：%w", err)
	}
	s, err := storage.NewSQLStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}
