// Package sqlite 用纯 Go 的 modernc.org/sqlite 驱动打开 SQLStore，不需要 cgo。
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"l7obs/internal/server/storage"
)

const DefaultPath = "./l7obs.sqlite"

func NewStore(path string) (*storage.SQLStore, error) {
	if path == "" {
		path = DefaultPath
	}
	// WAL 下读查询不阻塞上报写入
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("打开 SQLite 失败：%w", err)
	}
	// SQLite 同一时刻只有一个写者
	db.SetMaxOpenConns(1)
	s, err := storage.NewSQLStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}
