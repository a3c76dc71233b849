package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"l7obs/pkg/model"
)

// 时间统一存微秒，uint64 以 int64 的位模式存，两种数据库读写一致。
const schema = `
CREATE TABLE IF NOT EXISTS l7_flow_log (
	start_time_us             BIGINT,
	end_time_us               BIGINT,
	flow_id                   BIGINT,
	session_id                BIGINT,
	vtap_id                   INTEGER,
	tap_port                  BIGINT,
	tap_type                  INTEGER,
	tap_side                  TEXT,
	mac_src                   TEXT,
	mac_dst                   TEXT,
	ip_src                    TEXT,
	ip_dst                    TEXT,
	is_ipv6                   BOOLEAN,
	l3_epc_id_src             INTEGER,
	l3_epc_id_dst             INTEGER,
	port_src                  INTEGER,
	port_dst                  INTEGER,
	protocol                  INTEGER,
	req_tcp_seq               BIGINT,
	resp_tcp_seq              BIGINT,
	l7_protocol               INTEGER,
	l7_protocol_str           TEXT,
	version                   TEXT,
	type                      INTEGER,
	request_type              TEXT,
	request_domain            TEXT,
	request_resource          TEXT,
	request_id                BIGINT,
	response_status           INTEGER,
	response_code             INTEGER,
	response_exception        TEXT,
	response_result           TEXT,
	response_duration_us      BIGINT,
	request_length            BIGINT,
	response_length           BIGINT,
	http_proxy_client         TEXT,
	x_request_id              TEXT,
	trace_id                  TEXT,
	span_id                   TEXT,
	process_id_0              BIGINT,
	process_id_1              BIGINT,
	process_kname_0           TEXT,
	process_kname_1           TEXT,
	syscall_trace_id_request  BIGINT,
	syscall_trace_id_response BIGINT,
	syscall_thread_0          BIGINT,
	syscall_thread_1          BIGINT,
	syscall_cap_seq_0         BIGINT,
	syscall_cap_seq_1         BIGINT
);
CREATE INDEX IF NOT EXISTS idx_l7_flow_log_ip_src ON l7_flow_log(ip_src);
CREATE INDEX IF NOT EXISTS idx_l7_flow_log_ip_dst ON l7_flow_log(ip_dst);
CREATE INDEX IF NOT EXISTS idx_l7_flow_log_flow_id ON l7_flow_log(flow_id);

CREATE TABLE IF NOT EXISTS l7_perf_stats (
	time_us          BIGINT,
	vtap_id          INTEGER,
	flow_id          BIGINT,
	ip_src           TEXT,
	ip_dst           TEXT,
	port_src         INTEGER,
	port_dst         INTEGER,
	l7_protocol      TEXT,
	request_count    BIGINT,
	response_count   BIGINT,
	rrt_count        BIGINT,
	rrt_sum_us       BIGINT,
	rrt_max_us       BIGINT,
	err_client_count BIGINT,
	err_server_count BIGINT,
	err_timeout      BIGINT
);
CREATE INDEX IF NOT EXISTS idx_l7_perf_stats_flow_id ON l7_perf_stats(flow_id);
`

var logColumns = []string{
	"start_time_us", "end_time_us", "flow_id", "session_id", "vtap_id", "tap_port", "tap_type", "tap_side",
	"mac_src", "mac_dst", "ip_src", "ip_dst", "is_ipv6", "l3_epc_id_src", "l3_epc_id_dst",
	"port_src", "port_dst", "protocol", "req_tcp_seq", "resp_tcp_seq",
	"l7_protocol", "l7_protocol_str", "version", "type", "request_type", "request_domain", "request_resource",
	"request_id", "response_status", "response_code", "response_exception", "response_result",
	"response_duration_us", "request_length", "response_length",
	"http_proxy_client", "x_request_id", "trace_id", "span_id",
	"process_id_0", "process_id_1", "process_kname_0", "process_kname_1",
	"syscall_trace_id_request", "syscall_trace_id_response", "syscall_thread_0", "syscall_thread_1",
	"syscall_cap_seq_0", "syscall_cap_seq_1",
}

var perfColumns = []string{
	"time_us", "vtap_id", "flow_id", "ip_src", "ip_dst", "port_src", "port_dst", "l7_protocol",
	"request_count", "response_count", "rrt_count", "rrt_sum_us", "rrt_max_us",
	"err_client_count", "err_server_count", "err_timeout",
}

// SQLStore 是基于 database/sql 的 Store 实现，驱动由调用方打开。
type SQLStore struct {
	db *sql.DB
}

var _ Store = (*SQLStore)(nil)

// NewSQLStore 建表并接管 db，Close 时一起关闭。
func NewSQLStore(db *sql.DB) (*SQLStore, error) {
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("建表失败：%w", err)
		}
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) SaveLogs(ctx context.Context, rows []model.L7FlowLog) error {
	return s.insert(ctx, "l7_flow_log", logColumns, len(rows), func(i int) []any {
		return logArgs(&rows[i])
	})
}

func (s *SQLStore) SavePerf(ctx context.Context, rows []model.L7PerfStats) error {
	return s.insert(ctx, "l7_perf_stats", perfColumns, len(rows), func(i int) []any {
		return perfArgs(&rows[i])
	})
}

// insert 在一个事务里写入 n 行。
func (s *SQLStore) insert(ctx context.Context, table string, cols []string, n int, args func(int) []any) error {
	if n == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("开启事务失败：%w", err)
	}
	defer tx.Rollback()

	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	stmt, err := tx.PrepareContext(ctx,
		fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), marks))
	if err != nil {
		return fmt.Errorf("准备插入语句失败：%w", err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("插入 %s 失败：%w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("提交事务失败：%w", err)
	}
	return nil
}

func (s *SQLStore) QueryLogs(ctx context.Context, q model.L7Query) ([]model.L7FlowLog, error) {
	where, args := filter(q, true)
	query := fmt.Sprintf("SELECT %s FROM l7_flow_log%s ORDER BY start_time_us DESC LIMIT ?",
		strings.Join(logColumns, ", "), where)
	rows, err := s.db.QueryContext(ctx, query, append(args, ClampLimit(q.Limit))...)
	if err != nil {
		return nil, fmt.Errorf("查询失败：%w", err)
	}
	defer rows.Close()

	out := make([]model.L7FlowLog, 0, 64)
	for rows.Next() {
		r, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("读取行失败：%w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("遍历结果失败：%w", err)
	}
	return out, nil
}

func (s *SQLStore) QueryPerf(ctx context.Context, q model.L7Query) ([]model.L7PerfStats, error) {
	where, args := filter(q, false)
	query := fmt.Sprintf("SELECT %s FROM l7_perf_stats%s ORDER BY time_us DESC LIMIT ?",
		strings.Join(perfColumns, ", "), where)
	rows, err := s.db.QueryContext(ctx, query, append(args, ClampLimit(q.Limit))...)
	if err != nil {
		return nil, fmt.Errorf("查询失败：%w", err)
	}
	defer rows.Close()

	out := make([]model.L7PerfStats, 0, 64)
	for rows.Next() {
		var (
			r          model.L7PerfStats
			ts, flowID int64
		)
		if err := rows.Scan(&ts, &r.VtapID, &flowID, &r.IPSrc, &r.IPDst, &r.PortSrc, &r.PortDst, &r.L7Protocol,
			&r.RequestCount, &r.ResponseCount, &r.RRTCount, &r.RRTSumUS, &r.RRTMaxUS,
			&r.ErrClientCount, &r.ErrServerCount, &r.ErrTimeout); err != nil {
			return nil, fmt.Errorf("读取行失败：%w", err)
		}
		r.Timestamp = time.UnixMicro(ts)
		r.FlowID = uint64(flowID)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("遍历结果失败：%w", err)
	}
	return out, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// filter 生成 WHERE 子句；perf 表没有进程号，withPID 为 false 时忽略 PID。
func filter(q model.L7Query, withPID bool) (string, []any) {
	var conds []string
	var args []any
	if q.IP != "" {
		conds = append(conds, "(ip_src = ? OR ip_dst = ?)")
		args = append(args, q.IP, q.IP)
	}
	if withPID && q.PID != 0 {
		conds = append(conds, "(process_id_0 = ? OR process_id_1 = ?)")
		args = append(args, int64(q.PID), int64(q.PID))
	}
	if q.FlowID != 0 {
		conds = append(conds, "flow_id = ?")
		args = append(args, int64(q.FlowID))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func logArgs(r *model.L7FlowLog) []any {
	return []any{
		r.StartTime.UnixMicro(), r.EndTime.UnixMicro(), int64(r.FlowID), int64(r.SessionID),
		int64(r.VtapID), int64(r.TapPort), int64(r.TapType), r.TapSide,
		r.MACSrc, r.MACDst, r.IPSrc, r.IPDst, r.IsIPv6, int64(r.L3EpcIDSrc), int64(r.L3EpcIDDst),
		int64(r.PortSrc), int64(r.PortDst), int64(r.Protocol), int64(r.ReqTCPSeq), int64(r.RespTCPSeq),
		int64(r.L7Protocol), r.L7ProtocolStr, r.Version, int64(r.Type), r.RequestType, r.RequestDomain, r.RequestResource,
		int64(r.RequestID), int64(r.ResponseStatus), int64(r.ResponseCode), r.ResponseException, r.ResponseResult,
		int64(r.ResponseDurationUS), r.RequestLength, r.ResponseLength,
		r.HTTPProxyClient, r.XRequestID, r.TraceID, r.SpanID,
		int64(r.ProcessID0), int64(r.ProcessID1), r.ProcessKName0, r.ProcessKName1,
		int64(r.SyscallTraceIDRequest), int64(r.SyscallTraceIDResponse), int64(r.SyscallThread0), int64(r.SyscallThread1),
		int64(r.SyscallCapSeq0), int64(r.SyscallCapSeq1),
	}
}

func scanLog(rows *sql.Rows) (model.L7FlowLog, error) {
	var (
		r                   model.L7FlowLog
		start, end          int64
		flowID, sessionID   int64
		traceReq, traceResp int64
		duration            int64
	)
	err := rows.Scan(
		&start, &end, &flowID, &sessionID, &r.VtapID, &r.TapPort, &r.TapType, &r.TapSide,
		&r.MACSrc, &r.MACDst, &r.IPSrc, &r.IPDst, &r.IsIPv6, &r.L3EpcIDSrc, &r.L3EpcIDDst,
		&r.PortSrc, &r.PortDst, &r.Protocol, &r.ReqTCPSeq, &r.RespTCPSeq,
		&r.L7Protocol, &r.L7ProtocolStr, &r.Version, &r.Type, &r.RequestType, &r.RequestDomain, &r.RequestResource,
		&r.RequestID, &r.ResponseStatus, &r.ResponseCode, &r.ResponseException, &r.ResponseResult,
		&duration, &r.RequestLength, &r.ResponseLength,
		&r.HTTPProxyClient, &r.XRequestID, &r.TraceID, &r.SpanID,
		&r.ProcessID0, &r.ProcessID1, &r.ProcessKName0, &r.ProcessKName1,
		&traceReq, &traceResp, &r.SyscallThread0, &r.SyscallThread1,
		&r.SyscallCapSeq0, &r.SyscallCapSeq1,
	)
	if err != nil {
		return r, err
	}
	r.StartTime = time.UnixMicro(start)
	r.EndTime = time.UnixMicro(end)
	r.FlowID, r.SessionID = uint64(flowID), uint64(sessionID)
	r.SyscallTraceIDRequest, r.SyscallTraceIDResponse = uint64(traceReq), uint64(traceResp)
	r.ResponseDurationUS = uint64(duration)
	return r, nil
}

func perfArgs(r *model.L7PerfStats) []any {
	return []any{
		r.Timestamp.UnixMicro(), int64(r.VtapID), int64(r.FlowID), r.IPSrc, r.IPDst,
		int64(r.PortSrc), int64(r.PortDst), r.L7Protocol,
		int64(r.RequestCount), int64(r.ResponseCount), int64(r.RRTCount), int64(r.RRTSumUS), int64(r.RRTMaxUS),
		int64(r.ErrClientCount), int64(r.ErrServerCount), int64(r.ErrTimeout),
	}
}
