// Package app 是命令行查询工具：向 server 查询会话日志或流性能统计并以表格输出。
package app

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"l7obs/pkg/model"
)

type Config struct {
	Server  string
	IP      string
	PID     uint32
	FlowID  uint64
	Limit   int
	Timeout time.Duration
}

// RunLogs 查询会话日志并输出到 w。
func RunLogs(cfg Config, w io.Writer) error {
	var rows []model.L7FlowLog
	if err := get(cfg, "/api/v1/query", true, &rows); err != nil {
		return err
	}
	renderLogs(w, rows)
	return nil
}

// RunPerf 查询流性能统计并输出到 w。
func RunPerf(cfg Config, w io.Writer) error {
	var rows []model.L7PerfStats
	if err := get(cfg, "/api/v1/perf", false, &rows); err != nil {
		return err
	}
	renderPerf(w, rows)
	return nil
}

func get(cfg Config, path string, withPID bool, out any) error {
	u, err := url.Parse(cfg.Server)
	if err != nil {
		return fmt.Errorf("server 参数非法：%w", err)
	}
	u.Path = path
	q := u.Query()
	if cfg.IP != "" {
		q.Set("ip", cfg.IP)
	}
	if cfg.PID > 0 && withPID {
		q.Set("pid", strconv.FormatUint(uint64(cfg.PID), 10))
	}
	if cfg.FlowID > 0 {
		q.Set("flow_id", strconv.FormatUint(cfg.FlowID, 10))
	}
	if cfg.Limit > 0 {
		q.Set("limit", strconv.Itoa(cfg.Limit))
	}
	u.RawQuery = q.Encode()

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(u.String())
	if err != nil {
		return fmt.Errorf("请求失败：%w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("查询失败：status=%s body=%s", resp.Status, string(b))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("解析响应 JSON 失败：%w", err)
	}
	return nil
}

func renderLogs(w io.Writer, rows []model.L7FlowLog) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Start", "Flow", "Side", "Client", "Server", "PID", "Proto", "Request", "Resource", "Code", "Status", "Latency(us)"})
	t.SetAutoWrapText(false)
	t.SetRowLine(false)

	for _, r := range rows {
		pid := r.ProcessID0
		if pid == 0 {
			pid = r.ProcessID1
		}
		request := r.RequestType
		if r.RequestDomain != "" {
			request += " " + r.RequestDomain
		}
		t.Append([]string{
			r.StartTime.Format("2006-01-02 15:04:05.000"),
			fmt.Sprintf("%#x", r.FlowID),
			r.TapSide,
			fmt.Sprintf("%s:%d", r.IPSrc, r.PortSrc),
			fmt.Sprintf("%s:%d", r.IPDst, r.PortDst),
			strconv.FormatUint(uint64(pid), 10),
			r.L7ProtocolStr,
			request,
			r.RequestResource,
			strconv.Itoa(int(r.ResponseCode)),
			statusName(r.ResponseStatus),
			strconv.FormatUint(r.ResponseDurationUS, 10),
		})
	}
	t.Render()
}

func renderPerf(w io.Writer, rows []model.L7PerfStats) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Time", "Flow", "Client", "Server", "Proto", "Req", "Resp", "RRT avg(us)", "RRT max(us)", "Client err", "Server err", "Timeout"})
	t.SetAutoWrapText(false)

	for _, r := range rows {
		var avg uint64
		if r.RRTCount > 0 {
			avg = r.RRTSumUS / uint64(r.RRTCount)
		}
		t.Append([]string{
			r.Timestamp.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%#x", r.FlowID),
			fmt.Sprintf("%s:%d", r.IPSrc, r.PortSrc),
			fmt.Sprintf("%s:%d", r.IPDst, r.PortDst),
			r.L7Protocol,
			strconv.FormatUint(uint64(r.RequestCount), 10),
			strconv.FormatUint(uint64(r.ResponseCount), 10),
			strconv.FormatUint(avg, 10),
			strconv.FormatUint(uint64(r.RRTMaxUS), 10),
			strconv.FormatUint(uint64(r.ErrClientCount), 10),
			strconv.FormatUint(uint64(r.ErrServerCount), 10),
			strconv.FormatUint(uint64(r.ErrTimeout), 10),
		})
	}
	t.Render()
}

func statusName(s uint8) string {
	switch s {
	case 0:
		return "ok"
	case 1:
		return "error"
	case 2:
		return "not_exist"
	case 3:
		return "server_error"
	case 4:
		return "client_error"
	default:
		return "-"
	}
}
