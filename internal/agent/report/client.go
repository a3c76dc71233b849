// Package report 把 agent 的导出结果上报给 server。
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"l7obs/pkg/model"
)

const (
	ContentTypeProtobuf = "application/x-protobuf"
	ContentTypeJSON     = "application/json"

	UploadPath = "/api/v1/upload"
	PerfPath   = "/api/v1/perf"
)

type Client struct {
	base   string
	client *http.Client
}

func NewClient(serverIP string, serverPort int, timeout time.Duration) *Client {
	return &Client{
		base: "http://" + net.JoinHostPort(serverIP, strconv.Itoa(serverPort)),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// UploadLogs 发送一批长度前缀的 protobuf 记录（见 flowlogpb.AppendFrame）。
func (c *Client) UploadLogs(ctx context.Context, batch []byte) error {
	if len(batch) == 0 {
		return nil
	}
	return c.post(ctx, UploadPath, ContentTypeProtobuf, batch)
}

func (c *Client) UploadPerf(ctx context.Context, rows []model.L7PerfStats) error {
	if len(rows) == 0 {
		return nil
	}
	body, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("序列化 JSON 失败：%w", err)
	}
	return c.post(ctx, PerfPath, ContentTypeJSON, body)
}

func (c *Client) post(ctx context.Context, path, contentType string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("构造 HTTP 请求失败：%w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s 失败：%w", path, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("POST %s 失败：status=%s", path, resp.Status)
	}
	return nil
}
