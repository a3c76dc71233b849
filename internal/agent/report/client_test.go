package report

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"l7obs/pkg/model"
)

type captured struct {
	path        string
	contentType string
	body        []byte
}

func newServer(t *testing.T, status int) (*Client, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		got.path = r.URL.Path
		got.contentType = r.Header.Get("Content-Type")
		got.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	addr := srv.Listener.Addr().(*net.TCPAddr)
	return NewClient("127.0.0.1", addr.Port, time.Second), got
}

func TestClient_UploadLogs(t *testing.T) {
	c, got := newServer(t, http.StatusOK)

	batch := []byte{3, 0x0a, 0x01, 0x00}
	require.NoError(t, c.UploadLogs(context.Background(), batch))
	assert.Equal(t, UploadPath, got.path)
	assert.Equal(t, ContentTypeProtobuf, got.contentType)
	assert.Equal(t, batch, got.body)
}

func TestClient_UploadPerf(t *testing.T) {
	c, got := newServer(t, http.StatusNoContent)

	rows := []model.L7PerfStats{{FlowID: 7, L7Protocol: "HTTP", RequestCount: 3, RRTMaxUS: 900}}
	require.NoError(t, c.UploadPerf(context.Background(), rows))
	assert.Equal(t, PerfPath, got.path)
	assert.Equal(t, ContentTypeJSON, got.contentType)

	var decoded []model.L7PerfStats
	require.NoError(t, json.Unmarshal(got.body, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, uint64(7), decoded[0].FlowID)
	assert.Equal(t, uint32(900), decoded[0].RRTMaxUS)
}

func TestClient_EmptyAndErrors(t *testing.T) {
	c, got := newServer(t, http.StatusBadRequest)

	require.NoError(t, c.UploadLogs(context.Background(), nil))
	require.NoError(t, c.UploadPerf(context.Background(), nil))
	assert.Empty(t, got.path)

	err := c.UploadLogs(context.Background(), []byte{1, 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")

	unreachable := NewClient("127.0.0.1", 1, 200*time.Millisecond)
	assert.Error(t, unreachable.UploadLogs(context.Background(), []byte{1, 0}))
}
