package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"l7obs/internal/agent/protolog"
	"l7obs/internal/metrics"
	"l7obs/internal/server/storage"
	"l7obs/pkg/flowlogpb"
	"l7obs/pkg/model"
)

type fakeStore struct {
	logs    []model.L7FlowLog
	perf    []model.L7PerfStats
	queries []model.L7Query
	err     error
}

func (f *fakeStore) SaveLogs(ctx context.Context, rows []model.L7FlowLog) error {
	f.logs = append(f.logs, rows...)
	return f.err
}

func (f *fakeStore) SavePerf(ctx context.Context, rows []model.L7PerfStats) error {
	f.perf = append(f.perf, rows...)
	return f.err
}

func (f *fakeStore) QueryLogs(ctx context.Context, q model.L7Query) ([]model.L7FlowLog, error) {
	f.queries = append(f.queries, q)
	return f.logs, f.err
}

func (f *fakeStore) QueryPerf(ctx context.Context, q model.L7Query) ([]model.L7PerfStats, error) {
	f.queries = append(f.queries, q)
	return f.perf, f.err
}

func (f *fakeStore) Close() error {
	return nil
}

var _ storage.Store = (*fakeStore)(nil)

func newRouter(store storage.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandlers(store).Register(r)
	return r
}

func do(r http.Handler, method, target, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func encodedBatch(t *testing.T, paths ...string) []byte {
	t.Helper()
	var batch []byte
	for i, p := range paths {
		d := protolog.New(protolog.BaseInfo{
			StartTime: time.Duration(1700000000+i) * time.Second,
			EndTime:   time.Duration(1700000000+i) * time.Second,
			FlowID:    uint64(i + 1),
			IPSrc:     netip.MustParseAddr("10.0.0.1"),
			IPDst:     netip.MustParseAddr("10.0.0.2"),
			PortSrc:   51000,
			PortDst:   80,
			Head:      protolog.AppProtoHead{Proto: protolog.L7ProtocolHTTP1, MsgType: protolog.MsgTypeSession, Code: 200, RRT: 1500},
		}, &protolog.HTTPInfo{Proto: protolog.L7ProtocolHTTP1, Version: "1.1", Method: "GET", Path: p})
		var buf bytes.Buffer
		_, err := d.Encode(&buf)
		require.NoError(t, err)
		batch = flowlogpb.AppendFrame(batch, buf.Bytes())
	}
	return batch
}

func TestUpload(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store)
	ingested := metrics.ServerIngestedRowsTotal.WithLabelValues(metrics.KindLogs)
	before := testutil.ToFloat64(ingested)

	w := do(r, http.MethodPost, "/api/v1/upload", "application/x-protobuf", encodedBatch(t, "/a", "/b"))
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	assert.Equal(t, before+2, testutil.ToFloat64(ingested))
	require.Len(t, store.logs, 2)
	assert.Equal(t, "/a", store.logs[0].RequestResource)
	assert.Equal(t, "/b", store.logs[1].RequestResource)
	assert.Equal(t, "10.0.0.1", store.logs[0].IPSrc)
	assert.Equal(t, uint64(1500), store.logs[0].ResponseDurationUS)
}

func TestUpload_Rejects(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store)
	rejected := metrics.ServerRejectedTotal.WithLabelValues(metrics.KindLogs)
	before := testutil.ToFloat64(rejected)

	w := do(r, http.MethodPost, "/api/v1/upload", "application/json", []byte("{}"))
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	// 长度前缀超出 body
	w = do(r, http.MethodPost, "/api/v1/upload", "application/x-protobuf", []byte{0x10, 0x01})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.logs)
	assert.Equal(t, before+1, testutil.ToFloat64(rejected))

	store.err = errors.New("disk full")
	w = do(r, http.MethodPost, "/api/v1/upload", "application/x-protobuf", encodedBatch(t, "/a"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUploadPerf(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store)

	body, err := json.Marshal([]model.L7PerfStats{{FlowID: 9, IPSrc: "10.0.0.1", IPDst: "10.0.0.2", L7Protocol: "DNS"}})
	require.NoError(t, err)
	w := do(r, http.MethodPost, "/api/v1/perf", "application/json", body)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, store.perf, 1)
	assert.Equal(t, uint64(9), store.perf[0].FlowID)

	bad, _ := json.Marshal([]model.L7PerfStats{{IPSrc: "x", IPDst: "10.0.0.2"}})
	w = do(r, http.MethodPost, "/api/v1/perf", "application/json", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/v1/perf", "application/json", []byte("not json"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuery(t *testing.T) {
	store := &fakeStore{logs: []model.L7FlowLog{{ProcessID0: 321, RequestResource: "/x"}}}
	r := newRouter(store)

	w := do(r, http.MethodGet, "/api/v1/query?pid=321&limit=5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []model.L7FlowLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "/x", rows[0].RequestResource)
	assert.Equal(t, model.L7Query{PID: 321, Limit: 5}, store.queries[0])

	w = do(r, http.MethodGet, "/api/v1/query?ip=10.0.0.1&flow_id=0x100", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.L7Query{IP: "10.0.0.1", FlowID: 0x100}, store.queries[1])
}

func TestQuery_BadParams(t *testing.T) {
	r := newRouter(&fakeStore{})
	for _, target := range []string{
		"/api/v1/query",
		"/api/v1/query?ip=nope",
		"/api/v1/query?pid=-1",
		"/api/v1/query?flow_id=abc",
		"/api/v1/perf?pid=3",
	} {
		w := do(r, http.MethodGet, target, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestQueryPerf(t *testing.T) {
	store := &fakeStore{perf: []model.L7PerfStats{{FlowID: 4, L7Protocol: "HTTP"}}}
	r := newRouter(store)

	w := do(r, http.MethodGet, "/api/v1/perf?flow_id=4", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []model.L7PerfStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "HTTP", rows[0].L7Protocol)
}
