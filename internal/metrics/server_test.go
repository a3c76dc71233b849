package metrics

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_ServesMetrics(t *testing.T) {
	before := testutil.ToFloat64(DropsTotal.WithLabelValues(DropUploadQueue))
	DropsTotal.WithLabelValues(DropUploadQueue).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(DropsTotal.WithLabelValues(DropUploadQueue)))

	s := NewServer("127.0.0.1:0", "")
	require.NoError(t, s.Start())
	defer s.Stop(context.Background())

	resp, err := http.Get("http://" + s.Addr() + DefaultPath)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `l7obs_agent_drops_total{kind="upload_queue"}`)
}

func TestServer_AddrInUse(t *testing.T) {
	first := NewServer("127.0.0.1:0", "")
	require.NoError(t, first.Start())
	defer first.Stop(context.Background())

	assert.Error(t, NewServer(first.Addr(), "").Start())
}

func TestServer_StopBeforeStart(t *testing.T) {
	s := NewServer(":0", "/m")
	assert.Empty(t, s.Addr())
	assert.NoError(t, s.Stop(context.Background()))
}
