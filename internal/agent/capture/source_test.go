package capture

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePcap(t *testing.T, frames [][]byte, ts time.Time) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.pcap")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := pcapgo.NewWriterNanos(f)
	require.NoError(t, w.WriteFileHeader(65535, layers.LinkTypeEthernet))
	for i, b := range frames {
		ci := gopacket.CaptureInfo{
			Timestamp:     ts.Add(time.Duration(i) * time.Millisecond),
			CaptureLength: len(b),
			Length:        len(b),
		}
		require.NoError(t, w.WritePacket(ci, b))
	}
	return path
}

func TestPcapFileSource(t *testing.T) {
	ts := time.Unix(1700000000, 500)
	path := writePcap(t, [][]byte{make([]byte, 60), make([]byte, 80)}, ts)

	src, err := OpenPcapFile(path)
	require.NoError(t, err)
	defer src.Close()
	assert.Equal(t, layers.LinkTypeEthernet, src.LinkType())

	ctx := context.Background()
	data, ci, err := src.ReadPacket(ctx)
	require.NoError(t, err)
	assert.Len(t, data, 60)
	assert.True(t, ci.Timestamp.Equal(ts))

	data, ci, err = src.ReadPacket(ctx)
	require.NoError(t, err)
	assert.Len(t, data, 80)
	assert.Equal(t, ts.Add(time.Millisecond).UnixNano(), ci.Timestamp.UnixNano())

	_, _, err = src.ReadPacket(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPcapFileSource_Errors(t *testing.T) {
	_, err := OpenPcapFile(filepath.Join(t.TempDir(), "missing.pcap"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.pcap")
	require.NoError(t, os.WriteFile(bad, []byte("not a pcap"), 0o644))
	_, err = OpenPcapFile(bad)
	assert.Error(t, err)

	path := writePcap(t, [][]byte{make([]byte, 60)}, time.Now())
	src, err := Open("", path, 0)
	require.NoError(t, err)
	defer src.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = src.ReadPacket(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
