package pidmap

import (
	"net/netip"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/cilium/ebpf/asm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	src = netip.MustParseAddrPort("192.168.1.1:12345")
	dst = netip.MustParseAddrPort("10.0.0.1:80")
)

func TestMakeKey_NetOrder(t *testing.T) {
	key, ok := makeKey(src, dst, true)
	require.True(t, ok)

	// 地址在内存里是网络序
	assert.Equal(t, [4]byte{0xC0, 0xA8, 0x01, 0x01}, *(*[4]byte)(unsafe.Pointer(&key.SrcIP)))
	assert.Equal(t, [4]byte{0x0A, 0x00, 0x00, 0x01}, *(*[4]byte)(unsafe.Pointer(&key.DstIP)))
	// 12345 = 0x3039
	assert.Equal(t, [2]byte{0x30, 0x39}, *(*[2]byte)(unsafe.Pointer(&key.SrcPort)))
}

func TestMakeKey_HostOrder(t *testing.T) {
	key, ok := makeKey(src, dst, false)
	require.True(t, ok)
	assert.Equal(t, [4]byte{0xC0, 0xA8, 0x01, 0x01}, *(*[4]byte)(unsafe.Pointer(&key.SrcIP)))
	assert.Equal(t, uint16(12345), key.SrcPort)
	assert.Equal(t, uint16(80), key.DstPort)
}

func TestMakeKey_Mapped(t *testing.T) {
	mapped := netip.AddrPortFrom(netip.MustParseAddr("::ffff:192.168.1.1"), 12345)
	a, ok := makeKey(mapped, dst, true)
	require.True(t, ok)
	b, _ := makeKey(src, dst, true)
	assert.Equal(t, b, a)

	_, ok = makeKey(netip.MustParseAddrPort("[fd00::1]:80"), dst, true)
	assert.False(t, ok)
}

func TestSwap16(t *testing.T) {
	assert.Equal(t, uint16(0x5000), swap16(80))
	assert.Equal(t, uint16(0x901F), swap16(8080))
}

func TestBuildProgram_PortChecks(t *testing.T) {
	ports := []uint16{80, 6379, 53}
	ins := buildProgram(3, offsets{family: 16, newstate: 24, sport: 28, dport: 30, saddr: 32, daddr: 36}, ports)

	var jeq, calls int
	symbols := map[string]bool{}
	for _, in := range ins {
		if in.OpCode.JumpOp() == asm.JEq && in.Reference() == "match" {
			jeq++
		}
		if in.IsBuiltinCall() && in.Constant == int64(asm.FnMapUpdateElem) {
			calls++
		}
		if s := in.Symbol(); s != "" {
			symbols[s] = true
		}
	}
	// 源端口和目的端口，每个端口两种字节序
	assert.Equal(t, 4*len(ports), jeq)
	assert.Equal(t, 2, calls)
	assert.True(t, symbols["match"])
	assert.True(t, symbols["exit"])
	assert.Equal(t, asm.Return(), ins[len(ins)-1])
}

func TestResolver_NilSafe(t *testing.T) {
	var r *Resolver
	assert.Zero(t, r.Lookup(src, dst))
	assert.Empty(t, r.ProcessName(1))
	assert.NoError(t, r.Close())
	assert.Zero(t, (&Resolver{}).Lookup(src, dst))
}

func TestResolver_ProcessName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "42"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "42", "comm"), []byte("nginx\n"), 0o644))

	r := newResolver(root)
	assert.Equal(t, "nginx", r.ProcessName(42))
	// 进程退出后仍命中缓存
	require.NoError(t, os.RemoveAll(filepath.Join(root, "42")))
	assert.Equal(t, "nginx", r.ProcessName(42))
	assert.Empty(t, r.ProcessName(43))
	assert.Empty(t, r.ProcessName(0))
}
