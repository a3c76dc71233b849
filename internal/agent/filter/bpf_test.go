package filter

import (
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/bpf"
)

func frame(t *testing.T, v6 bool, transport gopacket.SerializableLayer) []byte {
	t.Helper()
	eth := &layers.Ethernet{
		SrcMAC: net.HardwareAddr{0x02, 0, 0, 0, 0, 1},
		DstMAC: net.HardwareAddr{0x02, 0, 0, 0, 0, 2},
	}
	var ip gopacket.NetworkLayer
	var ipLayer gopacket.SerializableLayer
	proto := layers.IPProtocolTCP
	if _, ok := transport.(*layers.UDP); ok {
		proto = layers.IPProtocolUDP
	}
	if v6 {
		eth.EthernetType = layers.EthernetTypeIPv6
		l := &layers.IPv6{Version: 6, HopLimit: 64, NextHeader: proto,
			SrcIP: net.ParseIP("fd00::1"), DstIP: net.ParseIP("fd00::2")}
		ip, ipLayer = l, l
	} else {
		eth.EthernetType = layers.EthernetTypeIPv4
		// 带 4 字节 options，验证按 IHL 取端口
		l := &layers.IPv4{Version: 4, TTL: 64, Protocol: proto,
			SrcIP: net.IPv4(10, 0, 0, 1), DstIP: net.IPv4(10, 0, 0, 2),
			Options: []layers.IPv4Option{{OptionType: 1}, {OptionType: 1}, {OptionType: 1}, {OptionType: 0}}}
		ip, ipLayer = l, l
	}
	switch l := transport.(type) {
	case *layers.TCP:
		require.NoError(t, l.SetNetworkLayerForChecksum(ip))
	case *layers.UDP:
		require.NoError(t, l.SetNetworkLayerForChecksum(ip))
	}
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	require.NoError(t, gopacket.SerializeLayers(buf, opts, eth, ipLayer, transport, gopacket.Payload("hi")))
	return buf.Bytes()
}

func TestPortsFilter(t *testing.T) {
	ins, err := PortsFilter([]uint16{80, 8080, 53})
	require.NoError(t, err)
	vm, err := bpf.NewVM(ins)
	require.NoError(t, err)

	tests := []struct {
		name   string
		v6     bool
		l4     gopacket.SerializableLayer
		accept bool
	}{
		{"v4 tcp dst 80", false, &layers.TCP{SrcPort: 51000, DstPort: 80, Window: 1}, true},
		{"v4 tcp src 8080", false, &layers.TCP{SrcPort: 8080, DstPort: 51000, Window: 1}, true},
		{"v4 tcp other", false, &layers.TCP{SrcPort: 51000, DstPort: 443, Window: 1}, false},
		{"v4 udp 53", false, &layers.UDP{SrcPort: 40000, DstPort: 53}, true},
		{"v4 udp other", false, &layers.UDP{SrcPort: 40000, DstPort: 123}, false},
		{"v6 tcp dst 80", true, &layers.TCP{SrcPort: 51000, DstPort: 80, Window: 1}, true},
		{"v6 udp src 53", true, &layers.UDP{SrcPort: 53, DstPort: 40000}, true},
		{"v6 tcp other", true, &layers.TCP{SrcPort: 51000, DstPort: 22, Window: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := vm.Run(frame(t, tt.v6, tt.l4))
			require.NoError(t, err)
			if tt.accept {
				assert.NotZero(t, n)
			} else {
				assert.Zero(t, n)
			}
		})
	}
}

func TestPortsFilter_NonIP(t *testing.T) {
	ins, err := PortsFilter([]uint16{80})
	require.NoError(t, err)
	vm, err := bpf.NewVM(ins)
	require.NoError(t, err)

	arp := make([]byte, 42)
	arp[12], arp[13] = 0x08, 0x06
	n, err := vm.Run(arp)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTCPPortsBPF(t *testing.T) {
	raw, err := TCPPortsBPF([]uint16{80})
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	_, err = TCPPortsBPF(nil)
	assert.ErrorIs(t, err, ErrNoPorts)

	many := make([]uint16, 300)
	for i := range many {
		many[i] = uint16(i + 1)
	}
	_, err = TCPPortsBPF(many)
	assert.Error(t, err)
}
