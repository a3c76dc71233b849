package packet

import (
	"net/netip"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// Decoder 把链路层帧解到 MetaPacket。复用内部各层结构体，不是并发安全的。
// 解出的 Payload、MAC 引用原始 data，调用方处理完这个包之前 data 不能被复用。
type Decoder struct {
	eth     layers.Ethernet
	dot1q   layers.Dot1Q
	ip4     layers.IPv4
	ip6     layers.IPv6
	tcp     layers.TCP
	udp     layers.UDP
	payload gopacket.Payload

	parser  *gopacket.DecodingLayerParser
	decoded []gopacket.LayerType
}

// NewDecoder 的 first 一般是 layers.LayerTypeEthernet；原始 IP 抓包用 LayerTypeIPv4。
func NewDecoder(first gopacket.LayerType) *Decoder {
	d := &Decoder{decoded: make([]gopacket.LayerType, 0, 8)}
	d.parser = gopacket.NewDecodingLayerParser(first,
		&d.eth, &d.dot1q, &d.ip4, &d.ip6, &d.tcp, &d.udp, &d.payload)
	d.parser.IgnoreUnsupported = true
	return d
}

// Decode 只接受带 payload 的 TCP/UDP 包；方向和流相关字段由流表填写。
func (d *Decoder) Decode(data []byte, ci gopacket.CaptureInfo, pkt *MetaPacket) bool {
	if err := d.parser.DecodeLayers(data, &d.decoded); err != nil {
		return false
	}

	*pkt = MetaPacket{
		Timestamp: time.Duration(ci.Timestamp.UnixNano()),
		TapPort:   uint32(ci.InterfaceIndex),
	}
	hasIP, hasL4 := false, false
	for _, lt := range d.decoded {
		switch lt {
		case layers.LayerTypeEthernet:
			pkt.SrcMAC, pkt.DstMAC = d.eth.SrcMAC, d.eth.DstMAC
		case layers.LayerTypeIPv4:
			pkt.SrcIP, _ = netip.AddrFromSlice(d.ip4.SrcIP.To4())
			pkt.DstIP, _ = netip.AddrFromSlice(d.ip4.DstIP.To4())
			hasIP = true
		case layers.LayerTypeIPv6:
			pkt.SrcIP, _ = netip.AddrFromSlice(d.ip6.SrcIP)
			pkt.DstIP, _ = netip.AddrFromSlice(d.ip6.DstIP)
			hasIP = true
		case layers.LayerTypeTCP:
			pkt.Proto = layers.IPProtocolTCP
			pkt.SrcPort, pkt.DstPort = uint16(d.tcp.SrcPort), uint16(d.tcp.DstPort)
			pkt.TCPSeq = d.tcp.Seq
			pkt.Payload = d.tcp.Payload
			hasL4 = true
		case layers.LayerTypeUDP:
			pkt.Proto = layers.IPProtocolUDP
			pkt.SrcPort, pkt.DstPort = uint16(d.udp.SrcPort), uint16(d.udp.DstPort)
			pkt.Payload = d.udp.Payload
			hasL4 = true
		}
	}
	return hasIP && hasL4 && len(pkt.Payload) > 0
}
