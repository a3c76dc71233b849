// Package capture 提供抓包数据源：AF_PACKET 实时抓包和 pcap 文件回放。
package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/bpf"
)

// ErrTimeout 表示这次读取没有等到包，调用方可以直接重试。
var ErrTimeout = errors.New("抓包超时")

// Source 是抓包循环读取的包来源。读到末尾返回 io.EOF。
type Source interface {
	ReadPacket(ctx context.Context) ([]byte, gopacket.CaptureInfo, error)
	LinkType() layers.LinkType
	Close() error
}

// Filterable 是支持内核态 BPF 过滤的数据源，回放文件不支持。
type Filterable interface {
	SetBPF(ins []bpf.RawInstruction) error
}

// KernelStats 是内核抓包计数，从打开数据源开始累计。
type KernelStats struct {
	Packets uint64
	Drops   uint64
}

// StatsSource 是能报告内核丢包的数据源。
type StatsSource interface {
	Stats() (KernelStats, error)
}

// PcapFileSource 顺序读取 pcap 文件，用于离线分析和回放测试。
type PcapFileSource struct {
	f *os.File
	r *pcapgo.Reader
}

var _ Source = (*PcapFileSource)(nil)

func OpenPcapFile(path string) (*PcapFileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开 pcap 文件失败：%w", err)
	}
	r, err := pcapgo.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("解析 pcap 文件头失败：%w", err)
	}
	log.WithFields(log.Fields{"path": path, "link_type": r.LinkType()}).Info("回放 pcap 文件")
	return &PcapFileSource{f: f, r: r}, nil
}

func (s *PcapFileSource) ReadPacket(ctx context.Context) ([]byte, gopacket.CaptureInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, gopacket.CaptureInfo{}, err
	}
	data, ci, err := s.r.ReadPacketData()
	if err != nil {
		// 文件末尾不完整的包也当作结束
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, gopacket.CaptureInfo{}, io.EOF
		}
		return nil, gopacket.CaptureInfo{}, err
	}
	return data, ci, nil
}

func (s *PcapFileSource) LinkType() layers.LinkType {
	return s.r.LinkType()
}

func (s *PcapFileSource) Close() error {
	return s.f.Close()
}

// Open 按配置选择数据源：pcapFile 非空时回放文件，否则在 iface 上抓包。
func Open(iface, pcapFile string, snaplen int) (Source, error) {
	if pcapFile != "" {
		return OpenPcapFile(pcapFile)
	}
	return OpenLive(iface, snaplen)
}
