package capture

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/afpacket"
	"github.com/google/gopacket/layers"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/bpf"
)

// AnyInterface 在所有网卡上抓包。
const AnyInterface = "any"

// mmap 环形缓冲区参数
const (
	minFrameSize     = 2048
	maxFrameSize     = 1 << 16
	defaultBlockSize = 1 << 20
	framesPerBlock   = 16
	ringBlocks       = 64
	// 没包时最多阻塞这么久，抓包循环要靠超时处理定时上报
	pollTimeout = 250 * time.Millisecond
)

// LiveSource 通过 AF_PACKET（mmap 环形缓冲区）在网卡上实时抓包，链路层固定是以太网。
// 和 PcapFileSource 不同，它支持内核态 BPF 过滤和丢包统计。
type LiveSource struct {
	iface string
	tp    *afpacket.TPacket
}

var (
	_ Source      = (*LiveSource)(nil)
	_ Filterable  = (*LiveSource)(nil)
	_ StatsSource = (*LiveSource)(nil)
)

// OpenLive 打开 iface 上的抓包，iface 为 AnyInterface 时不绑定网卡。
// 需要 root 或 CAP_NET_RAW。
func OpenLive(iface string, snaplen int) (*LiveSource, error) {
	if iface == "" {
		return nil, errors.New("interface 不能为空")
	}

	frameSize, blockSize := ringLayout(snaplen)
	opts := []interface{}{
		afpacket.OptFrameSize(frameSize),
		afpacket.OptBlockSize(blockSize),
		afpacket.OptNumBlocks(ringBlocks),
		afpacket.OptPollTimeout(pollTimeout),
	}
	if iface != AnyInterface {
		opts = append(opts, afpacket.OptInterface(iface))
	}

	tp, err := afpacket.NewTPacket(opts...)
	if err != nil {
		return nil, openLiveError(iface, err)
	}
	log.WithFields(log.Fields{
		"iface":      iface,
		"frame_size": frameSize,
		"block_size": blockSize,
	}).Info("开始实时抓包")
	return &LiveSource{iface: iface, tp: tp}, nil
}

// ringLayout 按 snaplen 算帧大小，帧大小取 2 的幂并限制在 [2K, 64K]；
// 块大小必须是帧大小的整数倍。
func ringLayout(snaplen int) (frameSize, blockSize int) {
	frameSize = min(max(nextPow2(snaplen), minFrameSize), maxFrameSize)
	blockSize = defaultBlockSize
	if blockSize%frameSize != 0 {
		blockSize = frameSize * framesPerBlock
	}
	return frameSize, blockSize
}

func openLiveError(iface string, err error) error {
	switch {
	case errors.Is(err, syscall.EPERM) || errors.Is(err, syscall.EACCES):
		return fmt.Errorf("打开 AF_PACKET 失败：%w（需要 root 或 CAP_NET_RAW）", err)
	case iface != AnyInterface && isOpError(err):
		return fmt.Errorf("打开 AF_PACKET 失败：%w（检查网卡名是否存在：%s）", err, iface)
	default:
		return fmt.Errorf("打开 AF_PACKET 失败：%w", err)
	}
}

func isOpError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func nextPow2(v int) int {
	if v <= 1 {
		return 1
	}
	n := 1
	for n < v {
		n <<= 1
	}
	return n
}

func (s *LiveSource) Close() error {
	if s.tp != nil {
		s.tp.Close()
	}
	return nil
}

func (s *LiveSource) LinkType() layers.LinkType {
	return layers.LinkTypeEthernet
}

// SetBPF 挂载内核态过滤器，之后只有命中的包会拷到环形缓冲区。
func (s *LiveSource) SetBPF(ins []bpf.RawInstruction) error {
	if s.tp == nil {
		return os.ErrInvalid
	}
	return s.tp.SetBPF(ins)
}

// Stats 返回打开以来内核收到和丢弃的包数。
func (s *LiveSource) Stats() (KernelStats, error) {
	if s.tp == nil {
		return KernelStats{}, os.ErrInvalid
	}
	v1, v3, err := s.tp.SocketStats()
	if err != nil {
		return KernelStats{}, fmt.Errorf("读取 %s 抓包统计失败：%w", s.iface, err)
	}
	// 只有实际使用的 TPACKET 版本那一份有值
	return KernelStats{
		Packets: uint64(v1.Packets() + v3.Packets()),
		Drops:   uint64(v1.Drops() + v3.Drops()),
	}, nil
}

// ReadPacket 返回的切片指向环形缓冲区，下次读取后失效。
func (s *LiveSource) ReadPacket(ctx context.Context) ([]byte, gopacket.CaptureInfo, error) {
	if s.tp == nil {
		return nil, gopacket.CaptureInfo{}, os.ErrInvalid
	}

	data, ci, err := s.tp.ZeroCopyReadPacketData()
	switch {
	case err == nil:
		return data, ci, nil
	case ctx.Err() != nil:
		return nil, gopacket.CaptureInfo{}, ctx.Err()
	case errors.Is(err, afpacket.ErrTimeout) || errors.Is(err, afpacket.ErrPoll):
		return nil, gopacket.CaptureInfo{}, ErrTimeout
	default:
		return nil, gopacket.CaptureInfo{}, fmt.Errorf("读取 AF_PACKET 失败：%w", err)
	}
}
