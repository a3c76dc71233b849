// Package app 是 agent 的主流程：抓包、L7 解析、会话合并，定期上报会话日志和流性能统计。
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"l7obs/internal/agent/capture"
	"l7obs/internal/agent/filter"
	"l7obs/internal/agent/pidmap"
	"l7obs/internal/agent/report"
	"l7obs/internal/metrics"
)

// Run 一直运行到 ctx 取消或 pcap 回放结束；退出前输出所有等待中的会话并上报。
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("配置无效：%w", err)
	}

	src, err := capture.Open(cfg.Interface, cfg.PcapFile, cfg.Snaplen)
	if err != nil {
		return err
	}
	defer src.Close()

	if f, ok := src.(capture.Filterable); ok {
		// 在内核态按服务端口过滤，只把相关 TCP/UDP 包送到用户态
		rawIns, err := filter.TCPPortsBPF(cfg.ServerPorts)
		if err != nil {
			return err
		}
		if err := f.SetBPF(rawIns); err != nil {
			return fmt.Errorf("设置 BPF 失败：%w", err)
		}
	}

	var resolver *pidmap.Resolver
	if cfg.EnableEBPF {
		r, err := pidmap.NewResolver(cfg.ServerPorts)
		if err != nil {
			return err
		}
		resolver = r
		defer resolver.Close()
	}

	locals, err := localAddrs(cfg.LocalIPs)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		ms := metrics.NewServer(cfg.MetricsAddr, metrics.DefaultPath)
		if err := ms.Start(); err != nil {
			return err
		}
		defer ms.Stop(context.WithoutCancel(ctx))
	}

	p := newPipeline(cfg, src.LinkType().LayerType(), resolver, locals)
	rep := report.NewClient(cfg.ServerIP, cfg.ServerPort, cfg.HTTPPostTimeout)
	out := make(chan upload, cfg.QueueSize)

	log.WithFields(log.Fields{
		"iface":  cfg.Interface,
		"pcap":   cfg.PcapFile,
		"ports":  cfg.ServerPorts,
		"server": fmt.Sprintf("%s:%d", cfg.ServerIP, cfg.ServerPort),
	}).Info("agent 启动")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(out)
		err := captureLoop(gctx, src, p, out)
		p.send(out, p.tick(time.Now(), true))
		return err
	})
	g.Go(func() error {
		uploadLoop(ctx, rep, out)
		return nil
	})
	return g.Wait()
}

func captureLoop(ctx context.Context, src capture.Source, p *pipeline, out chan<- upload) error {
	ticker := time.NewTicker(p.cfg.ExportInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			recordKernelStats(src)
			p.send(out, p.tick(now, false))
		default:
		}

		data, ci, err := src.ReadPacket(ctx)
		if err != nil {
			switch {
			case ctx.Err() != nil:
				return nil
			case errors.Is(err, capture.ErrTimeout):
				continue
			case errors.Is(err, io.EOF):
				log.Info("pcap 回放结束")
				return nil
			}
			return err
		}
		p.handle(data, ci, time.Now())
		if p.full() {
			logs, n := p.takeBatch()
			p.send(out, upload{logs: logs, count: n})
		}
	}
}

// recordKernelStats 把实时抓包的内核计数同步到指标，回放文件没有这项。
func recordKernelStats(src capture.Source) {
	s, ok := src.(capture.StatsSource)
	if !ok {
		return
	}
	st, err := s.Stats()
	if err != nil {
		log.WithError(err).Debug("读取内核抓包统计失败")
		return
	}
	metrics.KernelPackets.Set(float64(st.Packets))
	metrics.KernelDrops.Set(float64(st.Drops))
}

// send 不阻塞抓包：队列满时丢弃这一批。
func (p *pipeline) send(out chan<- upload, u upload) {
	if len(u.logs) == 0 && len(u.perf) == 0 {
		return
	}
	select {
	case out <- u:
	default:
		metrics.DropsTotal.WithLabelValues(metrics.DropUploadQueue).Inc()
		log.WithFields(log.Fields{"logs": u.count, "perf_rows": len(u.perf)}).Warn("上报队列已满，丢弃")
	}
}

// uploadLoop 直到 in 关闭才返回，ctx 取消后仍把剩余批次发完。
func uploadLoop(ctx context.Context, rep *report.Client, in <-chan upload) {
	ctx = context.WithoutCancel(ctx)
	for u := range in {
		if len(u.logs) > 0 {
			err := rep.UploadLogs(ctx, u.logs)
			countUpload(metrics.KindLogs, err)
			if err != nil {
				log.WithError(err).WithField("logs", u.count).Warn("上报会话日志失败（丢弃该批）")
			}
		}
		if len(u.perf) > 0 {
			err := rep.UploadPerf(ctx, u.perf)
			countUpload(metrics.KindPerf, err)
			if err != nil {
				log.WithError(err).WithField("perf_rows", len(u.perf)).Warn("上报性能统计失败（丢弃该批）")
			}
		}
	}
}

func countUpload(kind string, err error) {
	result := metrics.ResultOK
	if err != nil {
		result = metrics.ResultError
	}
	metrics.UploadsTotal.WithLabelValues(kind, result).Inc()
}
