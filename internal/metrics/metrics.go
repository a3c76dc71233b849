// Package metrics 定义 agent 和 server 的 Prometheus 指标。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AgentPacketsTotal 的 stage 取值
const (
	StageCaptured   = "captured"
	StageDecoded    = "decoded"
	StageClassified = "classified"
)

// SessionsOrphanTotal 的 reason 取值：没有配成会话、单独输出的半条日志
const (
	OrphanDuplicateRequest  = "duplicate_request"
	OrphanUnmatchedResponse = "unmatched_response"
	OrphanMergeFailed       = "merge_failed"
	OrphanExpired           = "expired"
	OrphanDrained           = "drained"
)

// DropsTotal 的 kind 取值
const (
	DropFlowTable   = "flow_table"
	DropUploadQueue = "upload_queue"
)

// UploadsTotal / ServerIngestedRowsTotal 的 kind 取值
const (
	KindLogs = "logs"
	KindPerf = "perf"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	// AgentPacketsTotal 按处理阶段统计包数
	AgentPacketsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "l7obs_agent_packets_total",
			Help: "Number of packets seen by the agent at each processing stage",
		},
		[]string{"stage"},
	)

	// KernelPackets / KernelDrops 是 AF_PACKET 的累计值，只有实时抓包时有
	KernelPackets = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "l7obs_agent_kernel_packets",
			Help: "Packets received by the capture socket since it was opened",
		},
	)

	KernelDrops = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "l7obs_agent_kernel_drops",
			Help: "Packets dropped by the kernel because the capture ring was full",
		},
	)

	SessionsMergedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "l7obs_agent_sessions_merged_total",
			Help: "Number of request/response pairs merged into one session record",
		},
	)

	SessionsOrphanTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "l7obs_agent_sessions_orphan_total",
			Help: "Number of request or response records emitted without a peer",
		},
		[]string{"reason"},
	)

	// SessionsPending 是等待响应的请求数
	SessionsPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "l7obs_agent_sessions_pending",
			Help: "Number of requests waiting for a response",
		},
	)

	FlowsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "l7obs_agent_flows_active",
			Help: "Number of flows in the flow table",
		},
	)

	FlowsEvictedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "l7obs_agent_flows_evicted_total",
			Help: "Number of idle flows removed from the flow table",
		},
	)

	EncodeErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "l7obs_agent_encode_errors_total",
			Help: "Number of session records that failed to encode",
		},
	)

	// DropsTotal 统计丢弃：流表满丢掉的包，上报队列满丢掉的批次
	DropsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "l7obs_agent_drops_total",
			Help: "Number of packets or batches dropped because a queue or table was full",
		},
		[]string{"kind"},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "l7obs_agent_uploads_total",
			Help: "Number of upload requests sent to the server",
		},
		[]string{"kind", "result"},
	)

	ServerIngestedRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "l7obs_server_ingested_rows_total",
			Help: "Number of rows stored by the server",
		},
		[]string{"kind"},
	)

	ServerRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "l7obs_server_rejected_requests_total",
			Help: "Number of upload requests rejected by the server",
		},
		[]string{"kind"},
	)
)
