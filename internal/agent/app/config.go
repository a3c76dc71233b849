package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"l7obs/internal/logging"
)

// Config 对应 YAML 中的 `l7obs:` 根节点，环境变量前缀 L7OBS_（如 L7OBS_SERVER_IP）。
type Config struct {
	Interface string `mapstructure:"interface" yaml:"interface"`
	// PcapFile 非空时回放文件，不打开网卡
	PcapFile string `mapstructure:"pcap_file" yaml:"pcap_file"`
	Snaplen  int    `mapstructure:"snaplen" yaml:"snaplen"`
	// ServerPorts 同时用于 BPF 过滤、方向判断和 eBPF 进程关联
	ServerPorts []uint16 `mapstructure:"server_ports" yaml:"server_ports"`
	// LocalIPs 为空时取本机网卡地址
	LocalIPs []string `mapstructure:"local_ips" yaml:"local_ips"`

	ServerIP        string        `mapstructure:"server_ip" yaml:"server_ip"`
	ServerPort      int           `mapstructure:"server_port" yaml:"server_port"`
	HTTPPostTimeout time.Duration `mapstructure:"http_post_timeout" yaml:"http_post_timeout"`

	VtapID    uint16 `mapstructure:"vtap_id" yaml:"vtap_id"`
	ShardID   uint8  `mapstructure:"shard_id" yaml:"shard_id"`
	LocalEpc  int32  `mapstructure:"local_epc" yaml:"local_epc"`
	RemoteEpc int32  `mapstructure:"remote_epc" yaml:"remote_epc"`

	ExportInterval   time.Duration `mapstructure:"export_interval" yaml:"export_interval"`
	RRTTimeout       time.Duration `mapstructure:"rrt_timeout" yaml:"rrt_timeout"`
	RRTCacheCapacity int           `mapstructure:"rrt_cache_capacity" yaml:"rrt_cache_capacity"`
	IdleTimeout      time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
	MaxFlows         int           `mapstructure:"max_flows" yaml:"max_flows"`
	SessionWindow    time.Duration `mapstructure:"session_window" yaml:"session_window"`
	BatchSize        int           `mapstructure:"batch_size" yaml:"batch_size"`
	QueueSize        int           `mapstructure:"queue_size" yaml:"queue_size"`

	EnableEBPF bool `mapstructure:"enable_ebpf" yaml:"enable_ebpf"`
	// MetricsAddr 为空时不暴露 /metrics
	MetricsAddr string `mapstructure:"metrics_addr" yaml:"metrics_addr"`

	Log logging.Config `mapstructure:"log" yaml:"log"`
}

type configRoot struct {
	L7obs Config `mapstructure:"l7obs"`
}

// Load 读取配置文件（path 为空时只用默认值和环境变量），不做校验。
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件失败：%w", err)
		}
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	var root configRoot
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("解析配置失败：%w", err)
	}
	return &root.L7obs, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("l7obs.interface", "")
	v.SetDefault("l7obs.pcap_file", "")
	v.SetDefault("l7obs.snaplen", 65535)
	v.SetDefault("l7obs.server_ports", []uint16{80, 8080, 53, 6379})
	v.SetDefault("l7obs.local_ips", []string{})

	v.SetDefault("l7obs.server_ip", "127.0.0.1")
	v.SetDefault("l7obs.server_port", 8090)
	v.SetDefault("l7obs.http_post_timeout", "5s")

	v.SetDefault("l7obs.vtap_id", 1)
	v.SetDefault("l7obs.shard_id", 0)
	v.SetDefault("l7obs.local_epc", 0)
	v.SetDefault("l7obs.remote_epc", 0)

	v.SetDefault("l7obs.export_interval", "10s")
	v.SetDefault("l7obs.rrt_timeout", "10s")
	v.SetDefault("l7obs.rrt_cache_capacity", 64)
	v.SetDefault("l7obs.idle_timeout", "60s")
	v.SetDefault("l7obs.max_flows", 65536)
	v.SetDefault("l7obs.session_window", "5s")
	v.SetDefault("l7obs.batch_size", 256)
	v.SetDefault("l7obs.queue_size", 64)

	v.SetDefault("l7obs.enable_ebpf", false)
	v.SetDefault("l7obs.metrics_addr", ":9101")

	def := logging.DefaultConfig()
	v.SetDefault("l7obs.log.level", def.Level)
	v.SetDefault("l7obs.log.format", def.Format)
	v.SetDefault("l7obs.log.file.filename", def.File.Filename)
	v.SetDefault("l7obs.log.file.max_size", def.File.MaxSize)
	v.SetDefault("l7obs.log.file.max_backups", def.File.MaxBackups)
	v.SetDefault("l7obs.log.file.max_age", def.File.MaxAge)
	v.SetDefault("l7obs.log.file.compress", def.File.Compress)
}

func (c *Config) Validate() error {
	var errs []error
	if c.Interface == "" && c.PcapFile == "" {
		errs = append(errs, errors.New("interface 和 pcap_file 至少填一个"))
	}
	if c.ServerIP == "" {
		errs = append(errs, errors.New("server_ip 不能为空"))
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("server_port 无效：%d", c.ServerPort))
	}
	if len(c.ServerPorts) == 0 {
		errs = append(errs, errors.New("server_ports 不能为空"))
	}
	if c.ExportInterval <= 0 {
		errs = append(errs, errors.New("export_interval 必须大于 0"))
	}
	if c.BatchSize <= 0 || c.QueueSize <= 0 {
		errs = append(errs, errors.New("batch_size 和 queue_size 必须大于 0"))
	}
	return errors.Join(errs...)
}
