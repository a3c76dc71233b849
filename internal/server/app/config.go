package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"l7obs/internal/logging"
)

type Config struct {
	ListenAddr      string        `mapstructure:"listen_addr" yaml:"listen_addr"`
	DBDriver        string        `mapstructure:"db_driver" yaml:"db_driver"` // duckdb / sqlite
	DBPath          string        `mapstructure:"db_path" yaml:"db_path"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`

	Log logging.Config `mapstructure:"log" yaml:"log"`
}

type configRoot struct {
	L7obs Config `mapstructure:"l7obs"`
}

// Load 与 agent 相同：YAML 根节点 l7obs，环境变量前缀 L7OBS_。
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
	v.SetDefault("l7obs.listen_addr", ":8090")
	v.SetDefault("l7obs.db_driver", "duckdb")
	v.SetDefault("l7obs.db_path", "")
	v.SetDefault("l7obs.shutdown_timeout", "10s")

	def := logging.DefaultConfig()
	v.SetDefault("l7obs.log.level", def.Level)
	v.SetDefault("l7obs.log.format", def.Format)
	v.SetDefault("l7obs.log.file.filename", def.File.Filename)
	v.SetDefault("l7obs.log.file.max_size", def.File.MaxSize)
	v.SetDefault("l7obs.log.file.max_backups", def.File.MaxBackups)
	v.SetDefault("l7obs.log.file.max_age", def.File.MaxAge)
	v.SetDefault("l7obs.log.file.compress", def.File.Compress)
}
