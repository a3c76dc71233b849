// Package logging 配置全局 logrus logger，三个程序共用。
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level  string     `mapstructure:"level" yaml:"level"`
	Format string     `mapstructure:"format" yaml:"format"` // text / json
	File   FileConfig `mapstructure:"file" yaml:"file"`
}

// FileConfig 为空文件名时只写 stdout。
type FileConfig struct {
	Filename   string `mapstructure:"filename" yaml:"filename"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"` // days
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "text",
		File:   FileConfig{MaxSize: 100, MaxBackups: 3, MaxAge: 7},
	}
}

// Init 按配置设置全局 logger，返回的 io.Closer 用于退出时关闭日志文件。
func Init(cfg Config) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("日志级别 %q 无效：%w", cfg.Level, err)
	}
	log.SetLevel(level)

	switch cfg.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	case "", "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.000"})
	default:
		return nil, fmt.Errorf("日志格式 %q 无效", cfg.Format)
	}

	if cfg.File.Filename == "" {
		log.SetOutput(os.Stdout)
		return nopCloser{}, nil
	}
	file := &lumberjack.Logger{
		Filename:   cfg.File.Filename,
		MaxSize:    cfg.File.MaxSize,
		MaxBackups: cfg.File.MaxBackups,
		MaxAge:     cfg.File.MaxAge,
		Compress:   cfg.File.Compress,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, file))
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
