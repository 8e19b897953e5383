package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Hara602/netSentry/internal/sysutil"
)

type Config struct {
	LogFile     string        `yaml:"log_file"`
	LogTag      string        `yaml:"log_tag"`
	Interval    time.Duration `yaml:"interval"`
	Headless    bool          `yaml:"headless"`
	MetricsAddr string        `yaml:"metrics_addr,omitempty"`
}

func Default() Config {
	return Config{
		LogFile:  sysutil.DefaultLogFile,
		LogTag:   sysutil.DefaultLogTag,
		Interval: time.Second,
	}
}

// Load 在默认值之上读取 YAML 文件; path 为空时直接返回默认值
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.LogFile == "" {
		errs = append(errs, errors.New("log_file must not be empty"))
	}
	if c.LogTag == "" {
		errs = append(errs, errors.New("log_tag must not be empty"))
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval must be positive, got %s", c.Interval))
	}
	return errors.Join(errs...)
}
