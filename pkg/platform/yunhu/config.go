package yunhu

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 控制转换器输出中与部署相关的部分。
type Config struct {
	Platform      string `json:"platform" yaml:"platform"`             // 写入 platform/self.platform，默认 "yunhu"
	SelfID        string `json:"self_id" yaml:"self_id"`               // 机器人 ID，事件中未携带时使用
	IncludeRaw    bool   `json:"include_raw" yaml:"include_raw"`       // 是否在 yunhu_raw 中附带原始事件副本
	CommandPrefix string `json:"command_prefix" yaml:"command_prefix"` // 指令消息转为文本时使用的前缀，默认 "/"
}

// DefaultConfig 返回默认配置。
func DefaultConfig() Config {
	return Config{
		Platform:      Platform,
		CommandPrefix: "/",
	}
}

// withDefaults 为空字段补默认值。
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Platform == "" {
		c.Platform = def.Platform
	}
	if c.CommandPrefix == "" {
		c.CommandPrefix = def.CommandPrefix
	}
	return c
}

// LoadConfig reads and parses the configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg = cfg.withDefaults()
	return &cfg, nil
}
