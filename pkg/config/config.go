// Package config 负责应用配置的默认值、加载和校验
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Dial    DialConfig    `yaml:"dial"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width           int      `yaml:"width"`
	Height          int      `yaml:"height"`
	Title           string   `yaml:"title"`
	Resizable       bool     `yaml:"resizable"`
	BackgroundColor [4]uint8 `yaml:"backgroundColor"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"logFile"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:           480,
			Height:          480,
			Title:           "Thermostat Dial",
			Resizable:       true,
			BackgroundColor: DefaultBackgroundColor,
		},
		Dial: DialConfig{
			RingWidth:     DefaultRingWidth,
			Maximum:       DefaultMaximum,
			LabelFontSize: DefaultLabelFontSize,
			RingColor:     DefaultRingColor,
			BallColor:     DefaultBallColor,
			LabelColor:    DefaultLabelColor,
			Padding:       20,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load 从 YAML 文件加载配置
//
// 文件不存在时返回默认配置；文件中未出现的字段保留默认值。
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return cfg, nil
}

// Validate 校验配置取值
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Dial.RingWidth <= 0 {
		return fmt.Errorf("dial ringWidth must be positive, got %v", c.Dial.RingWidth)
	}
	if c.Dial.Maximum <= 0 {
		return fmt.Errorf("dial maximum must be positive, got %d", c.Dial.Maximum)
	}
	if c.Dial.LabelFontSize <= 0 {
		return fmt.Errorf("dial labelFontSize must be positive, got %v", c.Dial.LabelFontSize)
	}
	if c.Dial.Padding < 0 {
		return fmt.Errorf("dial padding must not be negative, got %v", c.Dial.Padding)
	}
	return nil
}
