package conf

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPrecision  = 9
	DefaultChartWidth = 50
	DefaultChartType  = "line"
	DefaultOutputDir  = "."
)

type ChartConfig struct {
	Type  string `yaml:"type"`
	Width int    `yaml:"width"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxsizemb"`
	MaxBackups int    `yaml:"maxbackups"`
}

type Config struct {
	OutputDir string      `yaml:"outputdir"`
	Precision int32       `yaml:"precision"`
	Chart     ChartConfig `yaml:"chart"`
	Log       LogConfig   `yaml:"log"`
}

// 用 atomic.Value 存当前配置, 支持热更新时无锁读取
var cfgValue atomic.Value // stores *Config

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	// 规范化与默认值
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Precision == 0 {
		c.Precision = DefaultPrecision
	}
	if c.Precision < 0 {
		return nil, fmt.Errorf("invalid precision: %d", c.Precision)
	}
	c.Chart.Type = strings.ToLower(strings.TrimSpace(c.Chart.Type))
	if c.Chart.Type == "" {
		c.Chart.Type = DefaultChartType
	}
	if c.Chart.Type != "line" && c.Chart.Type != "bar" {
		return nil, fmt.Errorf("invalid chart type: %s", c.Chart.Type)
	}
	if c.Chart.Width == 0 {
		c.Chart.Width = DefaultChartWidth
	}
	if c.Chart.Width < 0 {
		return nil, fmt.Errorf("invalid chart width: %d", c.Chart.Width)
	}
	c.Log.Level = strings.ToUpper(strings.TrimSpace(c.Log.Level))

	return &c, nil
}

func Init(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	cfgValue.Store(c)
	return nil
}

// Get 返回当前配置, 未初始化时返回全默认值
func Get() *Config {
	cAny := cfgValue.Load()
	if cAny == nil {
		return &Config{
			OutputDir: DefaultOutputDir,
			Precision: DefaultPrecision,
			Chart:     ChartConfig{Type: DefaultChartType, Width: DefaultChartWidth},
		}
	}
	return cAny.(*Config)
}
