package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName 配置文件名
const FileName = "cubit.toml"

// Config cubit 配置
type Config struct {
	Language string       `toml:"language"` // 消息语言，"en" 或 "zh"，为空时按环境变量检测
	Repl     ReplConfig   `toml:"repl"`
	Server   ServerConfig `toml:"server"`
	Log      LogConfig    `toml:"log"`
}

// ReplConfig 交互式环境配置
type ReplConfig struct {
	Prompt string `toml:"prompt"`
	Echo   bool   `toml:"echo"` // 没有输出时回显表达式的值
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Addr    string   `toml:"addr"`
	Timeout Duration `toml:"timeout"` // 单次执行的时间上限
	History string   `toml:"history"` // sqlite 文件路径，为空时不记录历史
}

// LogConfig 日志配置
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"` // 为空时写到 stderr
}

// Duration 可以从 "5s" 这样的字符串解码的时长
type Duration struct {
	time.Duration
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText 实现 encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Repl: ReplConfig{
			Prompt: "cubit> ",
			Echo:   true,
		},
		Server: ServerConfig{
			Addr:    ":8080",
			Timeout: Duration{5 * time.Second},
		},
	}
}

// FindAndLoad 从指定目录向上查找 cubit.toml 并加载，然后应用环境变量
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，使用默认配置
		config := DefaultConfig()
		config.ApplyEnv()
		return config, "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}
	config.ApplyEnv()

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找 cubit.toml
func FindConfigFile(startDir string) string {
	dir := startDir

	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// 获取父目录
		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件，文件里没有出现的字段保留默认值
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}

	if config.Repl.Prompt == "" {
		config.Repl.Prompt = DefaultConfig().Repl.Prompt
	}
	if config.Server.Addr == "" {
		config.Server.Addr = DefaultConfig().Server.Addr
	}
	if config.Server.Timeout.Duration <= 0 {
		config.Server.Timeout = DefaultConfig().Server.Timeout
	}

	// history 相对于配置文件所在目录
	if config.Server.History != "" && config.Server.History != ":memory:" && !filepath.IsAbs(config.Server.History) {
		config.Server.History = filepath.Join(filepath.Dir(path), config.Server.History)
	}

	return config, nil
}

// ApplyEnv 应用环境变量：PORT 覆盖监听端口
func (c *Config) ApplyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
}
