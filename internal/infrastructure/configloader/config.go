// Package configloader 负责加载服务配置：.env → 环境变量 → YAML 文件。
package configloader

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/joho/godotenv"
)

// 默认值。
const (
	DefaultHTTPAddr          = "0.0.0.0:8000"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultCallTimeout       = 10 * time.Second
	DefaultSearchMaxResults  = 25
	DefaultRequestsPerSecond = 5
	DefaultBurst             = 5
	DefaultMaxResults        = 15
	DefaultMaxURLs           = 5
	DefaultHistoryLimit      = 10
	DefaultRankingMode       = "passthrough"
)

// Config 是服务完整配置。
type Config struct {
	Server    ServerConfig    `json:"server"`
	YouTube   YouTubeConfig   `json:"youtube"`
	Recommend RecommendConfig `json:"recommend"`
	Log       LogConfig       `json:"log"`
}

// ServerConfig 描述对外监听配置。
type ServerConfig struct {
	HTTP HTTPConfig `json:"http"`
}

// HTTPConfig 描述 HTTP 服务配置。
type HTTPConfig struct {
	Addr           string `json:"addr"`
	RequestTimeout string `json:"request_timeout"`
}

// YouTubeConfig 描述上游 YouTube Data API 访问配置。
type YouTubeConfig struct {
	APIKey            string  `json:"api_key"`
	Endpoint          string  `json:"endpoint"`
	CallTimeout       string  `json:"call_timeout"`
	SearchMaxResults  int64   `json:"search_max_results"`
	RequestsPerSecond float64 `json:"requests_per_second"`
	Burst             int     `json:"burst"`
	FixturePath       string  `json:"fixture_path"`
}

// RecommendConfig 描述推荐管线参数。
type RecommendConfig struct {
	MaxResults   int    `json:"max_results"`
	MaxURLs      int    `json:"max_urls"`
	HistoryLimit int    `json:"history_limit"`
	RankingMode  string `json:"ranking_mode"`
}

// LogConfig 描述日志配置。
type LogConfig struct {
	Level string `json:"level"`
}

// Load 读取配置文件并填充默认值。
func Load(path string) (*Config, error) {
	loadDotEnv()

	c := config.New(config.WithSource(
		env.NewSource(),
		file.NewSource(path),
	))
	defer c.Close()

	if err := c.Load(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	var cfg Config
	if err := c.Scan(&cfg); err != nil {
		return nil, fmt.Errorf("scan config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults 为未设置的字段填充默认值。
func (c *Config) ApplyDefaults() {
	if c.Server.HTTP.Addr == "" {
		c.Server.HTTP.Addr = DefaultHTTPAddr
	}
	if c.YouTube.SearchMaxResults <= 0 {
		c.YouTube.SearchMaxResults = DefaultSearchMaxResults
	}
	if c.YouTube.RequestsPerSecond <= 0 {
		c.YouTube.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if c.YouTube.Burst <= 0 {
		c.YouTube.Burst = DefaultBurst
	}
	if c.Recommend.MaxResults <= 0 {
		c.Recommend.MaxResults = DefaultMaxResults
	}
	if c.Recommend.MaxURLs <= 0 {
		c.Recommend.MaxURLs = DefaultMaxURLs
	}
	if c.Recommend.HistoryLimit <= 0 {
		c.Recommend.HistoryLimit = DefaultHistoryLimit
	}
	c.Recommend.RankingMode = strings.ToLower(strings.TrimSpace(c.Recommend.RankingMode))
	if c.Recommend.RankingMode == "" {
		c.Recommend.RankingMode = DefaultRankingMode
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate 校验配置一致性。
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.YouTube.APIKey) == "" && strings.TrimSpace(c.YouTube.FixturePath) == "" {
		errs = append(errs, errors.New("youtube.api_key is required unless youtube.fixture_path is set"))
	}
	switch c.Recommend.RankingMode {
	case "passthrough", "relevance":
	default:
		errs = append(errs, fmt.Errorf("recommend.ranking_mode %q must be passthrough or relevance", c.Recommend.RankingMode))
	}
	if c.YouTube.SearchMaxResults > 50 {
		errs = append(errs, fmt.Errorf("youtube.search_max_results %d exceeds upstream limit 50", c.YouTube.SearchMaxResults))
	}
	for name, value := range map[string]string{
		"server.http.request_timeout": c.Server.HTTP.RequestTimeout,
		"youtube.call_timeout":        c.YouTube.CallTimeout,
	} {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// RequestTimeoutDuration 返回单请求超时。
func (h HTTPConfig) RequestTimeoutDuration() time.Duration {
	return parseDuration(h.RequestTimeout, DefaultRequestTimeout)
}

// CallTimeoutDuration 返回单次上游调用超时。
func (y YouTubeConfig) CallTimeoutDuration() time.Duration {
	return parseDuration(y.CallTimeout, DefaultCallTimeout)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// loadDotEnv 优先加载 ENV_FILE 指定的文件，否则尝试当前目录的 .env。
// 已存在的环境变量不会被 .env 覆盖。
func loadDotEnv() {
	if p := os.Getenv("ENV_FILE"); p != "" {
		_ = godotenv.Overload(p)
		return
	}
	if st, err := os.Stat(".env"); err == nil && !st.IsDir() {
		_ = godotenv.Load(".env")
	}
}
