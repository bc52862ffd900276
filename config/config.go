package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration. Consumed at construction time
// only; nothing here is mutable at runtime.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Project Monitor specifics
	Telegram  TelegramConfig
	Anthropic AnthropicConfig
	Sentry    SentryConfig
	Monitor   MonitorConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken        string
	WebhookURL      string
	SecretToken     string
	AuthorizedUsers []int64
	RateLimitPerMin int
}

type AnthropicConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

type SentryConfig struct {
	Token    string
	Org      string
	Domain   string
	Projects []string
}

// MonitorConfig tunes the in-memory state layer and the website probes.
type MonitorConfig struct {
	Websites           []string
	CacheTTLMinutes    int
	HistoryMaxMessages int
	HistoryExpiryHours float64
	ProbeTimeoutSec    int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = viper.GetString("telegram.secret_token")
	cfg.Telegram.RateLimitPerMin = viper.GetInt("telegram.rate_limit_per_min")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	users, err := splitInt64List(viper.GetString("telegram.authorized_users"))
	if err != nil {
		return nil, fmt.Errorf("invalid telegram.authorized_users: %w", err)
	}
	if raw := viper.GetString("authorized_users"); raw != "" {
		users, err = splitInt64List(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid authorized_users: %w", err)
		}
	}
	cfg.Telegram.AuthorizedUsers = users

	// Anthropic
	cfg.Anthropic.APIKey = viper.GetString("anthropic.api_key")
	cfg.Anthropic.BaseURL = viper.GetString("anthropic.base_url")
	cfg.Anthropic.Model = viper.GetString("anthropic.model")
	cfg.Anthropic.MaxTokens = viper.GetInt("anthropic.max_tokens")
	if apiKey := viper.GetString("anthropic_api_key"); apiKey != "" {
		cfg.Anthropic.APIKey = apiKey
	}

	// Sentry
	cfg.Sentry.Token = viper.GetString("sentry.token")
	cfg.Sentry.Org = viper.GetString("sentry.org")
	cfg.Sentry.Domain = viper.GetString("sentry.domain")
	cfg.Sentry.Projects = splitList(viper.GetString("sentry.projects"))
	if token := viper.GetString("sentry_token"); token != "" {
		cfg.Sentry.Token = token
	}
	if org := viper.GetString("sentry_org"); org != "" {
		cfg.Sentry.Org = org
	}
	if projects := viper.GetString("sentry_projects"); projects != "" {
		cfg.Sentry.Projects = splitList(projects)
	}

	// Monitor state layer
	cfg.Monitor.Websites = splitList(viper.GetString("monitor.websites"))
	if sites := viper.GetString("monitored_websites"); sites != "" {
		cfg.Monitor.Websites = splitList(sites)
	}
	cfg.Monitor.CacheTTLMinutes = viper.GetInt("monitor.cache_ttl_minutes")
	cfg.Monitor.HistoryMaxMessages = viper.GetInt("monitor.history_max_messages")
	cfg.Monitor.HistoryExpiryHours = viper.GetFloat64("monitor.history_expiry_hours")
	cfg.Monitor.ProbeTimeoutSec = viper.GetInt("monitor.probe_timeout_sec")

	// Malformed state-layer tuning is a configuration error, surfaced once here.
	if cfg.Monitor.CacheTTLMinutes <= 0 {
		return nil, fmt.Errorf("monitor.cache_ttl_minutes must be positive, got %d", cfg.Monitor.CacheTTLMinutes)
	}
	if cfg.Monitor.HistoryMaxMessages <= 0 {
		return nil, fmt.Errorf("monitor.history_max_messages must be positive, got %d", cfg.Monitor.HistoryMaxMessages)
	}
	if cfg.Monitor.HistoryExpiryHours <= 0 {
		return nil, fmt.Errorf("monitor.history_expiry_hours must be positive, got %v", cfg.Monitor.HistoryExpiryHours)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("telegram.rate_limit_per_min", 60)

	viper.SetDefault("sentry.domain", "sentry.io")

	// State layer defaults: 5-minute cache TTL, 5 exchanges per user,
	// 1-hour history window, 10-second probe timeout.
	viper.SetDefault("monitor.cache_ttl_minutes", 5)
	viper.SetDefault("monitor.history_max_messages", 5)
	viper.SetDefault("monitor.history_expiry_hours", 1.0)
	viper.SetDefault("monitor.probe_timeout_sec", 10)
}

// splitList splits a comma-separated string, trimming blanks.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// splitInt64List splits a comma-separated string of int64 IDs.
func splitInt64List(raw string) ([]int64, error) {
	var out []int64
	for _, item := range splitList(raw) {
		id, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not an integer id: %q", item)
		}
		out = append(out, id)
	}
	return out, nil
}
