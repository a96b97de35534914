package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"fplthreats/internal/logging"
)

// Config materialises application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Logging  logging.Config `mapstructure:"logging"`
	Source   SourceConfig   `mapstructure:"source"`
	Filter   FilterConfig   `mapstructure:"filter"`
	Form     FormConfig     `mapstructure:"form"`
	Report   ReportConfig   `mapstructure:"report"`
	Matcher  MatcherConfig  `mapstructure:"matcher"`
	Lists    ListsConfig    `mapstructure:"lists"`
	Database DatabaseConfig `mapstructure:"database"`
	Output   OutputConfig   `mapstructure:"output"`
	Watch    WatchConfig    `mapstructure:"watch"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// SourceConfig points at the stats API.
type SourceConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	UserAgent      string        `mapstructure:"user_agent"`
}

// FilterConfig holds the candidate thresholds.
type FilterConfig struct {
	GameweeksWindow int     `mapstructure:"gameweeks_window"`
	PPGThreshold    float64 `mapstructure:"ppg_threshold"`
	MinOwnership    float64 `mapstructure:"min_ownership"`
	MinPrice        float64 `mapstructure:"min_price"`
	MaxPrice        float64 `mapstructure:"max_price"`
}

// FormConfig sizes the recent-form window.
type FormConfig struct {
	WindowSize int `mapstructure:"window_size"`
}

// ReportConfig tunes the presented table.
type ReportConfig struct {
	MinRecentForm float64 `mapstructure:"min_recent_form"`
}

// MatcherConfig tunes fuzzy name search.
type MatcherConfig struct {
	Threshold int `mapstructure:"threshold"`
	Limit     int `mapstructure:"limit"`
}

// ListsConfig says where the held/unwanted id lists live.
type ListsConfig struct {
	Source       string `mapstructure:"source"`
	HeldFile     string `mapstructure:"held_file"`
	UnwantedFile string `mapstructure:"unwanted_file"`
}

// DatabaseConfig encapsulates PostgreSQL connectivity.
type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// OutputConfig selects the report sinks besides the console.
type OutputConfig struct {
	Clipboard bool           `mapstructure:"clipboard"`
	Telegram  TelegramConfig `mapstructure:"telegram"`
}

// TelegramConfig describes the Telegram report sink.
type TelegramConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	BotToken string        `mapstructure:"bot_token"`
	ChatID   string        `mapstructure:"chat_id"`
	APIBase  string        `mapstructure:"api_base"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// WatchConfig schedules repeated report runs.
type WatchConfig struct {
	Cron     string        `mapstructure:"cron"`
	Interval time.Duration `mapstructure:"interval"`
}

const (
	ListSourceFile     = "file"
	ListSourcePostgres = "postgres"
)

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FPLTHREATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "fplthreats")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("source.base_url", "https://fantasy.premierleague.com/api")
	v.SetDefault("source.request_timeout", "10s")

	v.SetDefault("filter.gameweeks_window", 8)
	v.SetDefault("filter.ppg_threshold", 3.5)
	v.SetDefault("filter.min_ownership", 7.5)
	v.SetDefault("filter.min_price", 4.0)
	v.SetDefault("filter.max_price", 15.0)

	v.SetDefault("form.window_size", 5)
	v.SetDefault("report.min_recent_form", 4.5)

	v.SetDefault("matcher.threshold", 80)
	v.SetDefault("matcher.limit", 10)

	v.SetDefault("lists.source", ListSourceFile)
	v.SetDefault("lists.held_file", "team_players_id.txt")
	v.SetDefault("lists.unwanted_file", "exclude_players_id.txt")

	v.SetDefault("database.max_open_conns", 4)
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")

	v.SetDefault("output.clipboard", true)
	v.SetDefault("output.telegram.enabled", false)
	v.SetDefault("output.telegram.api_base", "https://api.telegram.org")
	v.SetDefault("output.telegram.timeout", "10s")

	v.SetDefault("watch.cron", "0 9 * * *")
	v.SetDefault("watch.interval", "0s")
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	if c.Filter.GameweeksWindow <= 0 {
		return fmt.Errorf("filter.gameweeks_window must be greater than zero")
	}
	if c.Filter.PPGThreshold < 0 {
		return fmt.Errorf("filter.ppg_threshold cannot be negative")
	}
	if c.Filter.MinOwnership < 0 || c.Filter.MinOwnership > 100 {
		return fmt.Errorf("filter.min_ownership must be within 0..100")
	}
	if c.Filter.MinPrice <= 0 || c.Filter.MaxPrice <= 0 {
		return fmt.Errorf("filter.min_price and filter.max_price must be greater than zero")
	}
	if c.Filter.MinPrice > c.Filter.MaxPrice {
		return fmt.Errorf("filter.min_price cannot exceed filter.max_price")
	}
	if c.Form.WindowSize <= 0 {
		return fmt.Errorf("form.window_size must be greater than zero")
	}
	if c.Report.MinRecentForm < 0 {
		return fmt.Errorf("report.min_recent_form cannot be negative")
	}
	if c.Matcher.Threshold < 0 || c.Matcher.Threshold > 100 {
		return fmt.Errorf("matcher.threshold must be within 0..100")
	}
	if c.Matcher.Limit <= 0 {
		return fmt.Errorf("matcher.limit must be greater than zero")
	}
	switch c.Lists.Source {
	case ListSourceFile:
	case ListSourcePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required when lists.source is postgres")
		}
	default:
		return fmt.Errorf("lists.source must be %q or %q", ListSourceFile, ListSourcePostgres)
	}
	if c.Output.Telegram.Enabled {
		if c.Output.Telegram.BotToken == "" {
			return fmt.Errorf("output.telegram.bot_token is required")
		}
		if c.Output.Telegram.ChatID == "" {
			return fmt.Errorf("output.telegram.chat_id is required")
		}
	}
	if c.Watch.Cron == "" && c.Watch.Interval <= 0 {
		return fmt.Errorf("watch.cron or watch.interval must be set")
	}
	return nil
}
