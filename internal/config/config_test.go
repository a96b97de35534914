package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("defaults should load: %v", err)
	}
	if cfg.Filter.GameweeksWindow != 8 || cfg.Filter.PPGThreshold != 3.5 || cfg.Filter.MinOwnership != 7.5 {
		t.Fatalf("unexpected filter defaults %+v", cfg.Filter)
	}
	if cfg.Filter.MinPrice != 4.0 || cfg.Filter.MaxPrice != 15.0 {
		t.Fatalf("unexpected price defaults %+v", cfg.Filter)
	}
	if cfg.Form.WindowSize != 5 || cfg.Report.MinRecentForm != 4.5 {
		t.Fatalf("unexpected form/report defaults %+v %+v", cfg.Form, cfg.Report)
	}
	if cfg.Matcher.Threshold != 80 || cfg.Matcher.Limit != 10 {
		t.Fatalf("unexpected matcher defaults %+v", cfg.Matcher)
	}
	if cfg.Source.RequestTimeout != 10*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.Source.RequestTimeout)
	}
	if cfg.Lists.Source != ListSourceFile {
		t.Fatalf("unexpected list source %q", cfg.Lists.Source)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte("filter:\n  min_ownership: 5\n  max_price: 10.5\nform:\n  window_size: 3\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FPLTHREATS_MATCHER_THRESHOLD", "70")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Filter.MinOwnership != 5 || cfg.Filter.MaxPrice != 10.5 || cfg.Form.WindowSize != 3 {
		t.Fatalf("file values not applied: %+v %+v", cfg.Filter, cfg.Form)
	}
	if cfg.Matcher.Threshold != 70 {
		t.Fatalf("env override not applied: %d", cfg.Matcher.Threshold)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Filter:  FilterConfig{GameweeksWindow: 8, PPGThreshold: 3.5, MinOwnership: 7.5, MinPrice: 4, MaxPrice: 15},
			Form:    FormConfig{WindowSize: 5},
			Matcher: MatcherConfig{Threshold: 80, Limit: 10},
			Lists:   ListsConfig{Source: ListSourceFile},
			Watch:   WatchConfig{Cron: "0 9 * * *"},
		}
	}

	tests := []struct {
		name string
		mut  func(c *Config)
		ok   bool
	}{
		{name: "Valid", mut: func(c *Config) {}, ok: true},
		{name: "ZeroWindow", mut: func(c *Config) { c.Filter.GameweeksWindow = 0 }},
		{name: "PriceInverted", mut: func(c *Config) { c.Filter.MinPrice = 16 }},
		{name: "OwnershipOver100", mut: func(c *Config) { c.Filter.MinOwnership = 101 }},
		{name: "ZeroFormWindow", mut: func(c *Config) { c.Form.WindowSize = 0 }},
		{name: "NegativeFormFloor", mut: func(c *Config) { c.Report.MinRecentForm = -1 }},
		{name: "ZeroFormFloor", mut: func(c *Config) { c.Report.MinRecentForm = 0 }, ok: true},
		{name: "MatcherThreshold", mut: func(c *Config) { c.Matcher.Threshold = 120 }},
		{name: "MatcherLimit", mut: func(c *Config) { c.Matcher.Limit = 0 }},
		{name: "PostgresWithoutDSN", mut: func(c *Config) { c.Lists.Source = ListSourcePostgres }},
		{name: "UnknownListSource", mut: func(c *Config) { c.Lists.Source = "s3" }},
		{name: "TelegramWithoutToken", mut: func(c *Config) { c.Output.Telegram.Enabled = true; c.Output.Telegram.ChatID = "1" }},
		{name: "NoSchedule", mut: func(c *Config) { c.Watch.Cron = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mut(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
