package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Telegram TelegramCfg `yaml:"telegram"`
	Fetcher  FetcherCfg  `yaml:"fetcher"`
	DB       DBCfg       `yaml:"db"`
	Health   HealthCfg   `yaml:"health"`
	Janitor  JanitorCfg  `yaml:"janitor"`
	Log      LogCfg      `yaml:"log"`
}

type TelegramCfg struct {
	Token             string  `yaml:"token" env:"BOT_TOKEN"`
	DumpChatID        string  `yaml:"dump_chat_id" env:"DUMP_CHAT_ID"`
	RequiredChannelID string  `yaml:"required_channel_id" env:"REQUIRED_CHANNEL_ID"`
	ChannelURL        string  `yaml:"channel_url"`
	OwnerURL          string  `yaml:"owner_url"`
	WelcomePhotoURL   string  `yaml:"welcome_photo_url"`
	StickerID         string  `yaml:"sticker_id"`
	AdminIDs          []int64 `yaml:"admin_ids" env:"ADMIN_IDS" envSeparator:","`
}

type FetcherCfg struct {
	ResolverURL    string        `yaml:"resolver_url" env:"RESOLVER_URL"`
	ResolveTimeout time.Duration `yaml:"resolve_timeout"`
	StreamTimeout  time.Duration `yaml:"stream_timeout"`
	ChunkSize      int           `yaml:"chunk_size"`
	CadencePercent float64       `yaml:"cadence_percent"`
	MaxBufferBytes int64         `yaml:"max_buffer_bytes"`
	VideosDir      string        `yaml:"videos_dir"`
}

type DBCfg struct {
	DSN string `yaml:"dsn" env:"DATABASE_URL"`
}

type HealthCfg struct {
	Addr string `yaml:"addr"`
}

type JanitorCfg struct {
	Interval time.Duration `yaml:"interval"`
	MaxAge   time.Duration `yaml:"max_age"`
}

type LogCfg struct {
	Path string `yaml:"path"`
}

func Load(path string) (*Config, error) {
	// .env is optional, real env vars still win
	_ = godotenv.Load()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Fetcher: FetcherCfg{
			ResolveTimeout: 15 * time.Second,
			StreamTimeout:  30 * time.Second,
			ChunkSize:      4096,
			CadencePercent: 7,
			MaxBufferBytes: 512 * 1024 * 1024,
			VideosDir:      "Videos",
		},
		Health: HealthCfg{
			Addr: ":8000",
		},
		Janitor: JanitorCfg{
			Interval: time.Hour,
			MaxAge:   2 * time.Hour,
		},
		Log: LogCfg{
			Path: "bot.log",
		},
	}
}

func (c *Config) validate() error {
	if c.Telegram.Token == "" {
		return errors.New("telegram token is required")
	}
	if c.Telegram.DumpChatID == "" {
		return errors.New("dump chat id is required")
	}
	if c.Fetcher.ResolverURL == "" {
		return errors.New("resolver url is required")
	}
	if c.DB.DSN == "" {
		return errors.New("database dsn is required")
	}
	if c.Fetcher.ChunkSize <= 0 {
		c.Fetcher.ChunkSize = 4096
	}
	if c.Fetcher.CadencePercent <= 0 {
		c.Fetcher.CadencePercent = 7
	}
	return nil
}
