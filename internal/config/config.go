package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides, e.g. HOA_REDIS_ADDR.
const EnvPrefix = "HOA_"

// Content sources.
const (
	SourceBuiltin  = "builtin"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
	SourceImages   = "images"
)

type Config struct {
	Server struct {
		Port string `yaml:"port" env:"PORT"`
	} `yaml:"server" envPrefix:"SERVER_"`
	Redis struct {
		Addr     string `yaml:"addr" env:"ADDR"`
		Password string `yaml:"password" env:"PASSWORD"`
		DB       int    `yaml:"db" env:"DB"`
		TTL      string `yaml:"ttl" env:"TTL"`
	} `yaml:"redis" envPrefix:"REDIS_"`
	Postgres struct {
		URL string `yaml:"url" env:"URL"`
	} `yaml:"postgres" envPrefix:"POSTGRES_"`
	SQLite struct {
		Path string `yaml:"path" env:"PATH"`
	} `yaml:"sqlite" envPrefix:"SQLITE_"`
	Content struct {
		Source string `yaml:"source" env:"SOURCE"`
		Bank   string `yaml:"bank" env:"BANK"`
		TTL    string `yaml:"ttl" env:"TTL"`
		Images struct {
			Bank     string `yaml:"bank" env:"BANK"`
			AIDir    string `yaml:"aiDir" env:"AI_DIR"`
			HumanDir string `yaml:"humanDir" env:"HUMAN_DIR"`
		} `yaml:"images" envPrefix:"IMAGES_"`
	} `yaml:"content" envPrefix:"CONTENT_"`
	Game struct {
		Mode            string `yaml:"mode" env:"MODE"`
		Difficulty      string `yaml:"difficulty" env:"DIFFICULTY"`
		Count           int    `yaml:"count" env:"COUNT"`
		AdvanceDelay    string `yaml:"advanceDelay" env:"ADVANCE_DELAY"`
		LeaderboardSize int    `yaml:"leaderboardSize" env:"LEADERBOARD_SIZE"`
	} `yaml:"game" envPrefix:"GAME_"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Server.Port = "8080"
	cfg.Redis.TTL = "10m"
	cfg.Content.Source = SourceBuiltin
	cfg.Content.Bank = "statements"
	cfg.Content.TTL = "10m"
	cfg.Content.Images.Bank = "images"
	cfg.Content.Images.AIDir = "images/ai"
	cfg.Content.Images.HumanDir = "images/human"
	cfg.Game.Mode = "batch"
	cfg.Game.Difficulty = "Mixed"
	cfg.Game.Count = 10
	cfg.Game.AdvanceDelay = "800ms"
	cfg.Game.LeaderboardSize = 10
	return cfg
}

// Load reads YAML config from path on top of Default, then applies HOA_*
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
