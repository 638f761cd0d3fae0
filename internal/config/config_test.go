package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
redis:
  addr: localhost:6379
game:
  mode: round
  count: 15
content:
  source: images
  images:
    aiDir: /srv/ai
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Game.Mode != "round" || cfg.Game.Count != 15 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Content.Images.AIDir != "/srv/ai" || cfg.Content.Images.HumanDir != "images/human" {
		t.Fatalf("nested defaults lost: %+v", cfg.Content.Images)
	}
	if cfg.Game.AdvanceDelay != "800ms" || cfg.Game.LeaderboardSize != 10 {
		t.Fatalf("defaults lost: %+v", cfg.Game)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOA_REDIS_ADDR", "redis:6379")
	t.Setenv("HOA_GAME_COUNT", "20")
	t.Setenv("HOA_CONTENT_IMAGES_HUMAN_DIR", "/data/human")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Game.Count != 20 || cfg.Content.Images.HumanDir != "/data/human" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.Content.Source != SourceBuiltin {
		t.Fatalf("expected builtin default, got %q", cfg.Content.Source)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("game: [unterminated"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestTTLDuration(t *testing.T) {
	if got := TTLDuration("", time.Minute); got != time.Minute {
		t.Fatalf("empty should fall back, got %s", got)
	}
	if got := TTLDuration("bogus", time.Minute); got != time.Minute {
		t.Fatalf("invalid should fall back, got %s", got)
	}
	if got := TTLDuration("250ms", time.Minute); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", got)
	}
}
