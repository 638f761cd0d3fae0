package cli

import (
	"context"
	"errors"
	"testing"

	"human-or-ai/internal/app"
	"human-or-ai/internal/config"
	"human-or-ai/internal/content"
	"human-or-ai/internal/domain"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := config.Default()
	gc, err := defaultGameConfig(cfg)
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	if gc.BankID != content.DefaultBankID || gc.Settings.Mode != app.ModeBatch || gc.Settings.Count != 10 || gc.Settings.Difficulty != domain.Mixed {
		t.Fatalf("unexpected defaults %+v", gc)
	}

	cfg.Content.Source = config.SourceImages
	cfg.Game.Mode = "round"
	gc, err = defaultGameConfig(cfg)
	if err != nil {
		t.Fatalf("images config: %v", err)
	}
	if gc.BankID != "images" || gc.Settings.Mode != app.ModePerRound {
		t.Fatalf("unexpected image defaults %+v", gc)
	}

	cfg.Game.Count = 7
	if _, err := defaultGameConfig(cfg); !errors.Is(err, domain.ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount, got %v", err)
	}
}

func TestBuildRuntimeBuiltin(t *testing.T) {
	cfg := config.Default()
	rt, err := buildRuntime(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build runtime: %v", err)
	}
	defer rt.Close()

	game := rt.service.NewGame("Ada")
	view, err := game.Start(context.Background(), rt.defaults)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if view.Total != 10 {
		t.Fatalf("expected 10 rounds from the built-in bank, got %d", view.Total)
	}
}

func TestBuildRuntimeRejectsUnknownSource(t *testing.T) {
	cfg := config.Default()
	cfg.Content.Source = "ftp"
	if _, err := buildRuntime(context.Background(), cfg); err == nil {
		t.Fatalf("expected error for unknown source")
	}
}
