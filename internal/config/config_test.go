package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	cfg, err := New(viper.New())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.Layout.ChannelColumnWidth != 244 {
		t.Fatalf("ChannelColumnWidth = %d, want 244", cfg.Layout.ChannelColumnWidth)
	}
	if cfg.Layout.ButtonIndexHint != 3 {
		t.Fatalf("ButtonIndexHint = %d, want 3", cfg.Layout.ButtonIndexHint)
	}
	if cfg.Scroll.Delta != 120 {
		t.Fatalf("Scroll.Delta = %d, want 120", cfg.Scroll.Delta)
	}
	if cfg.Schedule.PollDelay != 200*time.Millisecond {
		t.Fatalf("PollDelay = %v, want 200ms", cfg.Schedule.PollDelay)
	}
	if cfg.Logger.Level != "info" {
		t.Fatalf("Logger.Level = %q, want info", cfg.Logger.Level)
	}
}

func TestLoadFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "layout:\n  channel_column_width: 300\nscroll:\n  delta: 60\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Layout.ChannelColumnWidth != 300 {
		t.Fatalf("ChannelColumnWidth = %d, want 300", cfg.Layout.ChannelColumnWidth)
	}
	if cfg.Scroll.Delta != 60 {
		t.Fatalf("Scroll.Delta = %d, want 60", cfg.Scroll.Delta)
	}
	if cfg.Layout.ModeButtonCount != 3 {
		t.Fatalf("ModeButtonCount = %d, want default 3", cfg.Layout.ModeButtonCount)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	v := viper.New()
	v.Set("scroll.delta", -1)
	if _, err := New(v); err == nil {
		t.Fatal("negative scroll delta should fail validation")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing explicit config file should error")
	}
}
