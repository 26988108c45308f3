package cmd

import (
	"testing"
	"time"

	"github.com/ctvaccess/captvty-bridge/internal/topology"
)

func TestParseAppMode(t *testing.T) {
	tests := []struct {
		in      string
		want    topology.AppMode
		wantErr bool
	}{
		{"direct", topology.ModeDirect, false},
		{"DIRECT", topology.ModeDirect, false},
		{"rattrapage", topology.ModeRattrapage, false},
		{"telechargement", topology.ModeTelechargement, false},
		{"téléchargement", topology.ModeTelechargement, false},
		{"manuel", topology.ModeOther, true},
		{"", topology.ModeOther, true},
	}
	for _, tt := range tests {
		got, err := parseAppMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseAppMode(%q): err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseAppMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseWindow(t *testing.T) {
	win, err := parseWindow("24/12/2026 20:50", "24/12/2026 22:30")
	if err != nil {
		t.Fatal(err)
	}
	if win.Start.Day() != 24 || win.Start.Month() != time.December {
		t.Errorf("start: got %v", win.Start)
	}
	if win.End.Hour() != 22 || win.End.Minute() != 30 {
		t.Errorf("end: got %v", win.End)
	}
}

func TestParseWindow_Inverted(t *testing.T) {
	if _, err := parseWindow("24/12/2026 22:30", "24/12/2026 20:50"); err == nil {
		t.Fatal("inverted window should be rejected")
	}
}

func TestParseWindow_BadFormat(t *testing.T) {
	if _, err := parseWindow("2026-12-24 20:50", "2026-12-24 22:30"); err == nil {
		t.Fatal("ISO-style stamp should be rejected")
	}
}

func TestMCPParams(t *testing.T) {
	params := map[string]interface{}{
		"mode":  "direct",
		"depth": float64(4),
		"flat":  true,
	}
	if got := StringParam(params, "mode", ""); got != "direct" {
		t.Errorf("StringParam: got %q", got)
	}
	if got := StringParam(params, "missing", "fallback"); got != "fallback" {
		t.Errorf("StringParam default: got %q", got)
	}
	if got := IntParam(params, "depth", 0); got != 4 {
		t.Errorf("IntParam: got %d", got)
	}
	if got := IntParam(params, "missing", 7); got != 7 {
		t.Errorf("IntParam default: got %d", got)
	}
	if got := BoolParam(params, "flat", false); !got {
		t.Error("BoolParam: got false")
	}
	if got := BoolParam(params, "mode", false); got {
		t.Error("BoolParam wrong type should fall back")
	}
}
