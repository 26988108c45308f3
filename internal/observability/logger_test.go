package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ctvaccess/captvty-bridge/internal/config"
)

// syncBuffer adapts bytes.Buffer to zapcore.WriteSyncer.
type syncBuffer struct{ bytes.Buffer }

func (*syncBuffer) Sync() error { return nil }

func TestInitializeJSON(t *testing.T) {
	ResetForTest()
	defer ResetForTest()

	var buf syncBuffer
	Initialize(config.LoggerConfig{Level: "info", Format: "json"}, &buf)
	GetLogger().Warn("dialog stalled", zap.String("channel", "TF1"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["level"] != "WARN" {
		t.Fatalf("level = %v, want WARN", entry["level"])
	}
	if entry["msg"] != "dialog stalled" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if entry["channel"] != "TF1" {
		t.Fatalf("channel = %v", entry["channel"])
	}
}

func TestInitializeOnlyOnce(t *testing.T) {
	ResetForTest()
	defer ResetForTest()

	var first, second syncBuffer
	Initialize(config.LoggerConfig{Level: "info", Format: "json"}, &first)
	Initialize(config.LoggerConfig{Level: "debug", Format: "json"}, &second)

	GetLogger().Info("once")
	if second.Len() != 0 {
		t.Fatal("second Initialize should have been ignored")
	}
	if !strings.Contains(first.String(), "once") {
		t.Fatalf("first writer missing entry: %s", first.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	ResetForTest()
	defer ResetForTest()

	var buf syncBuffer
	Initialize(config.LoggerConfig{Level: "warn", Format: "json"}, &buf)
	GetLogger().Info("suppressed")
	if buf.Len() != 0 {
		t.Fatalf("info entry should be filtered at warn level: %s", buf.String())
	}
}

func TestFileSink(t *testing.T) {
	ResetForTest()
	defer ResetForTest()

	path := filepath.Join(t.TempDir(), "bridge.log")
	var buf syncBuffer
	Initialize(config.LoggerConfig{Level: "debug", Format: "json", LogFile: path, MaxSize: 1}, &buf)
	GetLogger().Error("element vanished")
	Sync()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "element vanished") {
		t.Fatalf("log file missing entry: %s", content)
	}
}

func TestGetLoggerFallback(t *testing.T) {
	ResetForTest()
	defer ResetForTest()
	if GetLogger() == nil {
		t.Fatal("fallback logger should not be nil")
	}
}

func TestLevelFilteringUsesEncoder(t *testing.T) {
	ResetForTest()
	defer ResetForTest()

	var buf syncBuffer
	Initialize(config.LoggerConfig{Level: "info", Format: "console"}, zapcore.AddSync(&buf))
	GetLogger().Info("console line")
	if !strings.Contains(buf.String(), "console line") {
		t.Fatalf("console output missing entry: %s", buf.String())
	}
}
