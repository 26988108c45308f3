package output

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func capture(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	callErr := fn()
	w.Close()
	os.Stdout = old

	if callErr != nil {
		t.Fatal(callErr)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	result := ChannelsResult{
		Mode: "direct",
		TS:   1707500000,
		Channels: []Channel{
			{Name: "TF1", Bounds: [4]int{100, 100, 200, 40}},
			{Name: "France 2", Bounds: [4]int{100, 200, 200, 40}},
		},
	}

	out := capture(t, func() error { return PrintYAML(result) })

	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}

	var decoded ChannelsResult
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Mode != "direct" {
		t.Errorf("mode: got %q, want %q", decoded.Mode, "direct")
	}
	if len(decoded.Channels) != 2 {
		t.Errorf("channels: got %d, want 2", len(decoded.Channels))
	}
}

func TestPrint_JSONFormat(t *testing.T) {
	OutputFormat = FormatJSON
	PrettyOutput = false
	defer func() { OutputFormat = FormatYAML }()

	out := capture(t, func() error {
		return Print(RecordResult{Channel: "TF1", Start: "24/12/2026 20:50", End: "24/12/2026 22:30"})
	})

	if strings.Count(strings.TrimRight(out, "\n"), "\n") != 0 {
		t.Errorf("compact JSON should be single-line, got:\n%s", out)
	}
	if !strings.Contains(out, `"channel":"TF1"`) {
		t.Errorf("missing channel field: %s", out)
	}
}

func TestPrint_PrettyJSON(t *testing.T) {
	OutputFormat = FormatJSON
	PrettyOutput = true
	defer func() {
		OutputFormat = FormatYAML
		PrettyOutput = false
	}()

	out := capture(t, func() error { return Print(ModeResult{Mode: "rattrapage"}) })

	if !strings.Contains(out, "  \"mode\"") {
		t.Errorf("pretty JSON should be indented, got:\n%s", out)
	}
}

func TestTreeResult_OmitEmpty(t *testing.T) {
	data, err := yaml.Marshal(TreeResult{TS: 123})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["window"]; ok {
		t.Error("empty window should be omitted")
	}
	if _, ok := m["ts"]; !ok {
		t.Error("ts should always be present")
	}
	if _, ok := m["nodes"]; !ok {
		t.Error("nodes should always be present")
	}
}
