package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ctvaccess/captvty-bridge/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ModeResult is the output of the `mode` command.
type ModeResult struct {
	Mode    string   `yaml:"mode"              json:"mode"`
	Buttons []string `yaml:"buttons,omitempty" json:"buttons,omitempty"`
}

// Channel is one entry of the channel column.
type Channel struct {
	Name   string `yaml:"name" json:"name"`
	Bounds [4]int `yaml:"b"    json:"b"`
}

// ChannelsResult is the output of the `channels` command.
type ChannelsResult struct {
	Mode     string    `yaml:"mode"     json:"mode"`
	TS       int64     `yaml:"ts"       json:"ts"`
	Channels []Channel `yaml:"channels" json:"channels"`
}

// RecordResult is the output of the `record` command.
type RecordResult struct {
	Channel string `yaml:"channel" json:"channel"`
	Start   string `yaml:"start"   json:"start"`
	End     string `yaml:"end"     json:"end"`
}

// TreeResult is the top-level output of the `tree` command.
type TreeResult struct {
	Window string        `yaml:"window,omitempty" json:"window,omitempty"`
	TS     int64         `yaml:"ts"               json:"ts"`
	Nodes  int           `yaml:"nodes"            json:"nodes"`
	Tree   model.Element `yaml:"tree"             json:"tree"`
}

// TreeFlatResult is the top-level output when --flat is used.
type TreeFlatResult struct {
	Window   string              `yaml:"window,omitempty" json:"window,omitempty"`
	TS       int64               `yaml:"ts"               json:"ts"`
	Nodes    int                 `yaml:"nodes"            json:"nodes"`
	Elements []model.FlatElement `yaml:"elements"         json:"elements"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
