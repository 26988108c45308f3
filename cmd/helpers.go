package cmd

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ctvaccess/captvty-bridge/internal/cache"
	"github.com/ctvaccess/captvty-bridge/internal/dialog"
	"github.com/ctvaccess/captvty-bridge/internal/input"
	"github.com/ctvaccess/captvty-bridge/internal/observability"
	"github.com/ctvaccess/captvty-bridge/internal/orchestrator"
	"github.com/ctvaccess/captvty-bridge/internal/platform"
	"github.com/ctvaccess/captvty-bridge/internal/schedule"
	"github.com/ctvaccess/captvty-bridge/internal/scroll"
	"github.com/ctvaccess/captvty-bridge/internal/topology"
)

// bridge bundles everything a command needs to drive the target application.
type bridge struct {
	provider *platform.Provider
	resolver *topology.Resolver
	session  *orchestrator.Session
	loop     *orchestrator.Loop
	hints    *cache.Store
	picker   *dialog.ListPicker
	log      *zap.Logger
}

// newBridge builds the full stack from the loaded config. The caller must
// Close it to persist the mode-button hint and stop the loop.
func newBridge() (*bridge, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	if provider.Reader == nil {
		return nil, fmt.Errorf("accessibility reader not available on this platform")
	}

	log := observability.GetLogger()

	hintPath := cfg.Cache.Path
	if hintPath == "" {
		hintPath, err = cache.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve hint cache path: %w", err)
		}
	}
	hints, err := cache.Open(hintPath)
	if err != nil {
		return nil, fmt.Errorf("open hint cache: %w", err)
	}

	resolver := topology.New(provider.Reader, cfg.Layout, log)
	if hint, ok := hints.GetInt(cache.HintKey); ok {
		resolver.SetHint(hint)
	}

	syn := input.New(provider.Inputter, log)
	syn.Delay = cfg.Input.PressDelay

	scroller := scroll.New(provider.Reader, syn, log)
	scroller.Delta = cfg.Scroll.Delta

	loop := orchestrator.NewLoop()
	picker := dialog.NewListPicker()

	session := orchestrator.New(orchestrator.Options{
		Reader:       provider.Reader,
		Resolver:     resolver,
		Scroller:     scroller,
		Input:        syn,
		Announcer:    provider.Announcer,
		Picker:       picker,
		RangePicker:  dialog.NewDateRangePicker(),
		Loop:         loop,
		Layout:       cfg.Layout,
		SettleDelay:  cfg.Schedule.SettleDelay,
		PollDelay:    cfg.Schedule.PollDelay,
		ScrollBudget: cfg.Scroll.MaxAttempts,
		Log:          log,
	})

	return &bridge{
		provider: provider,
		resolver: resolver,
		session:  session,
		loop:     loop,
		hints:    hints,
		picker:   picker,
		log:      log,
	}, nil
}

// Close stops the loop and persists the mode-button hint for the next run.
func (b *bridge) Close() {
	b.picker.Close()
	b.loop.Close()
	b.hints.SetInt(cache.HintKey, b.resolver.Hint())
	if err := b.hints.Save(); err != nil {
		b.log.Warn("save hint cache", zap.Error(err))
	}
}

// parseAppMode maps a CLI mode name to an AppMode.
func parseAppMode(name string) (topology.AppMode, error) {
	switch strings.ToLower(name) {
	case "direct":
		return topology.ModeDirect, nil
	case "rattrapage":
		return topology.ModeRattrapage, nil
	case "telechargement", "téléchargement":
		return topology.ModeTelechargement, nil
	default:
		return topology.ModeOther, fmt.Errorf("unknown mode: %s (use direct, rattrapage or telechargement)", name)
	}
}

// parseWindow builds a recording window from two "dd/mm/yyyy hh:mm" stamps.
func parseWindow(from, to string) (schedule.Window, error) {
	start, err := time.ParseInLocation(dialog.TimeLayout, from, time.Local)
	if err != nil {
		return schedule.Window{}, fmt.Errorf("invalid --from (want %s): %w", dialog.TimeLayout, err)
	}
	end, err := time.ParseInLocation(dialog.TimeLayout, to, time.Local)
	if err != nil {
		return schedule.Window{}, fmt.Errorf("invalid --to (want %s): %w", dialog.TimeLayout, err)
	}
	return schedule.NewWindow(start, end)
}

// StringParam extracts a string parameter from an MCP arguments map.
func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// IntParam extracts an int parameter from an MCP arguments map. JSON
// numbers arrive as float64.
func IntParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// BoolParam extracts a bool parameter from an MCP arguments map.
func BoolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
