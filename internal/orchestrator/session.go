// Package orchestrator sequences the multi-step interactions that drive the
// target application: channel pickers, program lists, playback option menus
// and the recording dialog. Each step re-resolves what it needs from the
// live accessibility tree; element handles are never trusted across a host
// repaint.
package orchestrator

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ctvaccess/captvty-bridge/internal/ax"
	"github.com/ctvaccess/captvty-bridge/internal/dialog"
	"github.com/ctvaccess/captvty-bridge/internal/input"
	"github.com/ctvaccess/captvty-bridge/internal/platform"
	"github.com/ctvaccess/captvty-bridge/internal/scroll"
	"github.com/ctvaccess/captvty-bridge/internal/topology"
)

// Pixel offsets tuned against the target application's fixed layout. They
// assume the layout the application ships at 100% DPI; see the channel list
// column width in topology.Layout for the same caveat.
const (
	viewButtonOffsetY     = -20
	externalPlayerOffsetX = 162
	recordButtonOffsetX   = 185

	channelScrollAttempts  = 30
	programScrollAttempts  = 10000
	channelVisibilitySlack = 250
)

// Options bundles the session dependencies.
type Options struct {
	Reader      platform.Reader
	Resolver    *topology.Resolver
	Scroller    *scroll.Controller
	Input       *input.Synthesizer
	Announcer   platform.Announcer
	Picker      dialog.Picker
	RangePicker dialog.RangePicker
	Loop        *Loop
	Layout      topology.Layout
	SettleDelay time.Duration
	PollDelay   time.Duration
	// ScrollBudget caps the scroll attempts when bringing a channel row
	// into view. Zero uses the tuned default.
	ScrollBudget int
	Log          *zap.Logger
}

// Session drives one focus session on the target application. At most one
// replay channel is engaged at a time; the session tracks which.
type Session struct {
	reader   platform.Reader
	resolver *topology.Resolver
	scroller *scroll.Controller
	syn      *input.Synthesizer
	voice    platform.Announcer
	picker   dialog.Picker
	ranges   dialog.RangePicker
	loop     *Loop
	layout   topology.Layout
	settle   time.Duration
	poll     time.Duration
	budget   int
	log      *zap.Logger

	mu      sync.Mutex
	engaged ax.Element
}

// New builds a Session. Zero delays fall back to the empirically tuned
// values.
func New(opts Options) *Session {
	if opts.SettleDelay == 0 {
		opts.SettleDelay = 100 * time.Millisecond
	}
	if opts.PollDelay == 0 {
		opts.PollDelay = 200 * time.Millisecond
	}
	if opts.ScrollBudget == 0 {
		opts.ScrollBudget = channelScrollAttempts
	}
	if opts.Log == nil {
		opts.Log = zap.L()
	}
	return &Session{
		reader:   opts.Reader,
		resolver: opts.Resolver,
		scroller: opts.Scroller,
		syn:      opts.Input,
		voice:    opts.Announcer,
		picker:   opts.Picker,
		ranges:   opts.RangePicker,
		loop:     opts.Loop,
		layout:   opts.Layout,
		settle:   opts.SettleDelay,
		poll:     opts.PollDelay,
		budget:   opts.ScrollBudget,
		log:      opts.Log.Named("orchestrator"),
	}
}

// Engaged returns the currently engaged replay channel, or nil.
func (s *Session) Engaged() ax.Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engaged
}

func (s *Session) announce(text string) {
	if s.voice != nil {
		s.voice.Message(text)
	}
}

func (s *Session) announceNow(text string) {
	if s.voice != nil {
		s.voice.Interrupt()
		s.voice.Message(text)
	}
}

// fail speaks a user-facing French message, logs the diagnostic, and returns
// err so the current action aborts.
func (s *Session) fail(spoken string, err error, fields ...zap.Field) error {
	s.announce(spoken)
	s.log.Error(spoken, append(fields, zap.Error(err))...)
	return err
}

// AppMode reports the application's current operating mode.
func (s *Session) AppMode() (topology.AppMode, error) {
	return s.resolver.AppMode()
}

// SelectMode activates the named mode button through its accessibility
// action, the same switch the application binds to its own shortcuts.
func (s *Session) SelectMode(mode topology.AppMode) error {
	name := mode.ButtonName()
	if name == "" {
		s.announce(fmt.Sprintf("Nous n'avons pas pu sélectionner le menu %s", mode))
		return &topology.UnsupportedModeError{Mode: mode}
	}
	buttons, err := s.resolver.ModeButtons()
	if err != nil {
		return s.fail(
			fmt.Sprintf("Nous n'avons pas pu sélectionner le menu %s", mode),
			err,
		)
	}
	button, ok := buttons[name]
	if !ok {
		return s.fail(
			fmt.Sprintf("Nous n'avons pas pu sélectionner le menu %s", mode),
			fmt.Errorf("mode button %q not present", name),
		)
	}
	if err := button.DoAction(); err != nil {
		return s.fail(
			fmt.Sprintf("Nous n'avons pas pu sélectionner le menu %s", mode),
			fmt.Errorf("activate %q: %w", name, err),
		)
	}
	s.announce(fmt.Sprintf("Menu %s sélectionné", name))
	return nil
}

// parentN climbs n parents, returning nil if the chain is shorter.
func parentN(el ax.Element, n int) ax.Element {
	for i := 0; i < n && el != nil; i++ {
		el = el.Parent()
	}
	return el
}
