package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ctvaccess/captvty-bridge/internal/ax"
	"github.com/ctvaccess/captvty-bridge/internal/dialog"
	"github.com/ctvaccess/captvty-bridge/internal/geometry"
	"github.com/ctvaccess/captvty-bridge/internal/platform"
	"github.com/ctvaccess/captvty-bridge/internal/schedule"
	"github.com/ctvaccess/captvty-bridge/internal/topology"
)

// Positions inside the host's recording dialog, relative to the window
// center. The dialog is not resizable, so these hold as long as the host
// window does not move mid-interaction.
const (
	recordOpenOffsetY     = -90
	recordConfirmOffsetX  = -80
	recordConfirmOffsetY  = 160
	recordStartRowOffsetY = -50
	recordEndRowOffsetY   = 30
)

// Field columns left to right: hour, minute, day, month, year.
var recordFieldOffsetsX = [schedule.FieldCount]int{-70, -45, -15, 10, 50}

// scheduleRecording asks the user for the recording window, then drives the
// host's own recording dialog.
func (s *Session) scheduleRecording(ctx context.Context, selected ax.Element) error {
	win, err := s.ranges.PickRange(ctx, "Paramétrer l'enregistrement", schedule.Window{})
	if errors.Is(err, dialog.ErrCancelled) || errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.recordWindow(ctx, selected, win)
}

// recordWindow opens the recording dialog off the channel row and types the
// window into it field by field, first the start row, then the end row.
func (s *Session) recordWindow(ctx context.Context, selected ax.Element, win schedule.Window) error {
	s.log.Debug("scheduling recording",
		zap.Time("start", win.Start), zap.Time("end", win.End))

	if err := s.syn.ClickElement(selected, recordButtonOffsetX, viewButtonOffsetY, platform.MouseLeft); err != nil {
		return s.fail("Une erreur s'est produite lors de la programmation de l'enregistrement", err)
	}

	window, err := s.reader.Foreground()
	if err != nil {
		return s.fail(
			"Une erreur fatale s'est produite: La fenêtre captvty n'a pas été trouvée",
			errors.Join(topology.ErrWindowUnavailable, err),
		)
	}
	loc, err := window.Location()
	if err != nil {
		return s.fail("Une erreur fatale s'est produite: La fenêtre captvty n'a pas été trouvée", err)
	}
	cx := loc.Left + loc.Width/2
	cy := loc.Top + loc.Height/2

	// Let the dialog's fade-in animation finish before clicking into it.
	if err := s.loop.Sleep(ctx, s.settle); err != nil {
		return err
	}

	if err := s.syn.ClickAt(cx, cy+recordOpenOffsetY, platform.MouseLeft); err != nil {
		return s.fail("Une erreur s'est produite lors de la programmation de l'enregistrement", err)
	}

	start := win.StartFields()
	end := win.EndFields()
	for i, dx := range recordFieldOffsetsX {
		if err := s.typeField(cx+dx, cy+recordStartRowOffsetY, start[i]); err != nil {
			return err
		}
		if err := s.typeField(cx+dx, cy+recordEndRowOffsetY, end[i]); err != nil {
			return err
		}
	}

	if err := s.syn.ClickAt(cx+recordConfirmOffsetX, cy+recordConfirmOffsetY, platform.MouseLeft); err != nil {
		return s.fail("Une erreur s'est produite lors de la programmation de l'enregistrement", err)
	}

	// Speech lags the click by about one animation frame.
	if err := s.loop.Sleep(ctx, s.settle); err != nil {
		return err
	}
	s.announceNow("Enregistrement programmé")
	return nil
}

func (s *Session) typeField(x, y int, digits string) error {
	if err := s.syn.ClickAt(x, y, platform.MouseLeft); err != nil {
		return s.fail("Une erreur s'est produite lors de la programmation de l'enregistrement", err)
	}
	if err := s.syn.TypeString(digits); err != nil {
		return s.fail("Une erreur s'est produite lors de la programmation de l'enregistrement", err)
	}
	return nil
}

// ScheduleRecording is the non-interactive path: it resolves the named
// channel in Direct mode and programs the given window without opening any
// picker.
func (s *Session) ScheduleRecording(ctx context.Context, channelName string, win schedule.Window) error {
	mode, err := s.resolver.AppMode()
	if err != nil {
		return s.fail("Une erreur s'est produite lors du chargement de la liste des chaînes", err)
	}
	if mode != topology.ModeDirect {
		return s.fail(
			"Une erreur fatale s'est produite: l'enregistrement se programme en mode direct.",
			&topology.UnsupportedModeError{Mode: mode},
		)
	}

	channels, err := s.resolver.ChannelList()
	if err != nil {
		return s.fail("Une erreur s'est produite lors du chargement de la liste des chaînes", err)
	}
	var selected ax.Element
	for _, ch := range channels {
		if ch.Name() == channelName {
			selected = ch
			break
		}
	}
	if selected == nil {
		return s.fail(
			fmt.Sprintf("Chaîne %s introuvable", channelName),
			fmt.Errorf("channel %q not in resolved list", channelName),
		)
	}

	scrollArea := parentN(selected, 3)
	slack := geometry.Offset{Right: -channelVisibilitySlack, Bottom: -channelVisibilitySlack}
	if err := s.scroller.IntoView(selected, scrollArea, slack, s.budget); err != nil {
		return s.fail("Une erreur s'est produite lors de la sélection de la chaîne", err)
	}
	return s.recordWindow(ctx, selected, win)
}
