package orchestrator

import (
	"context"
	"errors"

	"github.com/ctvaccess/captvty-bridge/internal/ax"
	"github.com/ctvaccess/captvty-bridge/internal/dialog"
	"github.com/ctvaccess/captvty-bridge/internal/geometry"
	"github.com/ctvaccess/captvty-bridge/internal/platform"
	"github.com/ctvaccess/captvty-bridge/internal/topology"
)

// The three actions offered on a live channel.
var directOptions = []string{
	"Visionner en direct avec le lecteur interne",
	"Visionner en direct avec un lecteur externe",
	"Programmer l'enregistrement",
}

// ListChannels is the main entry point: it opens the channel picker and
// drives the interaction that follows the user's choice. The application
// mode is resolved once when the picker opens and frozen for the whole
// interaction; a mode switch done behind the dialog is ignored.
func (s *Session) ListChannels(ctx context.Context) error {
	s.announce("Chargement de la liste des chaines")

	channels, err := s.resolver.ChannelList()
	if err != nil {
		return s.fail("Une erreur s'est produite lors du chargement de la liste des chaînes", err)
	}
	if len(channels) == 0 {
		return s.fail(
			"Une erreur fatale s'est produite lors du chargement de la liste des chaînes",
			topology.ErrChannelListUnavailable,
		)
	}
	mode, err := s.resolver.AppMode()
	if err != nil {
		return s.fail("Une erreur s'est produite lors du chargement de la liste des chaînes", err)
	}

	labels := make([]string, len(channels))
	for i, ch := range channels {
		labels[i] = ch.Name()
	}

	s.announce("Liste des chaines sélectionnée")
	idx, err := s.picker.Pick(ctx, "Liste des chaines", labels)
	if errors.Is(err, dialog.ErrCancelled) || errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}
	selected := channels[idx]

	switch mode {
	case topology.ModeDirect:
		return s.directChannel(ctx, selected)
	case topology.ModeRattrapage:
		return s.rattrapageChannel(ctx, selected)
	default:
		return s.fail(
			"Une erreur fatale s'est produite: Vous pouvez seulement sélectionner une chaine en mode direct ou rattrapage.",
			&topology.UnsupportedModeError{Mode: mode},
		)
	}
}

// directChannel offers the live-viewing actions for a channel in Direct mode.
func (s *Session) directChannel(ctx context.Context, selected ax.Element) error {
	scrollArea := parentN(selected, 3)
	slack := geometry.Offset{Right: -channelVisibilitySlack, Bottom: -channelVisibilitySlack}
	if err := s.scroller.IntoView(selected, scrollArea, slack, s.budget); err != nil {
		return s.fail("Une erreur s'est produite lors de la sélection de la chaîne", err)
	}

	idx, err := s.picker.Pick(ctx, "Choisissez une option", directOptions)
	if errors.Is(err, dialog.ErrCancelled) || errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}

	switch idx {
	case 0:
		return s.syn.ClickElement(selected, 0, viewButtonOffsetY, platform.MouseLeft)
	case 1:
		return s.syn.ClickElement(selected, externalPlayerOffsetX, viewButtonOffsetY, platform.MouseLeft)
	case 2:
		return s.scheduleRecording(ctx, selected)
	default:
		return s.fail(
			"Une erreur fatale s'est produite: option invalide sélectionnée",
			errInvalidOption(idx),
		)
	}
}
