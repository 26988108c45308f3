package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ctvaccess/captvty-bridge/internal/ax"
	"github.com/ctvaccess/captvty-bridge/internal/dialog"
	"github.com/ctvaccess/captvty-bridge/internal/geometry"
	"github.com/ctvaccess/captvty-bridge/internal/platform"
	"github.com/ctvaccess/captvty-bridge/internal/program"
	"github.com/ctvaccess/captvty-bridge/internal/topology"
)

// The actions offered on a replay program, in the vertical order the host's
// context menu draws them.
var programOptions = []string{
	"Télécharger",
	"Visionner avec le lecteur intégré",
	"Visionner sur le site web",
	"Copier l'adresse de l'émission",
}

// Row offsets of the context-menu entries below the right-click point.
var programOptionRowOffsetY = [...]int{20, 60, 100, 120}

const programOptionRowOffsetX = 10

func errInvalidOption(idx int) error {
	return fmt.Errorf("option index %d has no defined behavior", idx)
}

// rattrapageChannel engages a replay channel and opens its program list.
// At most one channel is engaged at a time: the previous one gets a
// disengage click first. Re-selecting the engaged channel issues no clicks
// at all and goes straight to the program list.
func (s *Session) rattrapageChannel(ctx context.Context, selected ax.Element) error {
	scrollArea := parentN(selected, 3)

	s.mu.Lock()
	prev := s.engaged
	alreadyEngaged := prev == selected
	if !alreadyEngaged {
		s.engaged = selected
	}
	s.mu.Unlock()

	if !alreadyEngaged {
		if prev != nil {
			if err := s.scroller.IntoViewAndClick(prev, scrollArea, geometry.Offset{}, s.budget, 0, viewButtonOffsetY); err != nil {
				s.mu.Lock()
				s.engaged = nil
				s.mu.Unlock()
				return s.fail("Une erreur s'est produite lors de la sélection de la chaîne", err)
			}
		}
		if err := s.scroller.IntoViewAndClick(selected, scrollArea, geometry.Offset{}, s.budget, 0, viewButtonOffsetY); err != nil {
			s.mu.Lock()
			s.engaged = nil
			s.mu.Unlock()
			return s.fail("Une erreur s'est produite lors de la sélection de la chaîne", err)
		}

		window, err := s.reader.Foreground()
		if err != nil {
			return s.fail(
				"Une erreur fatale s'est produite: La fenêtre captvty n'a pas été trouvée",
				errors.Join(topology.ErrWindowUnavailable, err),
			)
		}
		// Click the window background so focus moves off the channel button
		// and onto the freshly expanded program list.
		if err := s.syn.ClickElement(window, 0, 0, platform.MouseLeft); err != nil {
			return s.fail("Une erreur s'est produite lors de la sélection de la chaîne", err)
		}
	}

	s.announceNow("Chargement des programmes")
	if err := s.loop.Sleep(ctx, s.settle); err != nil {
		return err
	}

	list, err := s.reader.Focused()
	if err != nil {
		return s.fail(
			"Une erreur s'est produite lors du chargement de la liste des programmes",
			err,
		)
	}
	return s.programList(ctx, list)
}

// programFeed is the shared model between the background poller and the
// dialog: programs discovered so far, in picker order.
type programFeed struct {
	mu       sync.Mutex
	closed   bool
	consumed int
	elems    []ax.Element
}

func newProgramFeed(headerCount int) *programFeed {
	return &programFeed{consumed: headerCount}
}

func (f *programFeed) close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

func (f *programFeed) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *programFeed) element(i int) ax.Element {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i < 0 || i >= len(f.elems) {
		return nil
	}
	return f.elems[i]
}

// take consumes the host list children beyond what was already seen,
// returning the picker labels for the ones that parse as programs. Returns
// nothing once the feed is closed.
func (f *programFeed) take(list ax.Element) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	count := list.ChildCount()
	if count <= f.consumed {
		return nil
	}
	children := list.Children()
	if count > len(children) {
		count = len(children)
	}
	var labels []string
	for ; f.consumed < count; f.consumed++ {
		child := children[f.consumed]
		p, err := program.Parse(child.Name())
		if err != nil {
			// Header rows and partial repaints land here; skip, never abort.
			continue
		}
		f.elems = append(f.elems, child)
		labels = append(labels, p.String())
	}
	return labels
}

// programList opens the program picker and keeps it growing while the host
// populates its list in the background. The host sends no change
// notification, so growth is polled.
func (s *Session) programList(ctx context.Context, list ax.Element) error {
	dialogCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	feed := newProgramFeed(s.layout.ProgramListHeaderCount)
	go s.pollPrograms(dialogCtx, list, feed)

	idx, err := s.picker.Pick(dialogCtx, "Liste des programmes", nil)
	cancel()
	feed.close()
	if errors.Is(err, dialog.ErrCancelled) || errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}

	el := feed.element(idx)
	if el == nil {
		return s.fail(
			"Une erreur fatale s'est produite: option invalide sélectionnée",
			errInvalidOption(idx),
		)
	}
	return s.programOptions(ctx, el)
}

// pollPrograms runs off the loop as the one permitted background worker. It
// re-reads the host list at a fixed interval and appends new programs to the
// open picker, checking the closed flag before every unit of work.
func (s *Session) pollPrograms(ctx context.Context, list ax.Element, feed *programFeed) {
	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if feed.isClosed() {
			return
		}
		labels := feed.take(list)
		if len(labels) == 0 {
			continue
		}
		s.log.Debug("program list grew", zap.Int("new", len(labels)))
		for _, label := range labels {
			s.picker.Append(label)
		}
		s.announceNow("Liste des programmes mise à jour.")
	}
}

// programOptions offers the replay actions for one program.
func (s *Session) programOptions(ctx context.Context, programEl ax.Element) error {
	idx, err := s.picker.Pick(ctx, "Choisissez une option", programOptions)
	if errors.Is(err, dialog.ErrCancelled) || errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.programOption(programEl, idx)
}

// programOption opens the program's context menu with a right click near its
// left edge and picks the chosen row by fixed vertical offset.
func (s *Session) programOption(programEl ax.Element, idx int) error {
	if idx < 0 || idx >= len(programOptions) {
		return s.fail(
			fmt.Sprintf("Une erreur fatale s'est produite: option invalide sélectionnée (%d)", idx),
			errInvalidOption(idx),
		)
	}

	window, err := s.reader.Foreground()
	if err != nil {
		return s.fail(
			"Une erreur fatale s'est produite: La fenêtre captvty n'a pas été trouvée",
			errors.Join(topology.ErrWindowUnavailable, err),
		)
	}
	winLoc, err := window.Location()
	if err != nil {
		return s.fail("Une erreur fatale s'est produite: La fenêtre captvty n'a pas été trouvée", err)
	}
	elLoc, err := programEl.Location()
	if err != nil {
		return s.fail("Une erreur s'est produite lors de la sélection du programme", err)
	}

	// The context menu must open inside the row, so the click lands 50px in
	// from the program's left edge rather than at its (possibly off-screen)
	// center.
	hoverX := -(elLoc.Width / 2) + 50
	half := winLoc.Height / 2
	slack := geometry.Offset{Right: -half, Bottom: -half}
	if err := s.scroller.IntoView(programEl, programEl.Parent(), slack, programScrollAttempts); err != nil {
		return s.fail("Une erreur s'est produite lors de la sélection du programme", err)
	}

	// Hover first so the row highlights before the context menu opens.
	if err := s.syn.HoverElement(programEl, hoverX, 0); err != nil {
		return s.fail("Une erreur s'est produite lors de la sélection du programme", err)
	}
	if err := s.syn.ClickElement(programEl, hoverX, 0, platform.MouseRight); err != nil {
		return s.fail("Une erreur s'est produite lors de la sélection du programme", err)
	}
	s.announce(fmt.Sprintf("Selection: %s - %s", programEl.Name(), programOptions[idx]))

	return s.syn.ClickElement(programEl, hoverX+programOptionRowOffsetX, programOptionRowOffsetY[idx], platform.MouseLeft)
}
