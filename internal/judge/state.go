// Package judge drives the Penguin Judge web pages: a two-view state machine
// (input and verdict) kept per visitor session.
package judge

import (
	"context"

	"github.com/JaimeStill/penguin/internal/mediation"
	"github.com/JaimeStill/penguin/internal/verdict"
)

// View is the page a visitor is on.
type View int

const (
	ViewInput View = iota
	ViewVerdict
)

func (v View) String() string {
	if v == ViewVerdict {
		return "verdict"
	}
	return "input"
}

// State is one visitor's progress through the judge. The zero value is the
// input view with an empty form.
type State struct {
	View     View
	Revealed bool
	Verdict  string
	Report   mediation.Report
}

// Submit asks sys for a verdict on r and moves to the verdict view, hidden
// until revealed. On any error the state is left unchanged.
func (s *State) Submit(ctx context.Context, sys mediation.System, r mediation.Report) error {
	raw, err := sys.Deliberate(ctx, r)
	if err != nil {
		return err
	}

	s.View = ViewVerdict
	s.Revealed = false
	s.Verdict = raw
	s.Report = r
	return nil
}

// Back returns to the input view, keeping the last report for editing.
func (s *State) Back() {
	s.View = ViewInput
	s.Revealed = false
}

// Reveal flips the verdict from waiting to shown. It reports whether the
// flag changed, which is false outside the verdict view or once revealed.
func (s *State) Reveal() bool {
	if s.View != ViewVerdict || s.Revealed {
		return false
	}
	s.Revealed = true
	return true
}

// Display renders the stored verdict under the report's partner labels.
func (s *State) Display() verdict.Display {
	labelA, labelB := s.Report.Labels()
	return verdict.Render(verdict.Parse(s.Verdict), labelA, labelB)
}
