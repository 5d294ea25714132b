// Package mediation turns a couple's conflict report into a verdict by
// prompting the completion service as a neutral relationship mediator.
package mediation

import (
	"errors"
	"strings"

	"github.com/JaimeStill/penguin/internal/verdict"
)

// Default labels used when a partner leaves their name blank.
const (
	DefaultLabelA = verdict.LabelA
	DefaultLabelB = verdict.LabelB
)

// Partner is one side of the conflict.
type Partner struct {
	Name      string `json:"name"`
	Mood      Mood   `json:"mood"`
	Event     string `json:"event"`
	Grievance string `json:"grievance"`
}

// Report is everything the judge needs to hear a case.
type Report struct {
	Stage    Stage    `json:"stage"`
	Severity Severity `json:"severity"`
	Tone     Tone     `json:"tone"`
	A        Partner  `json:"partner_a"`
	B        Partner  `json:"partner_b"`
}

// Labels returns the trimmed partner names, falling back to
// "Partner A" and "Partner B".
func (r Report) Labels() (string, string) {
	return Labels(r.A.Name, r.B.Name)
}

// Labels returns display labels for two optional partner names.
func Labels(nameA, nameB string) (string, string) {
	return label(nameA, DefaultLabelA), label(nameB, DefaultLabelB)
}

// Normalize fills blank options with their defaults and validates the rest.
func (r *Report) Normalize() error {
	var err error
	if r.Stage, err = ParseStage(string(r.Stage)); err != nil {
		return err
	}
	if r.Severity, err = ParseSeverity(string(r.Severity)); err != nil {
		return err
	}
	if r.Tone, err = ParseTone(string(r.Tone)); err != nil {
		return err
	}
	if r.A.Mood, err = ParseMood(string(r.A.Mood)); err != nil {
		return err
	}
	if r.B.Mood, err = ParseMood(string(r.B.Mood)); err != nil {
		return err
	}
	return nil
}

// Validate reports ErrIncompleteReport when any event or grievance is blank
// after trimming, and ErrInvalidOption for an unknown option value.
func (r Report) Validate() error {
	for _, field := range []string{r.A.Event, r.B.Event, r.A.Grievance, r.B.Grievance} {
		if strings.TrimSpace(field) == "" {
			return ErrIncompleteReport
		}
	}
	return errors.Join(
		checkOption(r.Stage, ParseStage),
		checkOption(r.Severity, ParseSeverity),
		checkOption(r.Tone, ParseTone),
		checkOption(r.A.Mood, ParseMood),
		checkOption(r.B.Mood, ParseMood),
	)
}

func checkOption[T ~string](v T, parse func(string) (T, error)) error {
	_, err := parse(string(v))
	return err
}

func label(name, fallback string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return fallback
}
