package mediation

import (
	"fmt"
	"slices"
)

// Stage is how far along the relationship is.
type Stage string

const (
	StageJustTalking Stage = "Just talking"
	StageDating      Stage = "Dating"
	StageSerious     Stage = "Serious relationship"
	StageCommitted   Stage = "Engaged/Married"
	StageComplicated Stage = "Complicated"
)

// Severity is how serious the conflict feels.
type Severity string

const (
	SeveritySmall  Severity = "Small misunderstanding"
	SeverityMedium Severity = "Medium"
	SeverityBig    Severity = "Big fight"
)

// Tone is how gently the verdict should be delivered.
type Tone string

const (
	ToneGentle   Tone = "Very gentle"
	ToneBalanced Tone = "Balanced"
	ToneDirect   Tone = "Direct but kind"
)

// Mood is a partner's current emotional state.
type Mood string

const (
	MoodAngry        Mood = "😡 Angry"
	MoodSad          Mood = "😢 Sad"
	MoodDisappointed Mood = "😞 Disappointed"
	MoodConfused     Mood = "😐 Confused"
	MoodOkay         Mood = "🙂 Okay"
)

// Defaults applied when a field is left blank.
const (
	DefaultStage    = StageDating
	DefaultSeverity = SeveritySmall
	DefaultTone     = ToneBalanced
	DefaultMood     = MoodAngry
)

var (
	stages     = []Stage{StageJustTalking, StageDating, StageSerious, StageCommitted, StageComplicated}
	severities = []Severity{SeveritySmall, SeverityMedium, SeverityBig}
	tones      = []Tone{ToneGentle, ToneBalanced, ToneDirect}
	moods      = []Mood{MoodAngry, MoodSad, MoodDisappointed, MoodConfused, MoodOkay}
)

// Options lists every selectable value along with its default.
type Options struct {
	Stages          []Stage    `json:"stages"`
	Severities      []Severity `json:"severities"`
	Tones           []Tone     `json:"tones"`
	Moods           []Mood     `json:"moods"`
	DefaultStage    Stage      `json:"default_stage"`
	DefaultSeverity Severity   `json:"default_severity"`
	DefaultTone     Tone       `json:"default_tone"`
	DefaultMood     Mood       `json:"default_mood"`
}

// AllOptions returns the selectable values in display order.
func AllOptions() Options {
	return Options{
		Stages:          slices.Clone(stages),
		Severities:      slices.Clone(severities),
		Tones:           slices.Clone(tones),
		Moods:           slices.Clone(moods),
		DefaultStage:    DefaultStage,
		DefaultSeverity: DefaultSeverity,
		DefaultTone:     DefaultTone,
		DefaultMood:     DefaultMood,
	}
}

// ParseStage returns the default for an empty string and ErrInvalidOption
// for an unknown value.
func ParseStage(s string) (Stage, error) {
	return parseOption(s, "stage", stages, DefaultStage)
}

// ParseSeverity returns the default for an empty string and ErrInvalidOption
// for an unknown value.
func ParseSeverity(s string) (Severity, error) {
	return parseOption(s, "severity", severities, DefaultSeverity)
}

// ParseTone returns the default for an empty string and ErrInvalidOption
// for an unknown value.
func ParseTone(s string) (Tone, error) {
	return parseOption(s, "tone", tones, DefaultTone)
}

// ParseMood returns the default for an empty string and ErrInvalidOption
// for an unknown value.
func ParseMood(s string) (Mood, error) {
	return parseOption(s, "mood", moods, DefaultMood)
}

func parseOption[T ~string](s, field string, valid []T, def T) (T, error) {
	if s == "" {
		return def, nil
	}
	v := T(s)
	if !slices.Contains(valid, v) {
		return "", fmt.Errorf("%w: %s %q", ErrInvalidOption, field, s)
	}
	return v, nil
}
