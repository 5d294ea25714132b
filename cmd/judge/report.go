package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/penguin/internal/mediation"
)

// reportFlags binds a case to command flags. A --report file is read first
// and any flag set explicitly overrides its field.
type reportFlags struct {
	file string

	stage    string
	severity string
	tone     string

	nameA, moodA, eventA, grievanceA string
	nameB, moodB, eventB, grievanceB string
}

func (f *reportFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.file, "report", "", "JSON file holding the case")

	fs.StringVar(&f.stage, "stage", "", "relationship stage")
	fs.StringVar(&f.severity, "severity", "", "conflict severity")
	fs.StringVar(&f.tone, "tone", "", "verdict tone")

	fs.StringVar(&f.nameA, "name-a", "", "first partner's name")
	fs.StringVar(&f.moodA, "mood-a", "", "first partner's mood")
	fs.StringVar(&f.eventA, "event-a", "", "what happened, as the first partner tells it")
	fs.StringVar(&f.grievanceA, "grievance-a", "", "what bothered the first partner")

	fs.StringVar(&f.nameB, "name-b", "", "second partner's name")
	fs.StringVar(&f.moodB, "mood-b", "", "second partner's mood")
	fs.StringVar(&f.eventB, "event-b", "", "what happened, as the second partner tells it")
	fs.StringVar(&f.grievanceB, "grievance-b", "", "what bothered the second partner")
}

func (f *reportFlags) report(cmd *cobra.Command) (mediation.Report, error) {
	fs := cmd.Flags()
	var r mediation.Report

	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return r, fmt.Errorf("read report: %w", err)
		}
		if err := json.Unmarshal(data, &r); err != nil {
			return r, fmt.Errorf("decode report %s: %w", f.file, err)
		}
	}

	set := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}

	set("stage", (*string)(&r.Stage), f.stage)
	set("severity", (*string)(&r.Severity), f.severity)
	set("tone", (*string)(&r.Tone), f.tone)

	set("name-a", &r.A.Name, f.nameA)
	set("mood-a", (*string)(&r.A.Mood), f.moodA)
	set("event-a", &r.A.Event, f.eventA)
	set("grievance-a", &r.A.Grievance, f.grievanceA)

	set("name-b", &r.B.Name, f.nameB)
	set("mood-b", (*string)(&r.B.Mood), f.moodB)
	set("event-b", &r.B.Event, f.eventB)
	set("grievance-b", &r.B.Grievance, f.grievanceB)

	if err := r.Normalize(); err != nil {
		return r, err
	}
	return r, r.Validate()
}
