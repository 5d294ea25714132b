package verdicts

import (
	"github.com/JaimeStill/penguin/internal/mediation"
	"github.com/JaimeStill/penguin/pkg/openapi"
)

var createOp = &openapi.Operation{
	Summary:     "Judge a conflict",
	Description: "Sends both partners' accounts to the completion service and returns the sectioned verdict.",
	Tags:        []string{"Verdicts"},
	RequestBody: openapi.RequestBodyJSON("Report", true),
	Responses: map[int]*openapi.Response{
		201: openapi.ResponseJSON("Verdict reached", "Verdict"),
		400: openapi.ResponseRef("BadRequest"),
		502: openapi.ResponseRef("BadGateway"),
	},
}

var parseOp = &openapi.Operation{
	Summary:     "Parse saved verdict text",
	Description: "Sections raw verdict markdown without calling the completion service.",
	Tags:        []string{"Verdicts"},
	RequestBody: openapi.RequestBodyJSON("ParseRequest", true),
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Parsed verdict", "Verdict"),
		400: openapi.ResponseRef("BadRequest"),
	},
}

var optionsOp = &openapi.Operation{
	Summary: "List report options",
	Tags:    []string{"Verdicts"},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Selectable values and defaults", "Options"),
	},
}

func enum[T ~string](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func schemas() map[string]*openapi.Schema {
	opts := mediation.AllOptions()

	partner := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"name":      {Type: "string", Description: "Optional display name"},
			"mood":      {Type: "string", Enum: enum(opts.Moods), Default: string(opts.DefaultMood)},
			"event":     {Type: "string", Description: "What happened, from this partner's perspective"},
			"grievance": {Type: "string", Description: "Why this partner is upset"},
		},
		Required: []string{"event", "grievance"},
	}

	node := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"kind":  {Type: "string", Enum: []any{"paragraph", "list"}},
			"text":  {Type: "string"},
			"items": {Type: "array", Items: &openapi.Schema{Type: "string"}},
		},
	}

	return map[string]*openapi.Schema{
		"Partner": partner,
		"Report": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"stage":     {Type: "string", Enum: enum(opts.Stages), Default: string(opts.DefaultStage)},
				"severity":  {Type: "string", Enum: enum(opts.Severities), Default: string(opts.DefaultSeverity)},
				"tone":      {Type: "string", Enum: enum(opts.Tones), Default: string(opts.DefaultTone)},
				"partner_a": openapi.SchemaRef("Partner"),
				"partner_b": openapi.SchemaRef("Partner"),
			},
			Required: []string{"partner_a", "partner_b"},
		},
		"ParseRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"text":   {Type: "string", Description: "Raw verdict markdown"},
				"name_a": {Type: "string"},
				"name_b": {Type: "string"},
			},
			Required: []string{"text"},
		},
		"Node": node,
		"Verdict": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":       {Type: "string", Format: "uuid"},
				"document": {Type: "object", Description: "Raw text and extracted sections"},
				"display":  {Type: "object", Description: "Label-substituted display nodes"},
			},
		},
		"Options": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"stages":     {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"severities": {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"tones":      {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"moods":      {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
	}
}
