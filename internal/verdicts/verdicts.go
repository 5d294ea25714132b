// Package verdicts exposes the Penguin Judge over a JSON API: hear a case,
// re-parse a saved verdict, and list the selectable options.
package verdicts

import (
	"github.com/google/uuid"

	"github.com/JaimeStill/penguin/internal/verdict"
)

// Verdict is the response for a judged or re-parsed case.
type Verdict struct {
	ID       uuid.UUID        `json:"id"`
	Document verdict.Document `json:"document"`
	Display  verdict.Display  `json:"display"`
}

// ParseRequest carries saved verdict text and optional partner names.
type ParseRequest struct {
	Text  string `json:"text"`
	NameA string `json:"name_a"`
	NameB string `json:"name_b"`
}

func newVerdict(raw, labelA, labelB string) Verdict {
	doc := verdict.Parse(raw)
	return Verdict{
		ID:       uuid.New(),
		Document: doc,
		Display:  verdict.Render(doc, labelA, labelB),
	}
}
