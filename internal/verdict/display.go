package verdict

// Placeholders shown in place of an empty panel.
const (
	NoFeelings     = "No details found."
	NoImprovements = "No specific suggestions."
	NoExamples     = "No example sentences."
)

// Panel is one labelled box of display nodes. Empty marks a panel showing
// its placeholder.
type Panel struct {
	Label string `json:"label"`
	Nodes []Node `json:"nodes"`
	Empty bool   `json:"empty"`
}

// Pair is a side-by-side pair of partner panels.
type Pair struct {
	A Panel `json:"a"`
	B Panel `json:"b"`
}

// Display is a Document prepared for rendering, with placeholder names
// replaced by the partners' labels.
type Display struct {
	LabelA string `json:"label_a"`
	LabelB string `json:"label_b"`

	Summary   []Node `json:"summary,omitempty"`
	Banner    string `json:"banner,omitempty"`
	Reasoning []Node `json:"reasoning,omitempty"`
	Feelings  Pair   `json:"feelings"`

	// Improvements and Examples are nil when the model left the section out.
	Improvements *Pair `json:"improvements,omitempty"`
	Examples     *Pair `json:"examples,omitempty"`

	// Empty reports that there was no verdict text at all.
	Empty bool `json:"empty"`
}

// Render prepares doc for display under the given partner labels.
func Render(doc Document, labelA, labelB string) Display {
	replace := func(text string) string {
		return ReplaceLabels(text, labelA, labelB)
	}

	d := Display{
		LabelA:    labelA,
		LabelB:    labelB,
		Summary:   ToNodes(replace(doc.Summary)),
		Banner:    replace(doc.Overall),
		Reasoning: ToNodes(replace(doc.Reasoning)),
		Feelings: Pair{
			A: panel(labelA, replace(doc.FeelingsA), NoFeelings),
			B: panel(labelB, replace(doc.FeelingsB), NoFeelings),
		},
		Empty: doc.Raw == "",
	}

	if doc.Improvements != "" {
		d.Improvements = &Pair{
			A: panel(labelA, replace(doc.ImprovementsA), NoImprovements),
			B: panel(labelB, replace(doc.ImprovementsB), NoImprovements),
		}
	}
	if doc.Examples != "" {
		d.Examples = &Pair{
			A: panel(labelA, replace(doc.ExamplesA), NoExamples),
			B: panel(labelB, replace(doc.ExamplesB), NoExamples),
		}
	}

	return d
}

func panel(label, text, placeholder string) Panel {
	if text == "" {
		return Panel{
			Label: label,
			Nodes: []Node{{Kind: KindParagraph, Text: placeholder}},
			Empty: true,
		}
	}
	return Panel{Label: label, Nodes: ToNodes(text)}
}
