// Package verdict slices a model's markdown verdict into named sections and
// prepares them for display.
//
// Parsing is best-effort marker search: a missing heading yields an empty
// section and never an error.
package verdict

// Document holds the raw verdict text and every section extracted from it.
type Document struct {
	Raw string `json:"raw"`

	Summary        string `json:"summary"`
	Responsibility string `json:"responsibility"`
	FeelingsA      string `json:"feelings_a"`
	FeelingsB      string `json:"feelings_b"`
	Improvements   string `json:"improvements"`
	Examples       string `json:"examples"`

	Overall       string `json:"overall"`
	Reasoning     string `json:"reasoning"`
	ImprovementsA string `json:"improvements_a"`
	ImprovementsB string `json:"improvements_b"`
	ExamplesA     string `json:"examples_a"`
	ExamplesB     string `json:"examples_b"`
}

// Parse extracts the six sections from raw and splits the responsibility,
// improvements and examples sections. Every section except the summary has
// empty bullet placeholders removed.
func Parse(raw string) Document {
	doc := Document{
		Raw:            raw,
		Summary:        summarySection.extract(raw),
		Responsibility: CleanEmptyBullets(responsibilitySection.extract(raw)),
		FeelingsA:      CleanEmptyBullets(feelingsASection.extract(raw)),
		FeelingsB:      CleanEmptyBullets(feelingsBSection.extract(raw)),
		Improvements:   CleanEmptyBullets(improvementsSection.extract(raw)),
		Examples:       CleanEmptyBullets(examplesSection.extract(raw)),
	}

	doc.Overall, doc.Reasoning = SplitOverall(doc.Responsibility)
	doc.ImprovementsA, doc.ImprovementsB = SplitByPartner(doc.Improvements, PartnerAMarker, PartnerBMarker)
	doc.ExamplesA, doc.ExamplesB = SplitByPartner(doc.Examples, PartnerAMarker, PartnerBMarker)

	return doc
}
