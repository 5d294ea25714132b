package verdict

// Level-2 headings that introduce each section of a verdict.
const (
	HeadingSummary        = "## 📝 Case summary"
	HeadingFeelingsA      = "## 💗 Partner A – feelings & needs"
	HeadingFeelingsB      = "## 💗 Partner B – feelings & needs"
	HeadingResponsibility = "## ⚖️ Responsibility split"
	HeadingImprovements   = "## 🔧 How both of you can improve"
	HeadingExamples       = "## 💬 Example sentences you could say to each other"
)

// Sub-section markers inside the responsibility, improvements and examples
// sections.
const (
	OverallMarker  = "Overall split"
	PartnerAMarker = "For Partner A"
	PartnerBMarker = "For Partner B"
)

// Placeholder labels the model uses for the two partners.
const (
	LabelA = "Partner A"
	LabelB = "Partner B"
)

// Headings returns the six section headings in the order the model is asked
// to produce them.
func Headings() []string {
	return []string{
		HeadingSummary,
		HeadingFeelingsA,
		HeadingFeelingsB,
		HeadingResponsibility,
		HeadingImprovements,
		HeadingExamples,
	}
}

// Prefix-only end markers match a heading regardless of its wording.
const (
	anyHeading          = "##"
	anyImprovementsHead = "## 🔧"
	anyExamplesHead     = "## 💬"
	anySummaryHead      = "## 📝"
)

type section struct {
	start string
	ends  []string
}

var (
	summarySection = section{
		start: HeadingSummary,
		ends:  []string{HeadingFeelingsA, HeadingFeelingsB, HeadingResponsibility, anyImprovementsHead, anyExamplesHead, anyHeading},
	}
	responsibilitySection = section{
		start: HeadingResponsibility,
		ends:  []string{anyExamplesHead, anyImprovementsHead, HeadingFeelingsA, HeadingFeelingsB, anySummaryHead, anyHeading},
	}
	feelingsASection = section{
		start: HeadingFeelingsA,
		ends:  []string{HeadingFeelingsB, HeadingResponsibility, anyImprovementsHead, anyExamplesHead, anyHeading},
	}
	feelingsBSection = section{
		start: HeadingFeelingsB,
		ends:  []string{HeadingResponsibility, anyImprovementsHead, anyExamplesHead, anyHeading},
	}
	improvementsSection = section{
		start: HeadingImprovements,
		ends:  []string{anyExamplesHead, anyHeading},
	}
	examplesSection = section{
		start: HeadingExamples,
		ends:  []string{anyHeading},
	}
)

func (s section) extract(text string) string {
	return Extract(text, s.start, s.ends...)
}
