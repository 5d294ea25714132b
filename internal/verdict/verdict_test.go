package verdict_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/penguin/internal/verdict"
)

const fullVerdict = `## 📝 Case summary
Partner A waited for a reply that never came. Partner B's phone had died.

## 💗 Partner A – feelings & needs
- Felt ignored
- Needs reassurance

## 💗 Partner B – feelings & needs
- Felt accused
-
- Needs trust

## ⚖️ Responsibility split
- Overall split: Partner A 40% / Partner B 60%
- Why this split makes sense:
  - Partner B did not warn about the low battery
  - partner a assumed the worst

## 🔧 How both of you can improve
For Partner A:
- Ask before assuming

For Partner B:
- Charge the phone
*

## 💬 Example sentences you could say to each other
For Partner A to say:
- "I felt worried when I could not reach you."

For Partner B to say:
- "I am sorry my silence scared you."

This is friendly guidance, not professional therapy.`

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start string
		ends  []string
		want  string
	}{
		{"absent start", "nothing here", "## A", []string{"##"}, ""},
		{"empty text", "", "## A", nil, ""},
		{"no end markers present", "intro ## A\n  body text \n", "## A", []string{"## B"}, "body text"},
		{"no end markers given", "## A body", "## A", nil, "body"},
		{"earliest end wins", "## A one ## C two ## B three", "## A", []string{"## B", "## C"}, "one"},
		{"end before start ignored", "## B zero ## A one ## B two", "## A", []string{"## B"}, "one"},
		{"first start only", "## A first ## B ## A second", "## A", []string{"## B"}, "first"},
		{"empty end marker ignored", "## A body ## B", "## A", []string{"", "## B"}, "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := verdict.Extract(tt.text, tt.start, tt.ends...); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	texts := []string{
		"## A ## A body ## B tail",
		"## A\n- x\n- y",
		fullVerdict,
	}

	for _, text := range texts {
		once := verdict.Extract(text, "## A", "## B")
		again := verdict.Extract(text, "## A", "## B")
		if once != again {
			t.Errorf("extract not deterministic: %q vs %q", once, again)
		}
		if strings.Contains(once, "## A") {
			twice := verdict.Extract(once, "## A", "## B")
			if twice != strings.TrimSpace(once[strings.Index(once, "## A")+len("## A"):]) {
				t.Errorf("re-extract: got %q", twice)
			}
		}
	}
}

func TestSplitOverall(t *testing.T) {
	tests := []struct {
		name          string
		section       string
		wantOverall   string
		wantReasoning string
	}{
		{"empty", "", "", ""},
		{
			"bulleted overall",
			"- Overall split: A 50% / B 50%\n- Why this split makes sense:\n  - both rushed",
			"Overall split: A 50% / B 50%",
			"- Why this split makes sense:\n  - both rushed",
		},
		{
			"second marker line kept in reasoning",
			"reason one\n- Overall split: 70/30\n- Overall split: repeated",
			"Overall split: 70/30",
			"reason one\n- Overall split: repeated",
		},
		{"no marker", "- just reasons", "", "- just reasons"},
		{"indented bullet", "   * Overall split: 60/40", "Overall split: 60/40", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overall, reasoning := verdict.SplitOverall(tt.section)
			if overall != tt.wantOverall {
				t.Errorf("overall: got %q, want %q", overall, tt.wantOverall)
			}
			if reasoning != tt.wantReasoning {
				t.Errorf("reasoning: got %q, want %q", reasoning, tt.wantReasoning)
			}
		})
	}
}

func TestSplitByPartner(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		wantA string
		wantB string
	}{
		{
			"both markers",
			"For Partner A:\n- x\nFor Partner B:\n- y",
			"For Partner A:\n- x",
			"For Partner B:\n- y",
		},
		{"only marker A", "For Partner A:\n- x\n- y", "For Partner A:\n- x\n- y", ""},
		{"no markers", "  - general advice  ", "- general advice", ""},
		{"empty", "", "", ""},
		{"case-insensitive", "for partner a: x\nFOR PARTNER B: y", "for partner a: x", "FOR PARTNER B: y"},
		{"B before A", "For Partner B: y\nFor Partner A: x", "For Partner A: x", ""},
		{"preamble dropped", "Intro\nFor Partner A: x\nFor Partner B: y", "For Partner A: x", "For Partner B: y"},
		{"multibyte prefix", "💬 For Partner A: x 💬 For Partner B: y", "For Partner A: x 💬", "For Partner B: y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := verdict.SplitByPartner(tt.text, verdict.PartnerAMarker, verdict.PartnerBMarker)
			if a != tt.wantA {
				t.Errorf("half A: got %q, want %q", a, tt.wantA)
			}
			if b != tt.wantB {
				t.Errorf("half B: got %q, want %q", b, tt.wantB)
			}
		})
	}
}

func TestCleanEmptyBullets(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"bare glyphs", "- a\n-\n*\n  •  \n\n- b", "- a\n- b"},
		{"keeps indentation", "- a\n  - nested", "- a\n  - nested"},
		{"trims result", "\n\n- a\n\n", "- a"},
		{"only glyphs", "-\n*\n•", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := verdict.CleanEmptyBullets(tt.text)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if again := verdict.CleanEmptyBullets(got); again != got {
				t.Errorf("not idempotent: %q then %q", got, again)
			}
		})
	}
}

func TestToNodes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []verdict.Node
	}{
		{"empty", "", nil},
		{
			"paragraphs and list",
			"Intro line\n- one\n- two\n\nMiddle\n- three",
			[]verdict.Node{
				{Kind: verdict.KindParagraph, Text: "Intro line"},
				{Kind: verdict.KindList, Items: []string{"one", "two"}},
				{Kind: verdict.KindParagraph, Text: "Middle"},
				{Kind: verdict.KindList, Items: []string{"three"}},
			},
		},
		{
			"blank lines do not split lists",
			"- one\n\n- two",
			[]verdict.Node{{Kind: verdict.KindList, Items: []string{"one", "two"}}},
		},
		{
			"indented bullets flatten",
			"- parent\n  - child",
			[]verdict.Node{{Kind: verdict.KindList, Items: []string{"parent", "child"}}},
		},
		{
			"markup kept as text",
			"<b>bold</b>\n- **x**",
			[]verdict.Node{
				{Kind: verdict.KindParagraph, Text: "<b>bold</b>"},
				{Kind: verdict.KindList, Items: []string{"**x**"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, verdict.ToNodes(tt.text)); diff != "" {
				t.Errorf("nodes (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReplaceLabels(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Partner A said hi", "Sam said hi"},
		{"partner a said hi", "Sam said hi"},
		{"Partner B and partner b", "Alex and Alex"},
		{"PARTNER A", "PARTNER A"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := verdict.ReplaceLabels(tt.text, "Sam", "Alex"); got != tt.want {
			t.Errorf("ReplaceLabels(%q): got %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestReplaceLabelsOrdered(t *testing.T) {
	got := verdict.ReplaceLabels("Partner A", "Partner B", "Zed")
	if got != "Zed" {
		t.Errorf("got %q, want %q", got, "Zed")
	}
}

func TestParseFullVerdict(t *testing.T) {
	doc := verdict.Parse(fullVerdict)

	if doc.Raw != fullVerdict {
		t.Error("raw text not preserved")
	}
	if doc.Summary != "Partner A waited for a reply that never came. Partner B's phone had died." {
		t.Errorf("summary: got %q", doc.Summary)
	}
	if doc.FeelingsB != "- Felt accused\n- Needs trust" {
		t.Errorf("feelings B: got %q", doc.FeelingsB)
	}
	if doc.Overall != "Overall split: Partner A 40% / Partner B 60%" {
		t.Errorf("overall: got %q", doc.Overall)
	}
	if !strings.HasPrefix(doc.Reasoning, "- Why this split makes sense:") {
		t.Errorf("reasoning: got %q", doc.Reasoning)
	}
	if doc.ImprovementsA != "For Partner A:\n- Ask before assuming" {
		t.Errorf("improvements A: got %q", doc.ImprovementsA)
	}
	if doc.ImprovementsB != "For Partner B:\n- Charge the phone" {
		t.Errorf("improvements B: got %q", doc.ImprovementsB)
	}
	if !strings.HasPrefix(doc.ExamplesB, "For Partner B to say:") {
		t.Errorf("examples B: got %q", doc.ExamplesB)
	}
	if !strings.HasSuffix(doc.ExamplesB, "not professional therapy.") {
		t.Errorf("examples B should run to end of text: got %q", doc.ExamplesB)
	}
}

func TestRenderFullVerdict(t *testing.T) {
	d := verdict.Render(verdict.Parse(fullVerdict), "Kiki", "Lulu")

	if d.Empty {
		t.Error("display should not be empty")
	}
	if len(d.Summary) == 0 {
		t.Error("summary missing")
	}
	if !strings.Contains(d.Banner, "Overall split") {
		t.Errorf("banner: got %q", d.Banner)
	}
	if d.Banner != "Overall split: Kiki 40% / Lulu 60%" {
		t.Errorf("banner labels: got %q", d.Banner)
	}
	if len(d.Reasoning) == 0 {
		t.Error("reasoning missing")
	}

	panels := map[string]verdict.Panel{
		"feelings A": d.Feelings.A,
		"feelings B": d.Feelings.B,
	}
	if d.Improvements == nil || d.Examples == nil {
		t.Fatal("improvements and examples should be present")
	}
	panels["improvements A"] = d.Improvements.A
	panels["improvements B"] = d.Improvements.B
	panels["examples A"] = d.Examples.A
	panels["examples B"] = d.Examples.B

	for name, p := range panels {
		if p.Empty {
			t.Errorf("%s: unexpected placeholder", name)
		}
	}

	want := []verdict.Node{
		{Kind: verdict.KindParagraph, Text: "For Kiki:"},
		{Kind: verdict.KindList, Items: []string{"Ask before assuming"}},
	}
	if diff := cmp.Diff(want, d.Improvements.A.Nodes); diff != "" {
		t.Errorf("improvements A nodes (-want +got):\n%s", diff)
	}
	if d.Feelings.B.Label != "Lulu" {
		t.Errorf("feelings B label: got %q", d.Feelings.B.Label)
	}
}

func TestRenderMissingResponsibility(t *testing.T) {
	start := strings.Index(fullVerdict, verdict.HeadingResponsibility)
	end := strings.Index(fullVerdict, verdict.HeadingImprovements)
	text := fullVerdict[:start] + fullVerdict[end:]

	full := verdict.Render(verdict.Parse(fullVerdict), "Kiki", "Lulu")
	got := verdict.Render(verdict.Parse(text), "Kiki", "Lulu")

	if got.Banner != "" {
		t.Errorf("banner: got %q, want empty", got.Banner)
	}
	if got.Reasoning != nil {
		t.Errorf("reasoning: got %v, want nil", got.Reasoning)
	}

	full.Banner, full.Reasoning = "", nil
	if diff := cmp.Diff(full, got); diff != "" {
		t.Errorf("other sections changed (-full +got):\n%s", diff)
	}
}

func TestRenderPlaceholders(t *testing.T) {
	text := verdict.HeadingSummary + "\nJust a summary.\n" +
		verdict.HeadingImprovements + "\nFor Partner A:\n- listen more"

	d := verdict.Render(verdict.Parse(text), "Partner A", "Partner B")

	if !d.Feelings.A.Empty || !d.Feelings.B.Empty {
		t.Error("feelings panels should show placeholders")
	}
	if got := d.Feelings.A.Nodes[0].Text; got != verdict.NoFeelings {
		t.Errorf("feelings placeholder: got %q", got)
	}
	if d.Improvements == nil {
		t.Fatal("improvements should be present")
	}
	if d.Improvements.A.Empty {
		t.Error("improvements A should have content")
	}
	if !d.Improvements.B.Empty || d.Improvements.B.Nodes[0].Text != verdict.NoImprovements {
		t.Errorf("improvements B placeholder: got %+v", d.Improvements.B)
	}
	if d.Examples != nil {
		t.Error("examples should be omitted when the section is missing")
	}
}

func TestRenderEmpty(t *testing.T) {
	d := verdict.Render(verdict.Parse(""), "Partner A", "Partner B")

	if !d.Empty {
		t.Error("display should be empty")
	}
	if d.Banner != "" || d.Summary != nil {
		t.Errorf("unexpected content: %+v", d)
	}
	if !d.Feelings.A.Empty {
		t.Error("feelings should show placeholder")
	}
}

func TestParseNoHeadings(t *testing.T) {
	doc := verdict.Parse("The model ignored the layout entirely.")

	want := verdict.Document{Raw: "The model ignored the layout entirely."}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document (-want +got):\n%s", diff)
	}
}
