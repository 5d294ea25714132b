package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/JaimeStill/penguin/internal/verdict"
)

const noVerdict = "No verdict yet."

var (
	accent = lipgloss.Color("#2f6fde")
	muted  = lipgloss.Color("#8a8f98")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginTop(1)

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(accent).
			PaddingLeft(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Bold(true)
	emptyStyle = lipgloss.NewStyle().Italic(true).Foreground(muted)
)

// cards lays a verdict out as titled sections with side-by-side partner
// panels, wrapped to width columns.
func cards(d verdict.Display, width int) string {
	if d.Empty {
		return emptyStyle.Render(noVerdict) + "\n"
	}

	var b strings.Builder
	section := func(title, body string) {
		b.WriteString(titleStyle.Render(title))
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}

	if len(d.Summary) > 0 {
		section("📝 Case summary", wrap(nodesText(d.Summary), width))
	}

	if d.Banner != "" || len(d.Reasoning) > 0 {
		var parts []string
		if d.Banner != "" {
			parts = append(parts, bannerStyle.Render(d.Banner))
		}
		if len(d.Reasoning) > 0 {
			parts = append(parts, wrap(nodesText(d.Reasoning), width))
		}
		section("⚖️ Responsibility split", lipgloss.JoinVertical(lipgloss.Left, parts...))
	}

	section("💗 Feelings & needs", pair(d.Feelings, width))

	if d.Improvements != nil {
		section("🔧 How both of you can improve", pair(*d.Improvements, width))
	}
	if d.Examples != nil {
		section("💬 Example sentences you could say to each other", pair(*d.Examples, width))
	}

	return b.String()
}

func pair(p verdict.Pair, width int) string {
	// each panel adds two border and two padding columns
	inner := max(width/2-4, 16)
	return lipgloss.JoinHorizontal(lipgloss.Top, panel(p.A, inner), panel(p.B, inner))
}

func panel(p verdict.Panel, width int) string {
	body := nodesText(p.Nodes)
	if p.Empty {
		body = emptyStyle.Render(body)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(p.Label), body)
	return panelStyle.Width(width + 2).Render(content)
}

func nodesText(nodes []verdict.Node) string {
	var lines []string
	for _, n := range nodes {
		switch n.Kind {
		case verdict.KindList:
			for _, item := range n.Items {
				lines = append(lines, "• "+item)
			}
		default:
			lines = append(lines, n.Text)
		}
	}
	return strings.Join(lines, "\n")
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

// markdown renders the verdict text as-is through glamour.
func markdown(raw, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(raw)
}
