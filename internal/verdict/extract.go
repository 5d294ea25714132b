package verdict

import (
	"strings"
	"unicode/utf8"
)

// Extract returns the trimmed text between the first occurrence of start and
// the earliest of ends found after it, or the end of text when none match.
// It returns "" when start is absent. Empty end markers are ignored.
//
// Only the first occurrence of start is considered, so a heading repeated
// later in the body does not restart the section.
func Extract(text, start string, ends ...string) string {
	i := strings.Index(text, start)
	if i < 0 {
		return ""
	}

	rest := text[i+len(start):]
	end := len(rest)
	for _, marker := range ends {
		if marker == "" {
			continue
		}
		if j := strings.Index(rest, marker); j >= 0 && j < end {
			end = j
		}
	}

	return strings.TrimSpace(rest[:end])
}

// SplitOverall separates the first line containing "Overall split" from the
// rest of the responsibility section. Leading bullet glyphs and whitespace
// are stripped from the overall line; the remaining lines keep their order
// and are joined and trimmed.
func SplitOverall(section string) (overall, reasoning string) {
	if section == "" {
		return "", ""
	}

	var rest []string
	found := false
	for _, line := range splitLines(section) {
		if !found && strings.Contains(line, OverallMarker) {
			overall = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*•"))
			found = true
			continue
		}
		rest = append(rest, line)
	}

	return overall, strings.TrimSpace(strings.Join(rest, "\n"))
}

// SplitByPartner splits text at the first case-insensitive occurrences of
// markerA and markerB. Half A runs from markerA up to markerB and half B from
// markerB to the end. When markerB is missing or precedes markerA, everything
// from markerA belongs to half A. When markerA is missing, the whole text is
// half A. Both halves are trimmed.
func SplitByPartner(text, markerA, markerB string) (a, b string) {
	if text == "" {
		return "", ""
	}

	ia := indexFold(text, markerA)
	if ia < 0 {
		return strings.TrimSpace(text), ""
	}

	ib := -1
	if markerB != "" {
		ib = indexFold(text, markerB)
	}

	if ib > ia {
		return strings.TrimSpace(text[ia:ib]), strings.TrimSpace(text[ib:])
	}
	return strings.TrimSpace(text[ia:]), ""
}

// CleanEmptyBullets drops lines that are blank or hold only a bullet glyph
// ("-", "*" or "•") and trims the result. Other lines are kept as written.
func CleanEmptyBullets(text string) string {
	var kept []string
	for _, line := range splitLines(text) {
		switch strings.TrimSpace(line) {
		case "", "-", "*", "•":
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// ReplaceLabels swaps the placeholder partner names for display labels.
// Replacements run in order ("Partner A", "partner a", "Partner B",
// "partner b") over every occurrence without word boundaries.
func ReplaceLabels(text, labelA, labelB string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, LabelA, labelA)
	text = strings.ReplaceAll(text, strings.ToLower(LabelA), labelA)
	text = strings.ReplaceAll(text, LabelB, labelB)
	text = strings.ReplaceAll(text, strings.ToLower(LabelB), labelB)
	return text
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// indexFold is strings.Index under Unicode case folding. The returned offset
// always falls on a rune boundary of s.
func indexFold(s, substr string) int {
	n := utf8.RuneCountInString(substr)
	if n == 0 {
		return 0
	}

	for i := range s {
		j, count := i, 0
		for j < len(s) && count < n {
			_, size := utf8.DecodeRuneInString(s[j:])
			j += size
			count++
		}
		if count < n {
			return -1
		}
		if strings.EqualFold(s[i:j], substr) {
			return i
		}
	}
	return -1
}
