package verdict

import "strings"

// NodeKind distinguishes paragraph and bullet-list display nodes.
type NodeKind string

const (
	KindParagraph NodeKind = "paragraph"
	KindList      NodeKind = "list"
)

// Node is a paragraph or a flat bullet list. Text and Items are plain text;
// renderers escape them.
type Node struct {
	Kind  NodeKind `json:"kind"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

// ToNodes converts a cleaned section into display nodes. Consecutive lines
// beginning with "- " form one list; every other non-blank line becomes a
// paragraph and closes any open list. Blank lines are skipped.
func ToNodes(text string) []Node {
	var (
		nodes []Node
		items []string
	)

	flush := func() {
		if len(items) > 0 {
			nodes = append(nodes, Node{Kind: KindList, Items: items})
			items = nil
		}
	}

	for _, line := range splitLines(text) {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		if item, ok := strings.CutPrefix(s, "- "); ok {
			items = append(items, item)
			continue
		}
		flush()
		nodes = append(nodes, Node{Kind: KindParagraph, Text: s})
	}
	flush()

	return nodes
}
