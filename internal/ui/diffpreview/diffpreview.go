// Package diffpreview renders an inline word-level diff between a saved
// product description and its in-progress edit, shown in the admin editor
// before a save is confirmed.
package diffpreview

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zjrosen/vitrine/internal/ui/styles"
)

// MaxLineLength skips word diffing for lines beyond this length; the line
// is shown as fully changed instead.
const MaxLineLength = 500

// SegmentType indicates whether a segment is unchanged, added, or deleted.
type SegmentType int

const (
	SegmentUnchanged SegmentType = iota
	SegmentAdded
	SegmentDeleted
)

// Segment is a run of text with its diff status.
type Segment struct {
	Type SegmentType
	Text string
}

// tokenize splits a line into words, punctuation, and whitespace so the
// diff aligns on word boundaries instead of characters.
func tokenize(line string) []string {
	if line == "" {
		return nil
	}

	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range line {
		switch {
		case unicode.IsSpace(r), unicode.IsPunct(r), unicode.IsSymbol(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// Compute returns the word-level segments describing how edited differs
// from saved. Equal inputs produce a single unchanged segment.
func Compute(saved, edited string) []Segment {
	if saved == edited {
		if saved == "" {
			return nil
		}
		return []Segment{{Type: SegmentUnchanged, Text: saved}}
	}
	if saved == "" {
		return []Segment{{Type: SegmentAdded, Text: edited}}
	}
	if edited == "" {
		return []Segment{{Type: SegmentDeleted, Text: saved}}
	}
	if len(saved) > MaxLineLength || len(edited) > MaxLineLength {
		return []Segment{
			{Type: SegmentDeleted, Text: saved},
			{Type: SegmentAdded, Text: edited},
		}
	}

	// Join tokens with a delimiter so diffmatchpatch aligns on token
	// boundaries, then strip it back out of the results.
	oldText := strings.Join(tokenize(saved), "\x00")
	newText := strings.Join(tokenize(edited), "\x00")

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var segments []Segment
	for _, d := range diffs {
		text := strings.ReplaceAll(d.Text, "\x00", "")
		if text == "" {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			segments = append(segments, Segment{Type: SegmentUnchanged, Text: text})
		case diffmatchpatch.DiffDelete:
			segments = append(segments, Segment{Type: SegmentDeleted, Text: text})
		case diffmatchpatch.DiffInsert:
			segments = append(segments, Segment{Type: SegmentAdded, Text: text})
		}
	}
	return segments
}

// Changed reports whether the segments contain any addition or deletion.
func Changed(segments []Segment) bool {
	for _, s := range segments {
		if s.Type != SegmentUnchanged {
			return true
		}
	}
	return false
}

// Render colorizes segments line by line: deletions struck through in the
// error color, additions in the success color.
func Render(segments []Segment) string {
	deleted := lipgloss.NewStyle().
		Foreground(styles.StatusErrorColor).
		Strikethrough(true)
	added := lipgloss.NewStyle().
		Foreground(styles.StatusSuccessColor)

	var b strings.Builder
	for _, s := range segments {
		// Styling must not leak across newlines or the strikethrough
		// renders over the line break.
		parts := strings.Split(s.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				b.WriteString("\n")
			}
			if part == "" {
				continue
			}
			switch s.Type {
			case SegmentDeleted:
				b.WriteString(deleted.Render(part))
			case SegmentAdded:
				b.WriteString(added.Render(part))
			default:
				b.WriteString(part)
			}
		}
	}
	return b.String()
}
