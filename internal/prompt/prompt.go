package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/tone"
)

// Payload is the instruction pair sent to a generation backend.
// System is empty for every tone except humanize.
type Payload struct {
	System string
	User   string
}

const (
	textHeader = "\n\nText to rewrite:\n\n"
	reminder   = "\n\nThe original text has "
)

var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// WordCount counts whitespace-delimited tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ParagraphCount counts non-blank chunks separated by one or more blank lines.
func ParagraphCount(text string) int {
	n := 0
	for _, p := range paragraphBreak.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

// Build composes the payload for text rewritten in tone t.
// Callers validate text and t first.
func Build(text string, t tone.Tone) Payload {
	var b strings.Builder
	b.WriteString(t.Directive())
	b.WriteString(textHeader)
	b.WriteString(text)

	if t != tone.Humanize {
		return Payload{User: b.String()}
	}

	words := WordCount(text)
	paragraphs := ParagraphCount(text)
	b.WriteString(reminder)
	fmt.Fprintf(&b, "%d words and %d paragraph(s). "+
		"Each option in your JSON array MUST be approximately %d words and contain all %d paragraph(s). "+
		"Do NOT shorten or summarize.", words, paragraphs, words, paragraphs)

	return Payload{System: HumanizeSystem, User: b.String()}
}

// SourceText recovers the original text from a user instruction made by Build.
func SourceText(user string) string {
	_, text, ok := strings.Cut(user, textHeader)
	if !ok {
		return user
	}
	if i := strings.LastIndex(text, reminder); i >= 0 {
		text = text[:i]
	}
	return text
}
