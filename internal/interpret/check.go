package interpret

import (
	"fmt"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/prompt"
)

// WordTolerance is how far an option's word count may drift from the input.
const WordTolerance = 10

// Violation kinds, also used as metric labels.
const (
	ViolationCount     = "count"
	ViolationDuplicate = "duplicate"
	ViolationLength    = "length"
)

// Violation describes one humanize constraint an option set fails.
type Violation struct {
	Kind   string
	Detail string
}

func (v Violation) String() string { return v.Kind + ": " + v.Detail }

// Check reports which humanize constraints options break against the
// original text. It never modifies options.
func Check(options []string, original string) []Violation {
	var out []Violation
	if len(options) < MaxOptions {
		out = append(out, Violation{
			Kind:   ViolationCount,
			Detail: fmt.Sprintf("got %d options, want %d", len(options), MaxOptions),
		})
	}

	seen := make(map[string]bool, len(options))
	for _, o := range options {
		if seen[o] {
			out = append(out, Violation{Kind: ViolationDuplicate, Detail: "options are not distinct"})
			break
		}
		seen[o] = true
	}

	want := prompt.WordCount(original)
	for i, o := range options {
		got := prompt.WordCount(o)
		if got < want-WordTolerance || got > want+WordTolerance {
			out = append(out, Violation{
				Kind:   ViolationLength,
				Detail: fmt.Sprintf("option %d has %d words, want %d±%d", i+1, got, want, WordTolerance),
			})
		}
	}
	return out
}
