package interpret

import (
	"encoding/json"
	"fmt"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/tone"
)

// MaxOptions caps the number of humanize candidates returned.
const MaxOptions = 2

// Result is either a list of rewrite options (humanize) or a single rewritten
// string. Options is nil for the single-string shape.
type Result struct {
	Options []string
	Text    string
}

// HasOptions reports whether r carries the humanize options shape.
func (r Result) HasOptions() bool { return r.Options != nil }

func (r Result) MarshalJSON() ([]byte, error) {
	if r.HasOptions() {
		return json.Marshal(struct {
			Options []string `json:"options"`
		}{r.Options})
	}
	return json.Marshal(struct {
		Result string `json:"result"`
	}{r.Text})
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var raw struct {
		Options []string `json:"options"`
		Result  string   `json:"result"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Options = raw.Options
	r.Text = raw.Result
	return nil
}

// ParseError reports a humanize reply whose array span did not decode.
type ParseError struct {
	Span string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("interpret: parse options: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Interpret converts a raw backend reply into the result shape for t.
// Non-humanize replies pass through verbatim. A humanize reply with no
// bracketed span also comes back as plain text; a span that fails to decode
// returns *ParseError.
func Interpret(raw string, t tone.Tone) (Result, error) {
	if t != tone.Humanize {
		return Result{Text: raw}, nil
	}

	span, ok := ExtractArray(raw)
	if !ok {
		return Result{Text: raw}, nil
	}

	sanitized := Sanitize(span)
	var options []string
	if err := json.Unmarshal([]byte(sanitized), &options); err != nil {
		return Result{}, &ParseError{Span: sanitized, Err: err}
	}
	if len(options) > MaxOptions {
		options = options[:MaxOptions]
	}
	return Result{Options: options}, nil
}
