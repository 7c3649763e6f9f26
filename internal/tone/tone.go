package tone

// Tone identifies a rewriting style.
type Tone string

const (
	Humanize Tone = "humanize"
	Formal   Tone = "formal"
	Informal Tone = "informal"
	Concise  Tone = "concise"
	Creative Tone = "creative"
	Academic Tone = "academic"
)

var directives = map[Tone]string{
	Humanize: "Humanize the following text.",
	Formal:   "Rewrite the following text in a formal, professional tone. Use proper grammar, avoid contractions, and maintain a polished style suitable for business or academic contexts.",
	Informal: "Rewrite the following text in a casual, conversational tone. Use contractions, simple words, and make it feel like you're talking to a friend.",
	Concise:  "Rewrite the following text to be as concise as possible. Remove unnecessary words and filler while preserving the core meaning.",
	Creative: "Rewrite the following text in a more creative and engaging way. Use vivid language, metaphors, or interesting phrasing while keeping the original meaning.",
	Academic: "Rewrite the following text in an academic tone. Use scholarly language, precise terminology, and a structured approach suitable for research or essays.",
}

var order = []Tone{Humanize, Formal, Informal, Concise, Creative, Academic}

// Info is exposed via GET /api/tones.
type Info struct {
	ID        Tone   `json:"id"`
	Directive string `json:"directive"`
}

// Parse returns the tone named by s, or false if s is not a known tone.
func Parse(s string) (Tone, bool) {
	t := Tone(s)
	_, ok := directives[t]
	return t, ok
}

// Directive returns the fixed instruction for t, or "" for an unknown tone.
func (t Tone) Directive() string {
	return directives[t]
}

func (t Tone) Valid() bool {
	_, ok := directives[t]
	return ok
}

func (t Tone) String() string { return string(t) }

// All lists every tone in display order.
func All() []Info {
	infos := make([]Info, 0, len(order))
	for _, t := range order {
		infos = append(infos, Info{ID: t, Directive: directives[t]})
	}
	return infos
}
