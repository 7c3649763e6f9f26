package interpret

import "strings"

// ExtractArray returns the first balanced [...] span in s. Brackets inside
// JSON string literals do not count toward nesting. When the first '[' never
// balances, the span runs to the last ']' in s instead.
func ExtractArray(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	end := strings.LastIndexByte(s, ']')
	if end < start {
		return "", false
	}
	return s[start : end+1], true
}

// Sanitize makes control bytes in a JSON span decodable. Inside string
// literals raw newline, carriage return and tab become their two-character
// escapes; outside them those three are kept as JSON whitespace. Every other
// ASCII control byte (0x00-0x1F, 0x7F) is dropped. Applying it twice is a no-op.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 0x20 || c == 0x7f {
			if !inString {
				if c == '\n' || c == '\r' || c == '\t' {
					b.WriteByte(c)
				}
				continue
			}
			escaped = false
			switch c {
			case '\n':
				b.WriteString(`\n`)
			case '\r':
				b.WriteString(`\r`)
			case '\t':
				b.WriteString(`\t`)
			}
			continue
		}

		b.WriteByte(c)
		switch {
		case inString && escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		}
	}
	return b.String()
}
