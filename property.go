package icalgo

import (
	"fmt"
	"sort"
	"strings"
)

// Property is one logical "NAME;PARAM=VAL;...:VALUE" line, already unfolded,
// with parameter values RFC-6868-decoded and the textual VALUE left exactly
// as lexed (text-unescaping is layered on by the value codecs, since
// structured values such as RRULE/RDATE/EXDATE/TRIGGER are never escaped).
type Property struct {
	Name   string
	Value  string
	Params map[string]string
}

// Param looks up a parameter case-insensitively.
func (p Property) Param(name string) (string, bool) {
	for k, v := range p.Params {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// ParsePropertyLine lexes one unfolded logical line into a Property. The
// colon that separates the name/parameter section from the value is the
// first unquoted colon; colons inside a double-quoted parameter value do
// not terminate it.
func ParsePropertyLine(line string) (Property, error) {
	colon := findUnquotedColon(line)
	if colon == -1 {
		return Property{}, fmt.Errorf("%w: %s", ErrMalformedProperty, line)
	}

	head := line[:colon]
	value := line[colon+1:]

	name := head
	params := map[string]string{}
	if semi := strings.IndexByte(head, ';'); semi != -1 {
		name = head[:semi]
		for _, raw := range splitUnquoted(head[semi+1:], ';') {
			if raw == "" {
				continue
			}
			key, val, ok := strings.Cut(raw, "=")
			if !ok {
				return Property{}, fmt.Errorf("%w: %s", ErrParameterMissingEq, raw)
			}
			decoded, err := DecodeParamValue(stripOuterQuotes(val))
			if err != nil {
				return Property{}, err
			}
			params[strings.ToUpper(key)] = decoded
		}
	}

	if name == "" {
		return Property{}, ErrEmptyPropertyName
	}

	return Property{
		Name:   strings.ToUpper(name),
		Value:  value,
		Params: params,
	}, nil
}

// findUnquotedColon returns the index of the first ':' not inside a
// double-quoted span, or -1.
func findUnquotedColon(s string) int {
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case ':':
			if !inQuotes {
				return i
			}
		}
	}
	return -1
}

// splitUnquoted splits s on sep, treating any span between a pair of double
// quotes as opaque.
func splitUnquoted(s string, sep byte) []string {
	var parts []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case c == sep && !inQuotes:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	parts = append(parts, cur.String())
	return parts
}

// stripOuterQuotes removes a leading/trailing double quote pair only when
// the quoted span contains no interior unescaped quote.
func stripOuterQuotes(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	inner := s[1 : len(s)-1]
	if strings.ContainsRune(inner, '"') {
		return s
	}
	return inner
}

// FormatProperty re-emits a Property as a single unfolded logical line.
// When sortParams is true, parameters are emitted in ascending name order;
// otherwise the emission order is map order is not guaranteed, so callers
// that need stable round-trip byte-for-byte output should pass true.
func FormatProperty(p Property, sortParams bool) string {
	var b strings.Builder
	b.WriteString(p.Name)

	keys := make([]string, 0, len(p.Params))
	for k := range p.Params {
		keys = append(keys, k)
	}
	if sortParams {
		sort.Strings(keys)
	}
	for _, k := range keys {
		v := p.Params[k]
		b.WriteByte(';')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(EncodeParamValue(v))
	}
	b.WriteByte(':')
	b.WriteString(p.Value)
	return b.String()
}

// EncodeParamValue applies RFC 6868 caret-escaping and wraps the result in
// double quotes when the raw text contains a colon, semicolon, comma, or any
// non-ASCII byte.
func EncodeParamValue(v string) string {
	var b strings.Builder
	needsQuote := false
	for _, r := range v {
		switch r {
		case '^':
			b.WriteString("^^")
		case '\n':
			b.WriteString("^n")
		case '"':
			b.WriteString("^'")
		default:
			b.WriteRune(r)
		}
		if r == ':' || r == ';' || r == ',' || r > 127 {
			needsQuote = true
		}
	}
	out := b.String()
	if needsQuote {
		return `"` + out + `"`
	}
	return out
}

// DecodeParamValue reverses RFC 6868 caret-escaping. A lone '^' followed by
// a character other than '^', 'n', or '\'' is a decoding error.
func DecodeParamValue(v string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(v); i++ {
		if v[i] != '^' {
			b.WriteByte(v[i])
			continue
		}
		if i+1 >= len(v) {
			b.WriteByte('^')
			break
		}
		switch v[i+1] {
		case '^':
			b.WriteByte('^')
		case 'n':
			b.WriteByte('\n')
		case '\'':
			b.WriteByte('"')
		default:
			return "", fmt.Errorf("%w: ^%c", ErrInvalidCaretEscape, v[i+1])
		}
		i++
	}
	return b.String(), nil
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\r", `\r`,
	`;`, `\;`,
	`,`, `\,`,
)

// EscapeText applies the RFC 5545 §3.3.11 TEXT escaping rules.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

var textUnescaper = strings.NewReplacer(
	`\\`, `\`,
	`\n`, "\n",
	`\N`, "\n",
	`\r`, "\r",
	`\;`, `;`,
	`\,`, `,`,
)

// UnescapeText reverses EscapeText; \N is accepted as a synonym for \n.
func UnescapeText(s string) string {
	return textUnescaper.Replace(s)
}

// structuredValueNames holds the properties whose VALUE part uses its own
// internal delimiter syntax and therefore must never be TEXT-escaped on
// emit.
var structuredValueNames = map[string]bool{
	"RRULE":   true,
	"RDATE":   true,
	"EXDATE":  true,
	"TRIGGER": true,
}

// IsStructuredValue reports whether name's value is structured (and thus
// exempt from TEXT escaping) rather than free text.
func IsStructuredValue(name string) bool {
	return structuredValueNames[strings.ToUpper(name)]
}
