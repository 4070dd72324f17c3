package icalgo

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// DefaultFoldWidth is the maximum octet length of a physical output line,
// per RFC 5545 §3.1, before a CRLF SP continuation is inserted.
const DefaultFoldWidth = 75

// UnfoldLines reads a raw iCalendar byte stream and returns its logical
// lines: any CRLF (or bare LF, tolerated for lenient input) immediately
// followed by a single SP or HTAB is a folding point and is removed, joining
// the continuation onto the previous line. Blank lines are discarded. A
// leading UTF-8 byte-order mark is stripped.
func UnfoldLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	stripBOM(br)

	var lines []string
	var cur strings.Builder
	haveLine := false

	for {
		raw, err := br.ReadString('\n')
		if len(raw) == 0 && err != nil {
			break
		}

		line := strings.TrimSuffix(raw, "\n")
		line = strings.TrimSuffix(line, "\r")

		// Peek ahead: does the *next* physical line start with a
		// continuation marker? We can't peek past what we've already
		// read, so folding is instead detected on the line we're about
		// to append: if it starts with SP/HTAB, it continues the
		// previous logical line.
		if haveLine && len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
			cur.WriteString(line[1:])
		} else {
			if haveLine {
				if s := cur.String(); s != "" {
					lines = append(lines, s)
				}
				cur.Reset()
			}
			cur.WriteString(line)
			haveLine = true
		}

		if err != nil {
			break
		}
	}
	if haveLine {
		if s := cur.String(); s != "" {
			lines = append(lines, s)
		}
	}
	return lines, nil
}

func stripBOM(br *bufio.Reader) {
	b, err := br.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = br.Discard(3)
	}
}

// FoldLine splits a logical line L into RFC 5545 folded physical lines,
// joined by CRLF SP, measuring width in UTF-8 octets rather than characters,
// the RFC 5545 §3.1-compliant choice. width<=0 selects DefaultFoldWidth.
func FoldLine(line string, width int) string {
	if width <= 0 {
		width = DefaultFoldWidth
	}
	if len(line) <= width {
		return line
	}

	var b strings.Builder
	remaining := line
	first := true
	for {
		limit := width
		if !first {
			limit = width - 1
		}
		if len(remaining) <= limit {
			if !first {
				b.WriteString("\r\n ")
			}
			b.WriteString(remaining)
			break
		}
		cut := utf8TruncateLen(remaining, limit)
		if !first {
			b.WriteString("\r\n ")
		}
		b.WriteString(remaining[:cut])
		remaining = remaining[cut:]
		first = false
	}
	return b.String()
}

// utf8TruncateLen returns the largest byte length <= limit that ends on a
// UTF-8 rune boundary, so folding never splits a multi-byte character.
func utf8TruncateLen(s string, limit int) int {
	if limit >= len(s) {
		return len(s)
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return cut
}
