package icalgo

import (
	"sort"
	"strings"
)

// SerializeOptions controls Serializer output.
type SerializeOptions struct {
	// LineLength is the fold width in octets; 0 selects DefaultFoldWidth.
	LineLength int
	// SortProperties emits each component's properties in ascending name
	// order instead of document/insertion order. Useful for deterministic
	// golden-file tests; most real producers don't sort.
	SortProperties bool
	// CRLF selects CRLF line endings, the RFC 5545 form. When false (the
	// zero value), every line ending, fold continuations included, is a
	// bare LF; CRLF output is produced only when this is set to true.
	CRLF bool
	// TimezonesFirst reorders a VCALENDAR's direct children so every
	// VTIMEZONE precedes every other child, matching the convention Google
	// Calendar and other major producers use.
	TimezonesFirst bool
}

// Serializer renders a Component tree back into the iCalendar wire format.
type Serializer struct {
	Options SerializeOptions
}

// NewSerializer returns a Serializer with the given options.
func NewSerializer(opts SerializeOptions) *Serializer {
	return &Serializer{Options: opts}
}

// Serialize renders root (and its descendants) as a complete folded
// iCalendar document.
func (s *Serializer) Serialize(root *Component) string {
	var b strings.Builder
	s.writeComponent(&b, root)
	return b.String()
}

func (s *Serializer) newline() string {
	if s.Options.CRLF {
		return "\r\n"
	}
	return "\n"
}

func (s *Serializer) writeLine(b *strings.Builder, line string) {
	width := s.Options.LineLength
	if width <= 0 {
		width = DefaultFoldWidth
	}
	folded := FoldLine(line, width)
	if s.Options.CRLF {
		// FoldLine already joins continuations with "\r\n "; only the
		// trailing terminator depends on the requested line ending.
		b.WriteString(folded)
		b.WriteString("\r\n")
		return
	}
	b.WriteString(strings.ReplaceAll(folded, "\r\n", "\n"))
	b.WriteString("\n")
}

func (s *Serializer) writeComponent(b *strings.Builder, c *Component) {
	s.writeLine(b, "BEGIN:"+c.Kind)

	props := c.Properties
	if s.Options.SortProperties {
		props = append([]Property(nil), props...)
		sort.SliceStable(props, func(i, j int) bool {
			return props[i].Name < props[j].Name
		})
	}
	for _, p := range props {
		s.writeLine(b, FormatProperty(p, s.Options.SortProperties))
	}

	children := c.Children
	if s.Options.TimezonesFirst && strings.EqualFold(c.Kind, "VCALENDAR") {
		children = timezonesFirstOrder(children)
	}
	for _, ch := range children {
		s.writeComponent(b, ch)
	}

	s.writeLine(b, "END:"+c.Kind)
}

// timezonesFirstOrder returns children with VTIMEZONEs moved ahead of every
// other kind, each group keeping its original relative order.
func timezonesFirstOrder(children []*Component) []*Component {
	out := make([]*Component, 0, len(children))
	for _, ch := range children {
		if strings.EqualFold(ch.Kind, "VTIMEZONE") {
			out = append(out, ch)
		}
	}
	for _, ch := range children {
		if !strings.EqualFold(ch.Kind, "VTIMEZONE") {
			out = append(out, ch)
		}
	}
	return out
}
