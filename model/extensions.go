// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import "github.com/halvardcal/icalgo"

// RelatedTo represents a RELATED-TO property together with its RELTYPE
// parameter (PARENT/CHILD/SIBLING, default PARENT), per RFC 9253 §8.1
// (which extends the base RFC 5545 §3.8.4.5 property with a richer
// relationship vocabulary elsewhere in the same document).
type RelatedTo struct {
	UID     string
	RelType string
}

// Link represents a LINK property, RFC 9253 §6: a URI reference to related
// information, with an optional REL parameter describing the relation.
type Link struct {
	URI string
	Rel string
}

// CalendarName returns the NAME property of a VCALENDAR, RFC 7986 §5.1.
func CalendarName(c *icalgo.Component) (string, bool) {
	p, ok := c.GetProperty("NAME")
	if !ok {
		return "", false
	}
	return icalgo.UnescapeText(p.Value), true
}

// CalendarColor returns the COLOR property, RFC 7986 §5.9 (a CSS3 color
// name, shared by VCALENDAR, VEVENT, VTODO, VJOURNAL).
func CalendarColor(c *icalgo.Component) (string, bool) {
	p, ok := c.GetProperty("COLOR")
	if !ok {
		return "", false
	}
	return p.Value, true
}

// Image represents an IMAGE property, RFC 7986 §5.10: a URI or inline
// binary value with DISPLAY and FMTTYPE parameters.
type Image struct {
	Value   string
	FmtType string
	Display string
}

// Images returns every IMAGE property on a component.
func Images(c *icalgo.Component) []Image {
	var out []Image
	for _, p := range c.GetProperties("IMAGE") {
		img := Image{Value: p.Value}
		if fmtType, ok := p.Param("FMTTYPE"); ok {
			img.FmtType = fmtType
		}
		if display, ok := p.Param("DISPLAY"); ok {
			img.Display = display
		}
		out = append(out, img)
	}
	return out
}

// Conference represents a CONFERENCE property, RFC 7986 §5.11: a URI to a
// conference or broadcast system, with FEATURE and LABEL parameters.
type Conference struct {
	URI     string
	Feature string
	Label   string
}

// Conferences returns every CONFERENCE property on a component.
func Conferences(c *icalgo.Component) []Conference {
	var out []Conference
	for _, p := range c.GetProperties("CONFERENCE") {
		conf := Conference{URI: p.Value}
		if feature, ok := p.Param("FEATURE"); ok {
			conf.Feature = feature
		}
		if label, ok := p.Param("LABEL"); ok {
			conf.Label = label
		}
		out = append(out, conf)
	}
	return out
}

// RelatedTos returns every RELATED-TO property on a component.
func RelatedTos(c *icalgo.Component) []RelatedTo {
	var out []RelatedTo
	for _, p := range c.GetProperties("RELATED-TO") {
		rel := RelatedTo{UID: p.Value, RelType: "PARENT"}
		if relType, ok := p.Param("RELTYPE"); ok {
			rel.RelType = relType
		}
		out = append(out, rel)
	}
	return out
}

// Links returns every LINK property on a component.
func Links(c *icalgo.Component) []Link {
	var out []Link
	for _, p := range c.GetProperties("LINK") {
		link := Link{URI: p.Value}
		if rel, ok := p.Param("REL"); ok {
			link.Rel = rel
		}
		out = append(out, link)
	}
	return out
}
