package icalgo

import "strings"

// Component is a generic BEGIN/END node: a VCALENDAR, VEVENT, VTODO,
// VJOURNAL, VFREEBUSY, VALARM, VTIMEZONE, STANDARD/DAYLIGHT sub-component, or
// any unrecognized IANA/X- component kept around in lenient mode. Rather than
// a closed set of typed structs per RFC component, the tree is one shape;
// typed read access is layered on top by the model package's view
// functions (Design Notes §9).
type Component struct {
	Kind       string
	Properties []Property
	Children   []*Component
}

// NewComponent returns an empty Component of the given kind. Kind is
// upper-cased to match the BEGIN/END token convention.
func NewComponent(kind string) *Component {
	return &Component{Kind: strings.ToUpper(kind)}
}

// GetProperty returns the first property with the given name (case
// insensitive): RFC 5545 treats the first occurrence as authoritative for
// single-valued properties.
func (c *Component) GetProperty(name string) (Property, bool) {
	for _, p := range c.Properties {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Property{}, false
}

// GetProperties returns every property with the given name, in document
// order, for multi-valued properties such as ATTENDEE, CATEGORIES, or
// RDATE/EXDATE.
func (c *Component) GetProperties(name string) []Property {
	var out []Property
	for _, p := range c.Properties {
		if strings.EqualFold(p.Name, name) {
			out = append(out, p)
		}
	}
	return out
}

// AddProperty appends a property, preserving document order. Multi-valued
// properties are built by calling this repeatedly.
func (c *Component) AddProperty(p Property) {
	c.Properties = append(c.Properties, p)
}

// SetProperty replaces the first property with p.Name, or appends p if none
// exists. Used for single-valued properties where "set" means "there can
// only be one".
func (c *Component) SetProperty(p Property) {
	for i, existing := range c.Properties {
		if strings.EqualFold(existing.Name, p.Name) {
			c.Properties[i] = p
			return
		}
	}
	c.AddProperty(p)
}

// RemoveProperty deletes every property with the given name and reports how
// many were removed.
func (c *Component) RemoveProperty(name string) int {
	kept := c.Properties[:0]
	removed := 0
	for _, p := range c.Properties {
		if strings.EqualFold(p.Name, name) {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	c.Properties = kept
	return removed
}

// AddChild appends a sub-component (e.g. a VALARM under a VEVENT, or a
// STANDARD/DAYLIGHT under a VTIMEZONE).
func (c *Component) AddChild(child *Component) {
	c.Children = append(c.Children, child)
}

// ChildrenOf returns this component's direct children of the given kind, in
// document order.
func (c *Component) ChildrenOf(kind string) []*Component {
	var out []*Component
	for _, ch := range c.Children {
		if strings.EqualFold(ch.Kind, kind) {
			out = append(out, ch)
		}
	}
	return out
}

// Walk calls fn for c and every descendant, depth-first, pre-order.
func (c *Component) Walk(fn func(*Component)) {
	fn(c)
	for _, ch := range c.Children {
		ch.Walk(fn)
	}
}
