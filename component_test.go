package icalgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentGetSetProperty(t *testing.T) {
	c := NewComponent("vevent")
	assert.Equal(t, "VEVENT", c.Kind)

	c.AddProperty(Property{Name: "SUMMARY", Value: "first"})
	c.SetProperty(Property{Name: "summary", Value: "second"})

	p, ok := c.GetProperty("SUMMARY")
	require.True(t, ok)
	assert.Equal(t, "second", p.Value)
	assert.Len(t, c.Properties, 1)
}

func TestComponentGetPropertiesMultiValued(t *testing.T) {
	c := NewComponent("VEVENT")
	c.AddProperty(Property{Name: "ATTENDEE", Value: "mailto:a@x"})
	c.AddProperty(Property{Name: "ATTENDEE", Value: "mailto:b@x"})
	assert.Len(t, c.GetProperties("ATTENDEE"), 2)
}

func TestComponentRemoveProperty(t *testing.T) {
	c := NewComponent("VEVENT")
	c.AddProperty(Property{Name: "CATEGORIES", Value: "A"})
	c.AddProperty(Property{Name: "CATEGORIES", Value: "B"})
	c.AddProperty(Property{Name: "SUMMARY", Value: "x"})
	removed := c.RemoveProperty("CATEGORIES")
	assert.Equal(t, 2, removed)
	assert.Len(t, c.Properties, 1)
}

func TestComponentChildrenOfAndWalk(t *testing.T) {
	root := NewComponent("VCALENDAR")
	event := NewComponent("VEVENT")
	alarm := NewComponent("VALARM")
	event.AddChild(alarm)
	root.AddChild(event)

	assert.Len(t, root.ChildrenOf("VEVENT"), 1)

	var kinds []string
	root.Walk(func(c *Component) { kinds = append(kinds, c.Kind) })
	assert.Equal(t, []string{"VCALENDAR", "VEVENT", "VALARM"}, kinds)
}
