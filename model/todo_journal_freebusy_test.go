// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvardcal/icalgo"
	"github.com/halvardcal/icalgo/model"
)

func mustParseComponent(t *testing.T, kind, body string) *icalgo.Component {
	t.Helper()
	input := "BEGIN:" + kind + "\r\n" + body + "END:" + kind + "\r\n"
	p := icalgo.NewParser(icalgo.ParseOptions{Strict: false})
	c, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	return c
}

func TestTodoFromComponent(t *testing.T) {
	c := mustParseComponent(t, "VTODO",
		"UID:todo-1@example.com\r\n"+
			"DTSTAMP:20240101T000000Z\r\n"+
			"SUMMARY:Buy milk\r\n"+
			"STATUS:NEEDS-ACTION\r\n"+
			"PRIORITY:1\r\n"+
			"PERCENT-COMPLETE:50\r\n"+
			"DUE:20240102T000000Z\r\n"+
			"CATEGORIES:ERRANDS\r\n"+
			"GEO:37.386013;-122.082932\r\n")

	todo, err := model.TodoFromComponent(c)
	require.NoError(t, err)

	assert.Equal(t, "todo-1@example.com", todo.UID)
	assert.Equal(t, "Buy milk", todo.Summary)
	assert.Equal(t, model.TodoStatusNeedsAction, todo.Status)
	assert.Equal(t, 1, todo.Priority)
	assert.Equal(t, 50, todo.PercentComplete)
	require.NotNil(t, todo.Due)
	require.NotNil(t, todo.Geo)
	assert.InDelta(t, 37.386013, todo.Geo.Latitude, 1e-6)
	assert.InDelta(t, -122.082932, todo.Geo.Longitude, 1e-6)
	assert.Equal(t, []string{"ERRANDS"}, todo.Categories)
}

func TestJournalFromComponent(t *testing.T) {
	c := mustParseComponent(t, "VJOURNAL",
		"UID:journal-1@example.com\r\n"+
			"DTSTAMP:20240101T000000Z\r\n"+
			"SUMMARY:Status update\r\n"+
			"CLASS:PRIVATE\r\n"+
			"STATUS:FINAL\r\n"+
			"DESCRIPTION:All quiet\r\n")

	j, err := model.JournalFromComponent(c)
	require.NoError(t, err)

	assert.Equal(t, "journal-1@example.com", j.UID)
	assert.Equal(t, "Status update", j.Summary)
	assert.Equal(t, model.JournalClassPrivate, j.Class)
	assert.Equal(t, model.JournalStatusFinal, j.Status)
	assert.Equal(t, []string{"All quiet"}, j.Description)
}

func TestFreeBusyFromComponent(t *testing.T) {
	c := mustParseComponent(t, "VFREEBUSY",
		"UID:fb-1@example.com\r\n"+
			"DTSTAMP:20240101T000000Z\r\n"+
			"DTSTART:20240101T000000Z\r\n"+
			"DTEND:20240102T000000Z\r\n"+
			"FREEBUSY;FBTYPE=BUSY:20240101T100000Z/PT1H,20240101T140000Z/20240101T150000Z\r\n")

	fb, err := model.FreeBusyFromComponent(c)
	require.NoError(t, err)

	assert.Equal(t, "fb-1@example.com", fb.UID)
	require.Len(t, fb.FreeBusy, 2)
	assert.Equal(t, model.FreeBusyStatusBusy, fb.FreeBusy[0].Status)
	assert.Equal(t, 10, fb.FreeBusy[0].Start.Hour)
	assert.Equal(t, 11, fb.FreeBusy[0].End.Hour)
	assert.Equal(t, 15, fb.FreeBusy[1].End.Hour)
}

func TestExtensionViews(t *testing.T) {
	c := mustParseComponent(t, "VCALENDAR",
		"VERSION:2.0\r\n"+
			"PRODID:-//X//Y//EN\r\n"+
			"NAME:Team Calendar\r\n"+
			"COLOR:turquoise\r\n"+
			"IMAGE;FMTTYPE=image/png;DISPLAY=BADGE:https://example.com/logo.png\r\n"+
			"CONFERENCE;FEATURE=AUDIO;LABEL=Dial-in:tel:+1-555-0100\r\n"+
			"RELATED-TO;RELTYPE=SIBLING:other-uid@example.com\r\n"+
			"LINK;REL=describedby:https://example.com/info\r\n")

	name, ok := model.CalendarName(c)
	require.True(t, ok)
	assert.Equal(t, "Team Calendar", name)

	color, ok := model.CalendarColor(c)
	require.True(t, ok)
	assert.Equal(t, "turquoise", color)

	images := model.Images(c)
	require.Len(t, images, 1)
	assert.Equal(t, "image/png", images[0].FmtType)
	assert.Equal(t, "BADGE", images[0].Display)

	confs := model.Conferences(c)
	require.Len(t, confs, 1)
	assert.Equal(t, "AUDIO", confs[0].Feature)
	assert.Equal(t, "Dial-in", confs[0].Label)

	rels := model.RelatedTos(c)
	require.Len(t, rels, 1)
	assert.Equal(t, "other-uid@example.com", rels[0].UID)
	assert.Equal(t, "SIBLING", rels[0].RelType)

	links := model.Links(c)
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/info", links[0].URI)
	assert.Equal(t, "describedby", links[0].Rel)
}
