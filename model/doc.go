// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package model is a typed read layer over the generic component tree
// produced by the root icalgo package. It does not parse iCalendar text
// itself; instead each *FromComponent function walks a *icalgo.Component
// and its children to build the corresponding Go struct (Calendar, Event,
// Todo, Journal, FreeBusy, TimeZone, Alarm), the same way RFC 5545 concepts
// are modeled without subclassing the component tree per RFC.
package model
