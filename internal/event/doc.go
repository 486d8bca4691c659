// Package event provides the calendar event model for stadium calendars.
//
// The event package handles event representation, identification and title
// classification. Each event is assigned a deterministic SHA1-based UID
// generated from its title, start instant, location and URL, so an identical
// event always serializes with the same identifier across runs.
package event
