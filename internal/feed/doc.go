// Package feed defines the static source configuration for stadium calendars.
//
// A Source describes one public web page that publishes event listings for a
// venue. Several sources can share a venue tag; their events are merged into a
// single calendar. The default configuration covers Wembley Stadium, the
// Emirates Stadium and the London Stadium.
package feed
