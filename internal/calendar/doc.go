// Package calendar assembles extracted events into venue buckets and
// serializes each bucket as an iCalendar document.
//
// Assembly backfills missing locations from the owning source, strips the
// placeholder sentinel once real events exist, and orders each bucket by
// start time. Serialization is deterministic: the same event set always
// produces byte-identical output apart from the DTSTAMP lines, which carry
// the generation timestamp supplied by the caller.
package calendar
