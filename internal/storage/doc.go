// Package storage writes rendered calendar documents to disk.
//
// One .ics file is written per venue into the output directory, which is
// created on first use. A separate health-marker file can record the time
// of the last completed run for external monitoring. Write failures are the
// only fatal errors in the whole pipeline.
package storage
