// Package cli implements the command-line interface for stadium-calendars.
//
// The cli package provides the Cobra-based CLI that runs one calendar
// build: it wires the default source configuration, the output sink and
// the pipeline together, and optionally writes a health-marker file when
// the build completes. Scheduling repeated runs is left to cron or CI.
package cli
