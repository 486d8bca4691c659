// Package extract recovers event records from fetched pages.
//
// Two interchangeable strategies cover the two page shapes we scrape:
// JSONLD reads embedded schema.org metadata blocks, and Fixtures scans the
// rendered text of fixtur.es team pages, which expose no structured data.
// ForSource picks the strategy from the source URL. Both strategies are
// purely best-effort: malformed blocks and unparseable candidates are
// skipped silently rather than failing the page.
package extract
