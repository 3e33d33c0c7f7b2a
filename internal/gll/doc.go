// Package gll extracts NMEA GLL position sentences from a receiver capture
// file and converts their degrees-minutes coordinates to decimal degrees.
//
// It is intentionally small:
//   - Full rescan of the capture file on every call; the file is assumed to
//     stay small (a live PuTTY session log), so no tail-seek bookkeeping.
//   - Fixed-width field conversion matching the receiver's DDMM.mmmm /
//     DDDMM.mmmm layout.
//   - No checksum validation on the primary path; go-nmea is consulted only
//     as best-effort enrichment when a line carries a checksum.
package gll
