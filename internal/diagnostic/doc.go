// Package diagnostic provides structured warnings, errors, and
// explanations collected while converting schemas.
//
// Key capabilities:
//   - Lossy conversion reports (width, signedness, unit, timezone, ...)
//   - Placeholder identifier notices
//   - Per-field paths and type pairs for each report
package diagnostic
