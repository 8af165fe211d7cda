// Package output provides formatters for reporting rewrite results.
//
// Supported output formats:
//   - Console: Human-readable colored terminal output
//   - JSON: Machine-readable JSON report of every change
package output
