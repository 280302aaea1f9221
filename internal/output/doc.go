// Package output formats staged-scan reports for display or machine
// consumption.
//
// Three formats are supported:
//   - text: human-readable terminal output, colored when enabled (default)
//   - json: the full structured report
//   - sarif: SARIF v2.1.0 for upload to code scanning tools
//
// Use [GetWriter] to obtain a [Writer] for a format string, or
// [WriteReport] to also select the destination.
package output
