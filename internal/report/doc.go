// Package report renders lookup results.
//
// This package contains writers for different output formats:
//   - TextWriter: the plain text format printed by default
//   - JSONWriter: structured JSON output for scripting
//   - MarkdownWriter: GitHub Flavored Markdown for notes and wikis
//
// Results are computed by the dex package; writers only format them.
// Writers implement the Writer interface and are selected by the
// --json and --markdown flags.
package report
