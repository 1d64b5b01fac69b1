// Package sortstat provides a public API for sorting and counting tokens.
//
// This package provides functions to:
//   - Convert between character encodings (CP437, CP850, ISO-8859-1, Windows-1252, UTF-8)
//   - Split raw input into long, word or line tokens
//   - Build natural or frequency reports
//   - Render reports as plain text or JSON
//
// Example usage:
//
//	import "sortstat/pkg/sortstat"
//
//	data, _ := os.ReadFile("numbers.txt")
//	report := sortstat.Build(sortstat.KindLong, sortstat.SortByCount, data)
//	_ = sortstat.WriteText(os.Stdout, report)
package sortstat

import (
	"io"

	"sortstat/internal/encoding"
	"sortstat/internal/exporter"
	"sortstat/internal/importer"
	"sortstat/internal/processor"
	"sortstat/internal/types"
)

// Type aliases for public API
type (
	// DataKind selects how raw input is split into tokens
	DataKind = types.DataKind

	// SortMode selects between natural ordering and frequency grouping
	SortMode = types.SortMode

	// Config is a resolved run configuration
	Config = types.Config

	// Report is the processed result of one run
	Report = types.Report

	// Group is one frequency entry of a byCount report
	Group = types.Group

	// TokenStats contains counters accumulated while tokenizing
	TokenStats = types.TokenStats
)

// Data kind constants
const (
	KindLong = types.KindLong
	KindWord = types.KindWord
	KindLine = types.KindLine
)

// Sort mode constants
const (
	SortNatural = types.SortNatural
	SortByCount = types.SortByCount
)

// ParseDataKind resolves a data type name ("long", "word", "line").
func ParseDataKind(s string) (DataKind, error) {
	return types.ParseDataKind(s)
}

// ParseSortMode resolves a sorting type name ("natural", "byCount").
func ParseSortMode(s string) (SortMode, error) {
	return types.ParseSortMode(s)
}

// ToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1", "windows-1252"
func ToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	return encoding.ToUTF8(data, sourceEncoding)
}

// FromUTF8 converts UTF-8 data to the target encoding.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1", "windows-1252"
func FromUTF8(data []byte, targetEncoding string) ([]byte, error) {
	return encoding.FromUTF8(data, targetEncoding)
}

// Longs extracts base-10 64-bit integers from whitespace-separated input.
// Runs that do not parse as a long are skipped and counted in the stats.
func Longs(data []byte) ([]int64, TokenStats) {
	return importer.Longs(data)
}

// Words extracts whitespace-separated runs from input.
func Words(data []byte) ([]string, TokenStats) {
	return importer.Words(data)
}

// Lines splits input on line breaks, keeping empty lines as tokens.
func Lines(data []byte) ([]string, TokenStats) {
	return importer.Lines(data)
}

// Build tokenizes UTF-8 data according to kind and assembles the report.
func Build(kind DataKind, mode SortMode, data []byte) Report {
	return processor.Build(kind, mode, data)
}

// Process reads everything from r and writes the rendered report to w,
// honoring the configured data type, sorting type and encoding.
func Process(cfg Config, r io.Reader, w io.Writer) error {
	return processor.Process(cfg, r, w)
}

// Run executes one configured run end to end, resolving input and output
// files from cfg. Empty paths mean stdin and stdout.
func Run(cfg Config) error {
	return processor.Run(cfg)
}

// WriteText renders a report in the tool's plain text format.
func WriteText(w io.Writer, report Report) error {
	return exporter.WriteText(w, report)
}

// WriteJSON renders a report as indented JSON.
func WriteJSON(w io.Writer, report Report) error {
	return exporter.WriteJSON(w, report)
}
