// Package importer splits raw UTF-8 input into the tokens the processor
// sorts and counts.
package importer

import (
	"bufio"
	"bytes"
	"strconv"

	"sortstat/internal/types"
)

// newScanner returns a scanner over data whose buffer is large enough to
// hold any token the input can contain.
func newScanner(data []byte, split bufio.SplitFunc) *bufio.Scanner {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(nil, len(data)+1)
	scanner.Split(split)
	return scanner
}

// Longs extracts base-10 64-bit integers from whitespace-separated input.
// Runs that do not parse as a long (including out-of-range values) are
// skipped and counted in the stats.
func Longs(data []byte) ([]int64, types.TokenStats) {
	var tokens []int64
	var stats types.TokenStats

	scanner := newScanner(data, bufio.ScanWords)
	for scanner.Scan() {
		stats.TotalTokens++

		value, err := strconv.ParseInt(scanner.Text(), 10, 64)
		if err != nil {
			stats.SkippedTokens++
			continue
		}

		tokens = append(tokens, value)
	}

	return tokens, stats
}

// Words extracts whitespace-separated runs from input.
func Words(data []byte) ([]string, types.TokenStats) {
	var tokens []string
	var stats types.TokenStats

	scanner := newScanner(data, bufio.ScanWords)
	for scanner.Scan() {
		stats.TotalTokens++
		tokens = append(tokens, scanner.Text())
	}

	return tokens, stats
}

// Lines splits input on line breaks. End-of-line markers are dropped,
// empty lines are kept as tokens.
func Lines(data []byte) ([]string, types.TokenStats) {
	var tokens []string
	var stats types.TokenStats

	scanner := newScanner(data, bufio.ScanLines)
	for scanner.Scan() {
		stats.TotalTokens++
		tokens = append(tokens, scanner.Text())
	}

	return tokens, stats
}
