// Package processor builds sorted and frequency reports from raw input.
package processor

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"

	"sortstat/internal/importer"
	"sortstat/internal/types"
)

// Build tokenizes UTF-8 data according to kind and assembles the report.
func Build(kind types.DataKind, mode types.SortMode, data []byte) types.Report {
	switch kind {
	case types.KindWord:
		tokens, stats := importer.Words(data)
		return buildReport(kind, mode, tokens, stats)
	case types.KindLine:
		tokens, stats := importer.Lines(data)
		return buildReport(kind, mode, tokens, stats)
	default:
		tokens, stats := importer.Longs(data)
		return buildReport(kind, mode, tokens, stats)
	}
}

// buildReport assembles a report from tokens of one ordered type.
func buildReport[T cmp.Ordered](kind types.DataKind, mode types.SortMode, tokens []T, stats types.TokenStats) types.Report {
	report := types.Report{
		Kind:  kind,
		Mode:  mode,
		Total: len(tokens),
		Stats: stats,
	}

	if mode == types.SortByCount {
		report.Groups = groupByCount(tokens)
	} else {
		report.Sorted = sortNatural(tokens)
	}

	return report
}

// sortNatural returns every token in ascending order, duplicates kept.
func sortNatural[T cmp.Ordered](tokens []T) []string {
	sorted := slices.Clone(tokens)
	slices.Sort(sorted)

	out := make([]string, len(sorted))
	for i, token := range sorted {
		out[i] = formatToken(token)
	}

	return out
}

// groupByCount returns one entry per distinct token, ordered by ascending
// count and then by ascending token.
func groupByCount[T cmp.Ordered](tokens []T) []types.Group {
	counts := make(map[T]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}

	distinct := make([]T, 0, len(counts))
	for token := range counts {
		distinct = append(distinct, token)
	}
	slices.SortFunc(distinct, func(a, b T) int {
		if c := cmp.Compare(counts[a], counts[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	groups := make([]types.Group, len(distinct))
	for i, token := range distinct {
		groups[i] = types.Group{
			Token:   formatToken(token),
			Count:   counts[token],
			Percent: percent(counts[token], len(tokens)),
		}
	}

	return groups
}

// percent computes count*100/total rounded half up, 0 when total is zero.
// Rounding half up matches the historical output, Sprintf("%.0f") does not.
func percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) * 100.0 / float64(total)))
}

// formatToken renders a token in its output spelling.
func formatToken[T cmp.Ordered](token T) string {
	switch t := any(token).(type) {
	case int64:
		return strconv.FormatInt(t, 10)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
