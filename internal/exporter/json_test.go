package exporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"sortstat/internal/types"
)

func TestWriteJSON(t *testing.T) {
	report := types.Report{
		Kind:  types.KindWord,
		Mode:  types.SortByCount,
		Total: 3,
		Groups: []types.Group{
			{Token: "b", Count: 1, Percent: 33},
			{Token: "a", Count: 2, Percent: 67},
		},
		Stats: types.TokenStats{TotalTokens: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, report))

	want := `{
		"data_type": "word",
		"sorting_type": "byCount",
		"total": 3,
		"groups": [
			{"token": "b", "count": 1, "percent": 33},
			{"token": "a", "count": 2, "percent": 67}
		],
		"stats": {"total_tokens": 3, "skipped_tokens": 0}
	}`
	require.JSONEq(t, want, buf.String())
}

func TestWriteJSON_NaturalOmitsGroups(t *testing.T) {
	report := types.Report{
		Kind:   types.KindLong,
		Mode:   types.SortNatural,
		Total:  2,
		Sorted: []string{"1", "2"},
		Stats:  types.TokenStats{TotalTokens: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, report))

	require.NotContains(t, buf.String(), "groups")
	require.JSONEq(t, `{
		"data_type": "long",
		"sorting_type": "natural",
		"total": 2,
		"sorted": ["1", "2"],
		"stats": {"total_tokens": 2, "skipped_tokens": 0}
	}`, buf.String())
}
