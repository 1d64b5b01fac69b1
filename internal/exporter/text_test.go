package exporter

import (
	"bytes"
	"testing"

	"sortstat/internal/types"
)

func TestWriteText_NaturalLongs(t *testing.T) {
	report := types.Report{
		Kind:   types.KindLong,
		Mode:   types.SortNatural,
		Total:  4,
		Sorted: []string{"1", "1", "2", "3"},
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, report); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := "Total numbers: 4.\nSorted data: 1 1 2 3 \n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestWriteText_ByCountWords(t *testing.T) {
	report := types.Report{
		Kind:  types.KindWord,
		Mode:  types.SortByCount,
		Total: 3,
		Groups: []types.Group{
			{Token: "b", Count: 1, Percent: 33},
			{Token: "a", Count: 2, Percent: 67},
		},
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, report); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// The report ends with an extra blank line, kept for output
	// compatibility.
	want := "Total words: 3.\nb: 1 time(s), 33%\na: 2 time(s), 67%\n\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestWriteText_NaturalLinesStayOnOneRow(t *testing.T) {
	report := types.Report{
		Kind:   types.KindLine,
		Mode:   types.SortNatural,
		Total:  2,
		Sorted: []string{"a long line", "the shortest"},
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, report); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := "Total lines: 2.\nSorted data: a long line the shortest \n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestWriteText_Empty(t *testing.T) {
	tests := []struct {
		name     string
		report   types.Report
		expected string
	}{
		{
			name:     "Natural",
			report:   types.Report{Kind: types.KindLong, Mode: types.SortNatural},
			expected: "Total numbers: 0.\nSorted data: \n",
		},
		{
			name:     "ByCount",
			report:   types.Report{Kind: types.KindLong, Mode: types.SortByCount},
			expected: "Total numbers: 0.\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteText(&buf, tt.report); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
}
