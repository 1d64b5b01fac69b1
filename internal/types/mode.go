package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SortMode selects between plain natural ordering and frequency grouping.
type SortMode int

const (
	SortNatural SortMode = iota
	SortByCount
)

// ParseSortMode resolves a -sortingType argument. The legacy tool rewrites
// the camel-case spelling before matching, so "byCount" and any case of
// "by_count" are accepted while "bycount" is not. The error text is the
// user-facing message.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToUpper(strings.ReplaceAll(s, "byCount", "BY_COUNT")) {
	case "NATURAL":
		return SortNatural, nil
	case "BY_COUNT":
		return SortByCount, nil
	default:
		return SortNatural, fmt.Errorf("Invalid sorting type provided: %s", s)
	}
}

func (m SortMode) String() string {
	switch m {
	case SortNatural:
		return "natural"
	case SortByCount:
		return "byCount"
	default:
		return fmt.Sprintf("SortMode(%d)", m)
	}
}

func (m SortMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *SortMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	mode, err := ParseSortMode(s)
	if err != nil {
		return fmt.Errorf("unknown SortMode: %s", s)
	}

	*m = mode
	return nil
}
