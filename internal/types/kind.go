package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DataKind selects how raw input is split into tokens.
type DataKind int

const (
	KindLong DataKind = iota
	KindWord
	KindLine
)

// ParseDataKind resolves a -dataType argument. Matching is case-insensitive,
// as in the legacy tool. The error text is the user-facing message.
func ParseDataKind(s string) (DataKind, error) {
	switch strings.ToUpper(s) {
	case "LONG":
		return KindLong, nil
	case "WORD":
		return KindWord, nil
	case "LINE":
		return KindLine, nil
	default:
		return KindLong, fmt.Errorf("Invalid data type provided: %s", s)
	}
}

func (k DataKind) String() string {
	switch k {
	case KindLong:
		return "long"
	case KindWord:
		return "word"
	case KindLine:
		return "line"
	default:
		return fmt.Sprintf("DataKind(%d)", k)
	}
}

// Noun is the plural label used on the report's total line.
func (k DataKind) Noun() string {
	switch k {
	case KindLong:
		return "numbers"
	case KindWord:
		return "words"
	case KindLine:
		return "lines"
	default:
		return "tokens"
	}
}

func (k DataKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *DataKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	kind, err := ParseDataKind(s)
	if err != nil {
		return fmt.Errorf("unknown DataKind: %s", s)
	}

	*k = kind
	return nil
}
