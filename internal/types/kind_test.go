package types

import (
	"encoding/json"
	"testing"
)

func TestParseDataKind(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected DataKind
	}{
		{"Long", "long", KindLong},
		{"LongUpper", "LONG", KindLong},
		{"LongMixed", "Long", KindLong},
		{"Word", "word", KindWord},
		{"WordUpper", "WORD", KindWord},
		{"Line", "line", KindLine},
		{"LineMixed", "LiNe", KindLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ParseDataKind(tt.input)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if kind != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, kind)
			}
		})
	}
}

func TestParseDataKind_Invalid(t *testing.T) {
	_, err := ParseDataKind("integer")
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}

	want := "Invalid data type provided: integer"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

func TestDataKindNoun(t *testing.T) {
	tests := []struct {
		name     string
		kind     DataKind
		expected string
	}{
		{"Long", KindLong, "numbers"},
		{"Word", KindWord, "words"},
		{"Line", KindLine, "lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.Noun(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestDataKindJSON(t *testing.T) {
	data, err := json.Marshal(KindWord)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(data) != `"word"` {
		t.Errorf("Expected %q, got %q", `"word"`, data)
	}

	var kind DataKind
	if err := json.Unmarshal([]byte(`"line"`), &kind); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if kind != KindLine {
		t.Errorf("Expected KindLine, got %v", kind)
	}
}
