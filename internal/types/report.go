package types

/////////////////////////////////////////////////////////////////////////////
// TOKEN STATS
/////////////////////////////////////////////////////////////////////////////

// TokenStats carries counters accumulated while tokenizing the input.
type TokenStats struct {
	TotalTokens   int `json:"total_tokens"`
	SkippedTokens int `json:"skipped_tokens"`
}

/////////////////////////////////////////////////////////////////////////////
// REPORT
/////////////////////////////////////////////////////////////////////////////

// Group is one frequency entry of a byCount report.
type Group struct {
	Token   string `json:"token"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// Report is the processed result of one run. Sorted is filled in natural
// mode, Groups in byCount mode; tokens are kept in their output spelling.
type Report struct {
	Kind   DataKind   `json:"data_type"`
	Mode   SortMode   `json:"sorting_type"`
	Total  int        `json:"total"`
	Sorted []string   `json:"sorted,omitempty"`
	Groups []Group    `json:"groups,omitempty"`
	Stats  TokenStats `json:"stats"`
}
