package models

// Breakdown accumulates call count and credit totals for one bucket of a
// categorical grouping.
type Breakdown struct {
	Count   int   `json:"count"`
	Credits int64 `json:"credits"`
}

// TimeRange holds the formatted bounds of the observed records.
type TimeRange struct {
	EarliestCall string `json:"earliest_call,omitempty"`
	LatestCall   string `json:"latest_call,omitempty"`
}

// Summary is the derived aggregate over a record sequence. It is recomputed
// on every run and carries no persisted identity.
type Summary struct {
	TotalAPICalls    int                  `json:"total_api_calls"`
	TotalCreditsUsed int64                `json:"total_credits_used"`
	ByType           map[string]Breakdown `json:"breakdown_by_type"`
	ByVoice          map[string]Breakdown `json:"breakdown_by_voice"`
	BySource         map[string]Breakdown `json:"breakdown_by_source"`
	ByDay            map[string]Breakdown `json:"breakdown_by_day"`
	TimeRange        TimeRange            `json:"time_range"`
	SkippedRecords   int                  `json:"skipped_records,omitempty"`
}

// NewSummary returns a zero-valued summary with initialized maps.
func NewSummary() Summary {
	return Summary{
		ByType:   make(map[string]Breakdown),
		ByVoice:  make(map[string]Breakdown),
		BySource: make(map[string]Breakdown),
		ByDay:    make(map[string]Breakdown),
	}
}

// DailyUsage is one day's archived totals, read back from the local
// archive database.
type DailyUsage struct {
	Day     string `json:"day"`
	Calls   int    `json:"calls"`
	Credits int64  `json:"credits"`
}
