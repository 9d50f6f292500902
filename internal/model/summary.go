package model

// MonthlySummary holds the accumulated income and expense for one calendar
// month. Derived data; recomputed on demand, never persisted.
type MonthlySummary struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Category Category `json:"category"`
	Total    float64  `json:"total"`
}

// Insight is a structured natural-language summary produced by a remote
// text-generation service. Session-only; never persisted.
type Insight struct {
	Analysis    string   `json:"analysis"`
	Suggestions []string `json:"suggestions"`
	SavingTips  string   `json:"savingTips"`
}
