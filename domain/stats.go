package domain

// Stats view objects. These are recomputed on every query and never persisted,
// so they always reflect the store state at read time.

// CategoryStats is the per-category slice of a user's completed calls within
// the current year. Monthly is further restricted to the current month.
type CategoryStats struct {
	Category         string `json:"category"`
	MonthlyCompleted int    `json:"monthly_completed"`
	YearlyCompleted  int    `json:"yearly_completed"`
}

// UserStats summarizes one user's completed calls.
type UserStats struct {
	Username         string          `json:"username"`
	MonthlyCompleted int             `json:"monthly_completed"`
	YearlyCompleted  int             `json:"yearly_completed"`
	CategoriesStats  []CategoryStats `json:"categories_stats"`
}

// LeaderboardCategory is the yearly completed count for one category of a
// leaderboard entry.
type LeaderboardCategory struct {
	Category       string `json:"category"`
	CompletedCalls int    `json:"completed_calls"`
}

// LeaderboardEntry is one of the top users ranked by total completed calls.
type LeaderboardEntry struct {
	Username       string                `json:"username"`
	CompletedCalls int                   `json:"completed_calls"`
	Categories     []LeaderboardCategory `json:"categories"`
}

// GlobalStats carries the leaderboard plus system-wide completion totals.
// The totals span every user, not just the displayed entries.
type GlobalStats struct {
	TotalMonthlyCompleted int                `json:"total_monthly_completed"`
	TotalYearlyCompleted  int                `json:"total_yearly_completed"`
	TopUsers              []LeaderboardEntry `json:"top_users"`
}

// ComparisonStats contrasts a user's current-month completions with the
// average of their 5-year age cohort and with the global average.
type ComparisonStats struct {
	Username               string  `json:"username"`
	UserMonthlyCompleted   int     `json:"user_monthly_completed"`
	AgeGroupStart          int     `json:"age_group_start"`
	AgeGroupEnd            int     `json:"age_group_end"`
	AgeGroupAverageMonthly float64 `json:"age_group_average_monthly"`
	AllAverageMonthly      float64 `json:"all_average_monthly"`
}
