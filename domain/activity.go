package domain

// Activity is a catalog entry the daily scheduler forks into per-user calls.
type Activity struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
