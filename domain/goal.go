package domain

// Goal is a user-defined objective broken down into steps.
type Goal struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

// Step is one unit of progress toward a goal.
type Step struct {
	ID          int64  `json:"id"`
	GoalID      int64  `json:"goal_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}
