package domain

// Call statuses. A call is terminal once completed or failed.
const (
	CallStatusPending   = "pending"
	CallStatusAccepted  = "accepted"
	CallStatusRejected  = "rejected"
	CallStatusCompleted = "completed"
	CallStatusFailed    = "failed"
)

// Call is one instance of a periodic activity assigned to a user.
// CallDate is a free-form date string; records with unparsable dates are
// silently excluded from time-bucketed statistics.
type Call struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	CallName    string `json:"call_name"`
	Description string `json:"description,omitempty"`
	CallDate    string `json:"call_date"`
	Status      string `json:"status"`
}

func (c *Call) IsCompleted() bool {
	return c != nil && c.Status == CallStatusCompleted
}

// ValidCallStatus reports whether s is one of the recognized call statuses.
func ValidCallStatus(s string) bool {
	switch s {
	case CallStatusPending, CallStatusAccepted, CallStatusRejected, CallStatusCompleted, CallStatusFailed:
		return true
	}
	return false
}
