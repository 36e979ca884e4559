package domain

import "time"

// Challenge statuses. pending -> accepted | rejected, both terminal.
const (
	ChallengeStatusPending  = "pending"
	ChallengeStatusAccepted = "accepted"
	ChallengeStatusRejected = "rejected"
)

// Challenge is a directed dare: the sender asks the receiver to repeat an
// existing call. At most one pending challenge may exist per
// (sender, receiver, call) triple.
type Challenge struct {
	ID          int64      `json:"id"`
	SenderID    int64      `json:"sender_id"`
	ReceiverID  int64      `json:"receiver_id"`
	CallID      int64      `json:"call_id"`
	Status      string     `json:"status"`
	SentAt      time.Time  `json:"sent_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

func (c *Challenge) IsPending() bool {
	return c != nil && c.Status == ChallengeStatusPending
}

// ChallengeNotification is the polled view of a pending challenge, enriched
// with sender and call details for display.
type ChallengeNotification struct {
	ChallengeID int64     `json:"challenge_id"`
	SenderID    int64     `json:"sender_id"`
	ReceiverID  int64     `json:"receiver_id"`
	SenderName  string    `json:"sender_name"`
	CallName    string    `json:"call_name"`
	Description string    `json:"description,omitempty"`
	SentAt      time.Time `json:"sent_at"`
}
