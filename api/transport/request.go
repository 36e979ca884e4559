package transport

type SendChallengeRequest struct {
	SenderID    int64   `json:"sender_id"`
	ReceiverIDs []int64 `json:"receiver_ids"`
	CallID      int64   `json:"call_id"`
	CallName    string  `json:"call_name"`
	Description string  `json:"description"`
}

type RespondChallengeRequest struct {
	ChallengeID int64 `json:"challenge_id"`
	Accept      bool  `json:"accept"`
}

type CallStatusRequest struct {
	Status string `json:"status"`
}

type GoalRequest struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type StepRequest struct {
	ID          int64  `json:"id"`
	GoalID      int64  `json:"goal_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type AuthLoginRequest struct {
	Username string `json:"username"`
	TTL      int    `json:"ttl_seconds"`
}

type RefreshRequest struct {
	SessionID string `json:"session_id"`
	TTL       int    `json:"ttl_seconds"`
}
