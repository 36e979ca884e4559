package domain

import "time"

// User represents an account in the platform. Birthdate is kept as the raw
// string the client supplied; age-based stats tolerate unparsable values.
type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name,omitempty"`
	Birthdate   string    `json:"birthdate,omitempty"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *User) IsActive() bool {
	return u != nil && u.Status == "active"
}
