package buffer

import (
	"time"

	"github.com/google/uuid"
)

const (
	EntityCall = "call"

	OperationStatusUpdate = "status_update"
)

// Item represents an operation that should be retried when the primary store
// is unavailable. Today only call status updates are buffered; challenge and
// stats operations are strict and never go through the buffer.
type Item struct {
	ID        string    `json:"id"`
	Entity    string    `json:"entity"`
	Operation string    `json:"operation"`
	CallID    int64     `json:"call_id"`
	Status    string    `json:"status"`
	Priority  int       `json:"priority"`
	Retries   int       `json:"retries"`
	Timestamp time.Time `json:"timestamp"`

	bucketKey []byte
}

func (i *Item) normalize() {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now()
	}
	if i.Priority <= 0 {
		i.Priority = 5
	}
}
