package usecase

import "context"

// OperationBuffer abstracts the offline write buffer so use cases stay
// storage-agnostic. Buffered operations are replayed once the primary store
// is reachable again.
type OperationBuffer interface {
	BufferCallStatus(ctx context.Context, callID int64, status string) error
}
