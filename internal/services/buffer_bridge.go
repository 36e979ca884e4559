package services

import (
	"context"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/internal/infrastructure/buffer"
)

// BufferBridge adapts the buffer processor to the usecase.OperationBuffer
// port.
type BufferBridge struct {
	processor *BufferProcessor
}

func NewBufferBridge(processor *BufferProcessor) *BufferBridge {
	return &BufferBridge{processor: processor}
}

func (b *BufferBridge) BufferCallStatus(ctx context.Context, callID int64, status string) error {
	if b.processor == nil || callID <= 0 {
		return domain.ErrInvalidPayload
	}
	item := buffer.Item{
		Entity:    buffer.EntityCall,
		Operation: buffer.OperationStatusUpdate,
		CallID:    callID,
		Status:    status,
		Priority:  3,
	}
	return b.processor.BufferOperation(ctx, item)
}
