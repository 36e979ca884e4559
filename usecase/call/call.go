package call

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/repository"
	"github.com/fitcall/backend/usecase"
)

type UseCase struct {
	calls  repository.CallRepository
	buffer usecase.OperationBuffer
	logger *zap.Logger
}

func New(calls repository.CallRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		calls:  calls,
		buffer: buffer,
		logger: logger,
	}
}

func (uc *UseCase) ListCalls(ctx context.Context, filter repository.CallFilter) ([]domain.Call, error) {
	return uc.calls.List(ctx, filter)
}

func (uc *UseCase) GetCall(ctx context.Context, id int64) (*domain.Call, error) {
	return uc.calls.GetByID(ctx, id)
}

// UpdateStatus moves a call to a new status. When the primary store is down
// the update is buffered and replayed later; a missing call is still an
// immediate error.
func (uc *UseCase) UpdateStatus(ctx context.Context, id int64, status string) error {
	if id <= 0 {
		return domain.ErrInvalidPayload
	}
	if !domain.ValidCallStatus(status) {
		return domain.NewError(domain.ErrCodeInvalid, "unknown call status")
	}

	if err := uc.calls.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrCallNotFound) {
			return err
		}
		if uc.shouldBuffer(ctx, id, status) {
			return nil
		}
		return err
	}
	return nil
}

func (uc *UseCase) shouldBuffer(ctx context.Context, id int64, status string) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferCallStatus(ctx, id, status); err != nil {
		uc.logger.Error("failed to buffer call status update", zap.Int64("call_id", id), zap.Error(err))
		return false
	}
	uc.logger.Warn("call status update buffered", zap.Int64("call_id", id), zap.String("status", status))
	return true
}
