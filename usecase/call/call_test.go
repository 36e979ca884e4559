package call

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/internal/testutil"
	"github.com/fitcall/backend/repository"
)

type bufferFunc func(ctx context.Context, callID int64, status string) error

func (f bufferFunc) BufferCallStatus(ctx context.Context, callID int64, status string) error {
	return f(ctx, callID, status)
}

func TestUpdateStatus(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		var gotID int64
		var gotStatus string
		calls := &testutil.CallRepo{
			UpdateStatusFn: func(ctx context.Context, id int64, status string) error {
				gotID, gotStatus = id, status
				return nil
			},
		}
		uc := New(calls, nil, nil)

		require.NoError(t, uc.UpdateStatus(context.Background(), 7, domain.CallStatusCompleted))
		assert.Equal(t, int64(7), gotID)
		assert.Equal(t, domain.CallStatusCompleted, gotStatus)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		uc := New(&testutil.CallRepo{}, nil, nil)
		err := uc.UpdateStatus(context.Background(), 7, "done")
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	})

	t.Run("rejects non-positive id", func(t *testing.T) {
		uc := New(&testutil.CallRepo{}, nil, nil)
		err := uc.UpdateStatus(context.Background(), 0, domain.CallStatusCompleted)
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})

	t.Run("missing call is not buffered", func(t *testing.T) {
		calls := &testutil.CallRepo{
			UpdateStatusFn: func(ctx context.Context, id int64, status string) error {
				// Wrapped sentinel must still be recognized as NOT_FOUND.
				return fmt.Errorf("update calls: %w", domain.ErrCallNotFound)
			},
		}
		buffered := false
		buf := bufferFunc(func(ctx context.Context, callID int64, status string) error {
			buffered = true
			return nil
		})
		uc := New(calls, buf, nil)

		err := uc.UpdateStatus(context.Background(), 7, domain.CallStatusCompleted)
		assert.ErrorIs(t, err, domain.ErrCallNotFound)
		assert.False(t, buffered)
	})

	t.Run("store failure falls back to buffer", func(t *testing.T) {
		calls := &testutil.CallRepo{
			UpdateStatusFn: func(ctx context.Context, id int64, status string) error {
				return errors.New("connection refused")
			},
		}
		var bufferedID int64
		buf := bufferFunc(func(ctx context.Context, callID int64, status string) error {
			bufferedID = callID
			return nil
		})
		uc := New(calls, buf, nil)

		require.NoError(t, uc.UpdateStatus(context.Background(), 7, domain.CallStatusFailed))
		assert.Equal(t, int64(7), bufferedID)
	})

	t.Run("store failure without buffer surfaces error", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		calls := &testutil.CallRepo{
			UpdateStatusFn: func(ctx context.Context, id int64, status string) error {
				return storeErr
			},
		}
		uc := New(calls, nil, nil)

		err := uc.UpdateStatus(context.Background(), 7, domain.CallStatusFailed)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestListCalls(t *testing.T) {
	want := []domain.Call{{ID: 1, CallName: "running"}}
	calls := &testutil.CallRepo{
		ListFn: func(ctx context.Context, filter repository.CallFilter) ([]domain.Call, error) {
			assert.Equal(t, int64(4), filter.UserID)
			return want, nil
		},
	}
	uc := New(calls, nil, nil)

	got, err := uc.ListCalls(context.Background(), repository.CallFilter{UserID: 4})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
