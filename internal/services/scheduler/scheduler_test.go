package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/internal/testutil"
	"github.com/fitcall/backend/pkg/clock"
)

func TestIssueDailyCalls(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	activities := &testutil.ActivityRepo{
		ListFn: func(ctx context.Context) ([]domain.Activity, error) {
			return []domain.Activity{
				{ID: 1, Name: "running", Description: "daily run"},
				{ID: 2, Name: "stretching", Description: "morning stretch"},
			}, nil
		},
	}
	users := &testutil.UserRepo{
		ListFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: 1, Username: "alice", Status: "active"},
				{ID: 2, Username: "bob", Status: "suspended"},
				{ID: 3, Username: "carol", Status: "active"},
			}, nil
		},
	}
	var created []domain.Call
	calls := &testutil.CallRepo{
		CreateFn: func(ctx context.Context, call *domain.Call) (*domain.Call, error) {
			created = append(created, *call)
			return call, nil
		},
	}

	s := New(calls, users, activities, clock.Fixed(now), "", nil)
	require.NoError(t, s.IssueDailyCalls(context.Background()))

	// 2 active users x 2 activities; the suspended user is skipped.
	require.Len(t, created, 4)
	for _, call := range created {
		assert.NotEqual(t, int64(2), call.UserID)
		assert.Equal(t, "2025-06-15", call.CallDate)
		assert.Equal(t, domain.CallStatusPending, call.Status)
	}
}

func TestIssueDailyCallsEmptyCatalog(t *testing.T) {
	activities := &testutil.ActivityRepo{
		ListFn: func(ctx context.Context) ([]domain.Activity, error) { return nil, nil },
	}

	s := New(&testutil.CallRepo{}, &testutil.UserRepo{}, activities, clock.System(), "", nil)
	assert.NoError(t, s.IssueDailyCalls(context.Background()))
}
