package friends

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/internal/testutil"
)

func TestValidReceivers(t *testing.T) {
	friendships := &testutil.FriendshipRepo{
		ConfirmedFriendIDsFn: func(ctx context.Context, userID int64) ([]int64, error) {
			return []int64{2, 3, 5}, nil
		},
	}
	uc := New(friendships, &testutil.UserRepo{}, nil)

	t.Run("filters non-friends", func(t *testing.T) {
		valid, err := uc.ValidReceivers(context.Background(), 1, []int64{2, 4, 5})
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 5}, valid)
	})

	t.Run("deduplicates candidates", func(t *testing.T) {
		valid, err := uc.ValidReceivers(context.Background(), 1, []int64{3, 3, 3})
		require.NoError(t, err)
		assert.Equal(t, []int64{3}, valid)
	})

	t.Run("empty result for strangers", func(t *testing.T) {
		valid, err := uc.ValidReceivers(context.Background(), 1, []int64{7, 8})
		require.NoError(t, err)
		assert.Empty(t, valid)
	})
}

func TestListFriends(t *testing.T) {
	t.Run("returns user records", func(t *testing.T) {
		friendships := &testutil.FriendshipRepo{
			ConfirmedFriendIDsFn: func(ctx context.Context, userID int64) ([]int64, error) {
				return []int64{2, 3}, nil
			},
		}
		users := &testutil.UserRepo{
			GetByIDsFn: func(ctx context.Context, ids []int64) ([]domain.User, error) {
				assert.Equal(t, []int64{2, 3}, ids)
				return []domain.User{{ID: 2, Username: "bob"}, {ID: 3, Username: "carol"}}, nil
			},
		}
		uc := New(friendships, users, nil)

		got, err := uc.ListFriends(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "bob", got[0].Username)
	})

	t.Run("no friends yields empty slice", func(t *testing.T) {
		friendships := &testutil.FriendshipRepo{
			ConfirmedFriendIDsFn: func(ctx context.Context, userID int64) ([]int64, error) {
				return nil, nil
			},
		}
		uc := New(friendships, &testutil.UserRepo{}, nil)

		got, err := uc.ListFriends(context.Background(), 1)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("rejects non-positive id", func(t *testing.T) {
		uc := New(&testutil.FriendshipRepo{}, &testutil.UserRepo{}, nil)
		_, err := uc.ListFriends(context.Background(), 0)
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})
}
