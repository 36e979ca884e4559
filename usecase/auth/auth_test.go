package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/internal/testutil"
)

func TestCreateSession(t *testing.T) {
	users := &testutil.UserRepo{
		GetByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			if username != "alice" {
				return nil, domain.ErrUserNotFound
			}
			return &domain.User{ID: 1, Username: "alice"}, nil
		},
	}

	t.Run("issues session for known user", func(t *testing.T) {
		var saved *domain.Session
		sessions := &testutil.SessionRepo{
			SaveFn: func(ctx context.Context, session *domain.Session) error {
				saved = session
				return nil
			},
		}
		uc := New(users, sessions, nil)

		session, err := uc.CreateSession(context.Background(), "alice", time.Hour)
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, int64(1), session.UserID)
		assert.Equal(t, "alice", session.Username)
		assert.True(t, session.ExpiresAt.After(session.CreatedAt))
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := New(users, &testutil.SessionRepo{}, nil)
		_, err := uc.CreateSession(context.Background(), "mallory", time.Hour)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestGetSession(t *testing.T) {
	t.Run("expired session is deleted and reported missing", func(t *testing.T) {
		deleted := false
		sessions := &testutil.SessionRepo{
			GetFn: func(ctx context.Context, id string) (*domain.Session, error) {
				return &domain.Session{ID: id, ExpiresAt: time.Now().Add(-time.Minute)}, nil
			},
			DeleteFn: func(ctx context.Context, id string) error {
				deleted = true
				return nil
			},
		}
		uc := New(&testutil.UserRepo{}, sessions, nil)

		_, err := uc.GetSession(context.Background(), "sid")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
		assert.True(t, deleted)
	})

	t.Run("live session", func(t *testing.T) {
		sessions := &testutil.SessionRepo{
			GetFn: func(ctx context.Context, id string) (*domain.Session, error) {
				return &domain.Session{ID: id, UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}, nil
			},
		}
		uc := New(&testutil.UserRepo{}, sessions, nil)

		session, err := uc.GetSession(context.Background(), "sid")
		require.NoError(t, err)
		assert.Equal(t, int64(1), session.UserID)
	})
}

func TestRefreshSession(t *testing.T) {
	var extendedSeconds int
	sessions := &testutil.SessionRepo{
		GetFn: func(ctx context.Context, id string) (*domain.Session, error) {
			return &domain.Session{ID: id, UserID: 1, ExpiresAt: time.Now().Add(time.Minute)}, nil
		},
		ExtendFn: func(ctx context.Context, id string, ttlSeconds int) error {
			extendedSeconds = ttlSeconds
			return nil
		},
	}
	uc := New(&testutil.UserRepo{}, sessions, nil)

	session, err := uc.RefreshSession(context.Background(), "sid", 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 7200, extendedSeconds)
	assert.True(t, session.ExpiresAt.After(time.Now().Add(time.Hour)))
}
