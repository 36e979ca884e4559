package challenge

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

var now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

type validatorFunc func(ctx context.Context, senderID int64, candidateIDs []int64) ([]int64, error)

func (f validatorFunc) ValidReceivers(ctx context.Context, senderID int64, candidateIDs []int64) ([]int64, error) {
	return f(ctx, senderID, candidateIDs)
}

func allFriends(ctx context.Context, senderID int64, candidateIDs []int64) ([]int64, error) {
	out := make([]int64, len(candidateIDs))
	copy(out, candidateIDs)
	return out, nil
}

func existingCall(ctx context.Context, id int64) (bool, error) { return true, nil }
func existingUser(ctx context.Context, id int64) (bool, error) { return true, nil }

func validSend() SendInput {
	return SendInput{
		SenderID:    1,
		ReceiverIDs: []int64{2, 3},
		CallID:      10,
		CallName:    "morning run",
		Description: "5km around the park",
	}
}

func TestSendValidation(t *testing.T) {
	uc := New(&testutil.ChallengeRepo{}, &testutil.CallRepo{}, &testutil.UserRepo{}, validatorFunc(allFriends), clock.Fixed(now), nil)

	t.Run("empty receivers", func(t *testing.T) {
		in := validSend()
		in.ReceiverIDs = nil
		err := uc.Send(context.Background(), in)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	})

	t.Run("blank call name", func(t *testing.T) {
		in := validSend()
		in.CallName = "   "
		err := uc.Send(context.Background(), in)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	})

	t.Run("blank description", func(t *testing.T) {
		in := validSend()
		in.Description = ""
		err := uc.Send(context.Background(), in)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	})

	t.Run("non-positive receiver id", func(t *testing.T) {
		in := validSend()
		in.ReceiverIDs = []int64{2, -3}
		err := uc.Send(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})

	t.Run("missing call", func(t *testing.T) {
		calls := &testutil.CallRepo{
			ExistsFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
		}
		uc := New(&testutil.ChallengeRepo{}, calls, &testutil.UserRepo{}, validatorFunc(allFriends), clock.Fixed(now), nil)
		err := uc.Send(context.Background(), validSend())
		assert.ErrorIs(t, err, domain.ErrCallNotFound)
	})

	t.Run("missing sender", func(t *testing.T) {
		calls := &testutil.CallRepo{ExistsFn: existingCall}
		users := &testutil.UserRepo{
			ExistsFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
		}
		uc := New(&testutil.ChallengeRepo{}, calls, users, validatorFunc(allFriends), clock.Fixed(now), nil)
		err := uc.Send(context.Background(), validSend())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestSendRejectsNonFriends(t *testing.T) {
	calls := &testutil.CallRepo{ExistsFn: existingCall}
	users := &testutil.UserRepo{ExistsFn: existingUser}
	onlyReceiver2 := validatorFunc(func(ctx context.Context, senderID int64, candidateIDs []int64) ([]int64, error) {
		return []int64{2}, nil
	})
	uc := New(&testutil.ChallengeRepo{}, calls, users, onlyReceiver2, clock.Fixed(now), nil)

	// One stranger rejects the whole dispatch, nothing is created.
	err := uc.Send(context.Background(), validSend())
	assert.ErrorIs(t, err, domain.ErrNotConfirmedFriend)
}

func TestSendSkipsAlreadyPending(t *testing.T) {
	calls := &testutil.CallRepo{ExistsFn: existingCall}
	users := &testutil.UserRepo{ExistsFn: existingUser}

	var created []domain.Challenge
	challenges := &testutil.ChallengeRepo{
		PendingReceiversFn: func(ctx context.Context, senderID, callID int64, receiverIDs []int64) ([]int64, error) {
			return []int64{2}, nil
		},
		CreateBatchFn: func(ctx context.Context, batch []domain.Challenge) error {
			created = batch
			return nil
		},
	}
	uc := New(challenges, calls, users, validatorFunc(allFriends), clock.Fixed(now), nil)

	require.NoError(t, uc.Send(context.Background(), validSend()))
	require.Len(t, created, 1)
	assert.Equal(t, int64(3), created[0].ReceiverID)
	assert.Equal(t, int64(1), created[0].SenderID)
	assert.Equal(t, int64(10), created[0].CallID)
	assert.Equal(t, domain.ChallengeStatusPending, created[0].Status)
	assert.True(t, now.Equal(created[0].SentAt))
}

func TestSendAllReceiversExhausted(t *testing.T) {
	calls := &testutil.CallRepo{ExistsFn: existingCall}
	users := &testutil.UserRepo{ExistsFn: existingUser}
	challenges := &testutil.ChallengeRepo{
		PendingReceiversFn: func(ctx context.Context, senderID, callID int64, receiverIDs []int64) ([]int64, error) {
			return []int64{2, 3}, nil
		},
	}
	uc := New(challenges, calls, users, validatorFunc(allFriends), clock.Fixed(now), nil)

	err := uc.Send(context.Background(), validSend())
	assert.ErrorIs(t, err, domain.ErrReceiversExhausted)
}

func TestSendIdempotent(t *testing.T) {
	calls := &testutil.CallRepo{ExistsFn: existingCall}
	users := &testutil.UserRepo{ExistsFn: existingUser}

	pending := map[int64]bool{}
	var createCalls int
	challenges := &testutil.ChallengeRepo{
		PendingReceiversFn: func(ctx context.Context, senderID, callID int64, receiverIDs []int64) ([]int64, error) {
			var out []int64
			for _, id := range receiverIDs {
				if pending[id] {
					out = append(out, id)
				}
			}
			return out, nil
		},
		CreateBatchFn: func(ctx context.Context, batch []domain.Challenge) error {
			createCalls++
			for _, c := range batch {
				pending[c.ReceiverID] = true
			}
			return nil
		},
	}
	uc := New(challenges, calls, users, validatorFunc(allFriends), clock.Fixed(now), nil)

	require.NoError(t, uc.Send(context.Background(), validSend()))
	assert.Equal(t, 1, createCalls)

	// Repeating the same dispatch creates nothing new.
	err := uc.Send(context.Background(), validSend())
	assert.ErrorIs(t, err, domain.ErrReceiversExhausted)
	assert.Equal(t, 1, createCalls)
}

func TestRespondAccept(t *testing.T) {
	challenge := &domain.Challenge{
		ID:         5,
		SenderID:   1,
		ReceiverID: 2,
		CallID:     10,
		Status:     domain.ChallengeStatusPending,
		SentAt:     now.Add(-time.Hour),
	}
	source := &domain.Call{
		ID:          10,
		UserID:      1,
		CallName:    "morning run",
		Description: "5km around the park",
		CallDate:    "2025-06-01",
		Status:      domain.CallStatusCompleted,
	}

	calls := &testutil.CallRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*domain.Call, error) {
			require.Equal(t, int64(10), id)
			return source, nil
		},
	}
	var gotChallenge *domain.Challenge
	var gotFork *domain.Call
	challenges := &testutil.ChallengeRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*domain.Challenge, error) {
			return challenge, nil
		},
		RespondFn: func(ctx context.Context, c *domain.Challenge, fork *domain.Call) error {
			gotChallenge = c
			gotFork = fork
			return nil
		},
	}
	uc := New(challenges, calls, &testutil.UserRepo{}, validatorFunc(allFriends), clock.Fixed(now), nil)

	require.NoError(t, uc.Respond(context.Background(), 5, true))

	require.NotNil(t, gotChallenge)
	assert.Equal(t, domain.ChallengeStatusAccepted, gotChallenge.Status)
	require.NotNil(t, gotChallenge.RespondedAt)
	assert.True(t, now.Equal(*gotChallenge.RespondedAt))

	// The fork belongs to the receiver and copies the source category.
	require.NotNil(t, gotFork)
	assert.Equal(t, int64(2), gotFork.UserID)
	assert.Equal(t, "morning run", gotFork.CallName)
	assert.Equal(t, "5km around the park", gotFork.Description)
	assert.Equal(t, "2025-06-15", gotFork.CallDate)
	assert.Equal(t, domain.CallStatusAccepted, gotFork.Status)
}

func TestRespondReject(t *testing.T) {
	challenge := &domain.Challenge{ID: 5, ReceiverID: 2, CallID: 10, Status: domain.ChallengeStatusPending}

	var gotFork *domain.Call
	var gotStatus string
	challenges := &testutil.ChallengeRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*domain.Challenge, error) {
			return challenge, nil
		},
		RespondFn: func(ctx context.Context, c *domain.Challenge, fork *domain.Call) error {
			gotStatus = c.Status
			gotFork = fork
			return nil
		},
	}
	uc := New(challenges, &testutil.CallRepo{}, &testutil.UserRepo{}, validatorFunc(allFriends), clock.Fixed(now), nil)

	require.NoError(t, uc.Respond(context.Background(), 5, false))
	assert.Equal(t, domain.ChallengeStatusRejected, gotStatus)
	assert.Nil(t, gotFork, "rejecting must not fork a call")
}

func TestRespondAlreadyAnswered(t *testing.T) {
	challenges := &testutil.ChallengeRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*domain.Challenge, error) {
			return &domain.Challenge{ID: 5, Status: domain.ChallengeStatusAccepted}, nil
		},
	}
	uc := New(challenges, &testutil.CallRepo{}, &testutil.UserRepo{}, validatorFunc(allFriends), clock.Fixed(now), nil)

	err := uc.Respond(context.Background(), 5, true)
	assert.ErrorIs(t, err, domain.ErrChallengeAnswered)
}

func TestRespondLostRace(t *testing.T) {
	challenges := &testutil.ChallengeRepo{
		GetByIDFn: func(ctx context.Context, id int64) (*domain.Challenge, error) {
			return &domain.Challenge{ID: 5, CallID: 10, Status: domain.ChallengeStatusPending}, nil
		},
		RespondFn: func(ctx context.Context, c *domain.Challenge, fork *domain.Call) error {
			// Another response finalized the row between read and write.
			return domain.ErrChallengeAnswered
		},
	}
	uc := New(challenges, &testutil.CallRepo{}, &testutil.UserRepo{}, validatorFunc(allFriends), clock.Fixed(now), nil)

	err := uc.Respond(context.Background(), 5, false)
	assert.ErrorIs(t, err, domain.ErrChallengeAnswered)
}

func TestReceived(t *testing.T) {
	t.Run("empty feed is not an error", func(t *testing.T) {
		challenges := &testutil.ChallengeRepo{
			ListPendingByReceiverFn: func(ctx context.Context, receiverID int64) ([]domain.ChallengeNotification, error) {
				return nil, nil
			},
		}
		uc := New(challenges, &testutil.CallRepo{}, &testutil.UserRepo{}, validatorFunc(allFriends), clock.Fixed(now), nil)

		got, err := uc.Received(context.Background(), 2)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("rejects non-positive receiver", func(t *testing.T) {
		uc := New(&testutil.ChallengeRepo{}, &testutil.CallRepo{}, &testutil.UserRepo{}, validatorFunc(allFriends), clock.Fixed(now), nil)
		_, err := uc.Received(context.Background(), 0)
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})
}
