package repository

import (
	"context"

	"github.com/fitcall/backend/domain"
)

type ChallengeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Challenge, error)

	// PendingReceivers returns the subset of receiverIDs that already have a
	// pending challenge from senderID for callID.
	PendingReceivers(ctx context.Context, senderID, callID int64, receiverIDs []int64) ([]int64, error)

	// CreateBatch inserts all challenges in a single transaction. Receivers
	// that lost a concurrent dispatch race are skipped silently.
	CreateBatch(ctx context.Context, challenges []domain.Challenge) error

	// Respond finalizes a pending challenge and, when fork is non-nil, inserts
	// the forked call in the same transaction. Returns
	// domain.ErrChallengeAnswered when the challenge is no longer pending.
	Respond(ctx context.Context, challenge *domain.Challenge, fork *domain.Call) error

	// ListPendingByReceiver returns the receiver's pending challenges enriched
	// with sender and call details, for the polled notification feed.
	ListPendingByReceiver(ctx context.Context, receiverID int64) ([]domain.ChallengeNotification, error)
}
