package friends

import (
	"context"

	"go.uber.org/zap"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/repository"
)

type UseCase struct {
	friendships repository.FriendshipRepository
	users       repository.UserRepository
	logger      *zap.Logger
}

func New(friendships repository.FriendshipRepository, users repository.UserRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		friendships: friendships,
		users:       users,
		logger:      logger,
	}
}

// ValidReceivers returns the subset of candidateIDs that are confirmed
// (non-pending) friends of senderID. The result is deduplicated and is always
// a subset of candidateIDs, even when the input repeats ids or an edge exists
// in both orientations.
func (uc *UseCase) ValidReceivers(ctx context.Context, senderID int64, candidateIDs []int64) ([]int64, error) {
	confirmed, err := uc.friendships.ConfirmedFriendIDs(ctx, senderID)
	if err != nil {
		return nil, err
	}

	confirmedSet := make(map[int64]struct{}, len(confirmed))
	for _, id := range confirmed {
		confirmedSet[id] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(candidateIDs))
	var valid []int64
	for _, id := range candidateIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := confirmedSet[id]; ok {
			valid = append(valid, id)
		}
	}
	return valid, nil
}

// ListFriends returns the confirmed friends of userID as user records.
func (uc *UseCase) ListFriends(ctx context.Context, userID int64) ([]domain.User, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidPayload
	}
	ids, err := uc.friendships.ConfirmedFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	return uc.users.GetByIDs(ctx, ids)
}
