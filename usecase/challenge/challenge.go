package challenge

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/pkg/clock"
	"github.com/fitcall/backend/repository"
)

// ReceiverValidator filters challenge receivers down to confirmed friends of
// the sender.
type ReceiverValidator interface {
	ValidReceivers(ctx context.Context, senderID int64, candidateIDs []int64) ([]int64, error)
}

type UseCase struct {
	challenges repository.ChallengeRepository
	calls      repository.CallRepository
	users      repository.UserRepository
	validator  ReceiverValidator
	clock      clock.Clock
	logger     *zap.Logger
}

func New(
	challenges repository.ChallengeRepository,
	calls repository.CallRepository,
	users repository.UserRepository,
	validator ReceiverValidator,
	clk clock.Clock,
	logger *zap.Logger,
) *UseCase {
	if clk == nil {
		clk = clock.System()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		challenges: challenges,
		calls:      calls,
		users:      users,
		validator:  validator,
		clock:      clk,
		logger:     logger,
	}
}

// SendInput carries a challenge dispatch request.
type SendInput struct {
	SenderID    int64
	ReceiverIDs []int64
	CallID      int64
	CallName    string
	Description string
}

// Send dispatches a pending challenge from the sender to every requested
// receiver that is a confirmed friend and has no pending challenge for the
// same call yet. Dispatch is all-or-nothing: a single non-friend receiver
// rejects the whole request, and the created rows are committed in one
// transaction.
func (uc *UseCase) Send(ctx context.Context, in SendInput) error {
	if len(in.ReceiverIDs) == 0 {
		return domain.NewError(domain.ErrCodeInvalid, "receiver list is empty")
	}
	if strings.TrimSpace(in.CallName) == "" || strings.TrimSpace(in.Description) == "" {
		return domain.NewError(domain.ErrCodeInvalid, "call name and description are required")
	}
	if in.SenderID <= 0 || in.CallID <= 0 {
		return domain.ErrInvalidPayload
	}
	for _, id := range in.ReceiverIDs {
		if id <= 0 {
			return domain.ErrInvalidPayload
		}
	}

	callExists, err := uc.calls.Exists(ctx, in.CallID)
	if err != nil {
		return err
	}
	if !callExists {
		return domain.ErrCallNotFound
	}

	senderExists, err := uc.users.Exists(ctx, in.SenderID)
	if err != nil {
		return err
	}
	if !senderExists {
		return domain.ErrUserNotFound
	}

	valid, err := uc.validator.ValidReceivers(ctx, in.SenderID, in.ReceiverIDs)
	if err != nil {
		return err
	}
	// No partial dispatch: every requested receiver must be a confirmed friend.
	if len(valid) != len(in.ReceiverIDs) {
		return domain.ErrNotConfirmedFriend
	}

	alreadyPending, err := uc.challenges.PendingReceivers(ctx, in.SenderID, in.CallID, valid)
	if err != nil {
		return err
	}
	pendingSet := make(map[int64]struct{}, len(alreadyPending))
	for _, id := range alreadyPending {
		pendingSet[id] = struct{}{}
	}

	now := uc.clock.Now()
	var challenges []domain.Challenge
	for _, receiverID := range valid {
		if _, skip := pendingSet[receiverID]; skip {
			continue
		}
		challenges = append(challenges, domain.Challenge{
			SenderID:   in.SenderID,
			ReceiverID: receiverID,
			CallID:     in.CallID,
			Status:     domain.ChallengeStatusPending,
			SentAt:     now,
		})
	}

	if len(challenges) == 0 {
		return domain.ErrReceiversExhausted
	}

	if err := uc.challenges.CreateBatch(ctx, challenges); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "failed to persist challenges", err)
	}

	uc.logger.Info("challenges dispatched",
		zap.Int64("sender_id", in.SenderID),
		zap.Int64("call_id", in.CallID),
		zap.Int("count", len(challenges)))
	return nil
}

// Respond answers a pending challenge. Accepting forks a new call owned by
// the receiver with the source call's category and description, dated today;
// the status change and the fork are committed atomically. A challenge can be
// answered once: re-answering yields a conflict.
func (uc *UseCase) Respond(ctx context.Context, challengeID int64, accept bool) error {
	if challengeID <= 0 {
		return domain.ErrInvalidPayload
	}

	challenge, err := uc.challenges.GetByID(ctx, challengeID)
	if err != nil {
		return err
	}
	if !challenge.IsPending() {
		return domain.ErrChallengeAnswered
	}

	now := uc.clock.Now()
	challenge.RespondedAt = &now

	var fork *domain.Call
	if accept {
		challenge.Status = domain.ChallengeStatusAccepted

		source, err := uc.calls.GetByID(ctx, challenge.CallID)
		if err != nil {
			return err
		}
		fork = &domain.Call{
			UserID:      challenge.ReceiverID,
			CallName:    source.CallName,
			Description: source.Description,
			CallDate:    now.Format("2006-01-02"),
			Status:      domain.CallStatusAccepted,
		}
	} else {
		challenge.Status = domain.ChallengeStatusRejected
	}

	if err := uc.challenges.Respond(ctx, challenge, fork); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeConflict) {
			return err
		}
		return domain.WrapError(domain.ErrCodeInternal, "failed to persist challenge response", err)
	}

	uc.logger.Info("challenge answered",
		zap.Int64("challenge_id", challengeID),
		zap.Bool("accepted", accept))
	return nil
}

// Received lists the pending challenges addressed to receiverID. Clients poll
// this feed; an empty slice is a normal answer, not an error.
func (uc *UseCase) Received(ctx context.Context, receiverID int64) ([]domain.ChallengeNotification, error) {
	if receiverID <= 0 {
		return nil, domain.ErrInvalidPayload
	}
	notifications, err := uc.challenges.ListPendingByReceiver(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []domain.ChallengeNotification{}
	}
	return notifications, nil
}
