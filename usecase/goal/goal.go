package goal

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/repository"
)

type UseCase struct {
	goals  repository.GoalRepository
	steps  repository.StepRepository
	logger *zap.Logger
}

func New(goals repository.GoalRepository, steps repository.StepRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		goals:  goals,
		steps:  steps,
		logger: logger,
	}
}

func (uc *UseCase) ListGoals(ctx context.Context, userID int64) ([]domain.Goal, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidPayload
	}
	return uc.goals.ListByUser(ctx, userID)
}

func (uc *UseCase) GetGoal(ctx context.Context, id int64) (*domain.Goal, error) {
	return uc.goals.GetByID(ctx, id)
}

func (uc *UseCase) CreateGoal(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	if goal == nil || goal.UserID <= 0 || strings.TrimSpace(goal.Name) == "" {
		return nil, domain.ErrInvalidPayload
	}
	if goal.Status == "" {
		goal.Status = "active"
	}
	return uc.goals.Create(ctx, goal)
}

func (uc *UseCase) UpdateGoal(ctx context.Context, goal *domain.Goal) error {
	if goal == nil || goal.ID <= 0 {
		return domain.ErrInvalidPayload
	}
	return uc.goals.Update(ctx, goal)
}

func (uc *UseCase) DeleteGoal(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidPayload
	}
	return uc.goals.Delete(ctx, id)
}

func (uc *UseCase) ListSteps(ctx context.Context, goalID int64) ([]domain.Step, error) {
	if goalID <= 0 {
		return nil, domain.ErrInvalidPayload
	}
	return uc.steps.ListByGoal(ctx, goalID)
}

func (uc *UseCase) CreateStep(ctx context.Context, step *domain.Step) (*domain.Step, error) {
	if step == nil || step.GoalID <= 0 || strings.TrimSpace(step.Name) == "" {
		return nil, domain.ErrInvalidPayload
	}
	if _, err := uc.goals.GetByID(ctx, step.GoalID); err != nil {
		return nil, err
	}
	if step.Status == "" {
		step.Status = "pending"
	}
	return uc.steps.Create(ctx, step)
}

func (uc *UseCase) UpdateStep(ctx context.Context, step *domain.Step) error {
	if step == nil || step.ID <= 0 {
		return domain.ErrInvalidPayload
	}
	return uc.steps.Update(ctx, step)
}

func (uc *UseCase) DeleteStep(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidPayload
	}
	return uc.steps.Delete(ctx, id)
}
