package repository

import (
	"context"

	"github.com/fitcall/backend/domain"
)

type GoalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Goal, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Goal, error)
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id int64) error
}

type StepRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Step, error)
	ListByGoal(ctx context.Context, goalID int64) ([]domain.Step, error)
	Create(ctx context.Context, step *domain.Step) (*domain.Step, error)
	Update(ctx context.Context, step *domain.Step) error
	Delete(ctx context.Context, id int64) error
}
