package goal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/internal/testutil"
)

func TestCreateGoal(t *testing.T) {
	t.Run("defaults status to active", func(t *testing.T) {
		goals := &testutil.GoalRepo{
			CreateFn: func(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
				goal.ID = 1
				return goal, nil
			},
		}
		uc := New(goals, &testutil.StepRepo{}, nil)

		created, err := uc.CreateGoal(context.Background(), &domain.Goal{UserID: 1, Name: "run a marathon"})
		require.NoError(t, err)
		assert.Equal(t, "active", created.Status)
		assert.Equal(t, int64(1), created.ID)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		uc := New(&testutil.GoalRepo{}, &testutil.StepRepo{}, nil)
		_, err := uc.CreateGoal(context.Background(), &domain.Goal{UserID: 1, Name: "  "})
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})

	t.Run("rejects missing user", func(t *testing.T) {
		uc := New(&testutil.GoalRepo{}, &testutil.StepRepo{}, nil)
		_, err := uc.CreateGoal(context.Background(), &domain.Goal{Name: "run"})
		assert.ErrorIs(t, err, domain.ErrInvalidPayload)
	})
}

func TestCreateStep(t *testing.T) {
	t.Run("requires existing goal", func(t *testing.T) {
		goals := &testutil.GoalRepo{
			GetByIDFn: func(ctx context.Context, id int64) (*domain.Goal, error) {
				return nil, domain.ErrGoalNotFound
			},
		}
		uc := New(goals, &testutil.StepRepo{}, nil)

		_, err := uc.CreateStep(context.Background(), &domain.Step{GoalID: 9, Name: "sign up"})
		assert.ErrorIs(t, err, domain.ErrGoalNotFound)
	})

	t.Run("defaults status to pending", func(t *testing.T) {
		goals := &testutil.GoalRepo{
			GetByIDFn: func(ctx context.Context, id int64) (*domain.Goal, error) {
				return &domain.Goal{ID: id, UserID: 1, Name: "run a marathon"}, nil
			},
		}
		steps := &testutil.StepRepo{
			CreateFn: func(ctx context.Context, step *domain.Step) (*domain.Step, error) {
				step.ID = 5
				return step, nil
			},
		}
		uc := New(goals, steps, nil)

		created, err := uc.CreateStep(context.Background(), &domain.Step{GoalID: 9, Name: "sign up"})
		require.NoError(t, err)
		assert.Equal(t, "pending", created.Status)
	})
}

func TestGoalValidation(t *testing.T) {
	uc := New(&testutil.GoalRepo{}, &testutil.StepRepo{}, nil)

	_, err := uc.ListGoals(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)

	err = uc.UpdateGoal(context.Background(), &domain.Goal{})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)

	err = uc.DeleteGoal(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)

	_, err = uc.ListSteps(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)

	err = uc.DeleteStep(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}
