package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/repository"
)

type stepRepository struct {
	pool *pgxpool.Pool
}

// NewStepRepository returns a Postgres-backed StepRepository.
func NewStepRepository(pool *pgxpool.Pool) repository.StepRepository {
	return &stepRepository{pool: pool}
}

func (r *stepRepository) GetByID(ctx context.Context, id int64) (*domain.Step, error) {
	const query = `SELECT id, goal_id, name, description, status FROM steps WHERE id = $1`
	return scanStep(r.pool.QueryRow(ctx, query, id))
}

func (r *stepRepository) ListByGoal(ctx context.Context, goalID int64) ([]domain.Step, error) {
	const query = `SELECT id, goal_id, name, description, status FROM steps WHERE goal_id = $1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var steps []domain.Step
	for rows.Next() {
		step, err := scanStep(rows)
		if err != nil {
			return nil, err
		}
		steps = append(steps, *step)
	}
	return steps, rows.Err()
}

func (r *stepRepository) Create(ctx context.Context, step *domain.Step) (*domain.Step, error) {
	if step == nil {
		return nil, domain.ErrInvalidPayload
	}
	const query = `
	INSERT INTO steps (goal_id, name, description, status)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`
	if err := r.pool.QueryRow(ctx, query, step.GoalID, step.Name, step.Description, step.Status).Scan(&step.ID); err != nil {
		return nil, err
	}
	return step, nil
}

func (r *stepRepository) Update(ctx context.Context, step *domain.Step) error {
	if step == nil {
		return domain.ErrInvalidPayload
	}
	const query = `UPDATE steps SET name = $2, description = $3, status = $4 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, step.ID, step.Name, step.Description, step.Status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStepNotFound
	}
	return nil
}

func (r *stepRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM steps WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStepNotFound
	}
	return nil
}

func scanStep(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Step, error) {
	var step domain.Step
	var description *string

	if err := row.Scan(&step.ID, &step.GoalID, &step.Name, &description, &step.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStepNotFound
		}
		return nil, err
	}
	if description != nil {
		step.Description = *description
	}
	return &step, nil
}
