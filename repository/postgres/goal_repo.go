package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/repository"
)

type goalRepository struct {
	pool *pgxpool.Pool
}

// NewGoalRepository returns a Postgres-backed GoalRepository.
func NewGoalRepository(pool *pgxpool.Pool) repository.GoalRepository {
	return &goalRepository{pool: pool}
}

func (r *goalRepository) GetByID(ctx context.Context, id int64) (*domain.Goal, error) {
	const query = `SELECT id, user_id, name, description, status FROM goals WHERE id = $1`
	return scanGoal(r.pool.QueryRow(ctx, query, id))
}

func (r *goalRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Goal, error) {
	const query = `SELECT id, user_id, name, description, status FROM goals WHERE user_id = $1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *goal)
	}
	return goals, rows.Err()
}

func (r *goalRepository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	if goal == nil {
		return nil, domain.ErrInvalidPayload
	}
	const query = `
	INSERT INTO goals (user_id, name, description, status)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`
	if err := r.pool.QueryRow(ctx, query, goal.UserID, goal.Name, goal.Description, goal.Status).Scan(&goal.ID); err != nil {
		return nil, err
	}
	return goal, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	if goal == nil {
		return domain.ErrInvalidPayload
	}
	const query = `UPDATE goals SET name = $2, description = $3, status = $4 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, goal.ID, goal.Name, goal.Description, goal.Status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM goals WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func scanGoal(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Goal, error) {
	var goal domain.Goal
	var description *string

	if err := row.Scan(&goal.ID, &goal.UserID, &goal.Name, &description, &goal.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	if description != nil {
		goal.Description = *description
	}
	return &goal, nil
}
