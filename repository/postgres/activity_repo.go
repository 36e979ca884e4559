package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/repository"
)

type activityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository returns a Postgres-backed ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) repository.ActivityRepository {
	return &activityRepository{pool: pool}
}

func (r *activityRepository) List(ctx context.Context) ([]domain.Activity, error) {
	const query = `SELECT id, name, description FROM activities ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var activity domain.Activity
		var description *string
		if err := rows.Scan(&activity.ID, &activity.Name, &description); err != nil {
			return nil, err
		}
		if description != nil {
			activity.Description = *description
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}
