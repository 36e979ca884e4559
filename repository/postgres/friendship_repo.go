package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitcall/backend/repository"
)

type friendshipRepository struct {
	pool *pgxpool.Pool
}

// NewFriendshipRepository returns a Postgres-backed FriendshipRepository.
func NewFriendshipRepository(pool *pgxpool.Pool) repository.FriendshipRepository {
	return &friendshipRepository{pool: pool}
}

func (r *friendshipRepository) ConfirmedFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	// Edges are unordered, so pick the far endpoint from either orientation.
	const query = `
	SELECT DISTINCT CASE WHEN user1_id = $1 THEN user2_id ELSE user1_id END
	FROM friendships
	WHERE pending = FALSE AND (user1_id = $1 OR user2_id = $1)
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
