package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/repository"
)

type callRepository struct {
	pool *pgxpool.Pool
}

// NewCallRepository returns a Postgres-backed implementation of CallRepository.
func NewCallRepository(pool *pgxpool.Pool) repository.CallRepository {
	return &callRepository{pool: pool}
}

const callColumns = `id, user_id, call_name, description, call_date, status`

func (r *callRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM calls WHERE id = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *callRepository) GetByID(ctx context.Context, id int64) (*domain.Call, error) {
	const query = `SELECT ` + callColumns + ` FROM calls WHERE id = $1`
	return scanCall(r.pool.QueryRow(ctx, query, id))
}

func (r *callRepository) List(ctx context.Context, filter repository.CallFilter) ([]domain.Call, error) {
	// UserIDs wins over UserID when both are set; stats queries pass id sets.
	if len(filter.UserIDs) > 0 {
		const query = `
		SELECT ` + callColumns + `
		FROM calls
		WHERE user_id = ANY($1)
		  AND ($2 = '' OR status = $2)
		ORDER BY id
		`
		rows, err := r.pool.Query(ctx, query, filter.UserIDs, filter.Status)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		return collectCalls(rows)
	}

	if filter.UserID == 0 {
		const query = `
		SELECT ` + callColumns + `
		FROM calls
		WHERE ($1 = '' OR status = $1)
		ORDER BY id
		`
		rows, err := r.pool.Query(ctx, query, filter.Status)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		return collectCalls(rows)
	}

	query := `
	SELECT ` + callColumns + `
	FROM calls
	WHERE user_id = $1
	  AND ($2 = '' OR status = $2)
	ORDER BY id
	`
	args := []interface{}{filter.UserID, filter.Status}
	query, args = paginate(query, args, filter.Limit, filter.Offset)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCalls(rows)
}

func (r *callRepository) Create(ctx context.Context, call *domain.Call) (*domain.Call, error) {
	if call == nil {
		return nil, domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO calls (user_id, call_name, description, call_date, status)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
	`
	if err := r.pool.QueryRow(ctx, query,
		call.UserID,
		call.CallName,
		call.Description,
		call.CallDate,
		call.Status,
	).Scan(&call.ID); err != nil {
		return nil, err
	}
	return call, nil
}

func (r *callRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	const query = `UPDATE calls SET status = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCallNotFound
	}
	return nil
}

func collectCalls(rows pgx.Rows) ([]domain.Call, error) {
	var calls []domain.Call
	for rows.Next() {
		call, err := scanCall(rows)
		if err != nil {
			return nil, err
		}
		calls = append(calls, *call)
	}
	return calls, rows.Err()
}

func scanCall(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Call, error) {
	var call domain.Call
	var description *string

	if err := row.Scan(
		&call.ID,
		&call.UserID,
		&call.CallName,
		&description,
		&call.CallDate,
		&call.Status,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCallNotFound
		}
		return nil, err
	}

	if description != nil {
		call.Description = *description
	}
	return &call, nil
}
