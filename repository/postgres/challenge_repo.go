package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitcall/backend/domain"
	"github.com/fitcall/backend/repository"
)

type challengeRepository struct {
	pool *pgxpool.Pool
}

// NewChallengeRepository returns a Postgres-backed ChallengeRepository.
func NewChallengeRepository(pool *pgxpool.Pool) repository.ChallengeRepository {
	return &challengeRepository{pool: pool}
}

func (r *challengeRepository) GetByID(ctx context.Context, id int64) (*domain.Challenge, error) {
	const query = `
	SELECT id, sender_id, receiver_id, call_id, status, sent_at, responded_at
	FROM challenges
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var challenge domain.Challenge
	if err := row.Scan(
		&challenge.ID,
		&challenge.SenderID,
		&challenge.ReceiverID,
		&challenge.CallID,
		&challenge.Status,
		&challenge.SentAt,
		&challenge.RespondedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrChallengeNotFound
		}
		return nil, err
	}
	return &challenge, nil
}

func (r *challengeRepository) PendingReceivers(ctx context.Context, senderID, callID int64, receiverIDs []int64) ([]int64, error) {
	if len(receiverIDs) == 0 {
		return nil, nil
	}
	const query = `
	SELECT receiver_id
	FROM challenges
	WHERE sender_id = $1
	  AND call_id = $2
	  AND receiver_id = ANY($3)
	  AND status = 'pending'
	`
	rows, err := r.pool.Query(ctx, query, senderID, callID, receiverIDs)
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

func (r *challengeRepository) CreateBatch(ctx context.Context, challenges []domain.Challenge) error {
	if len(challenges) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// The partial unique index on (sender_id, receiver_id, call_id) for
	// pending rows turns a lost dispatch race into a silent skip.
	const query = `
	INSERT INTO challenges (sender_id, receiver_id, call_id, status, sent_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT DO NOTHING
	`
	for _, challenge := range challenges {
		if _, err := tx.Exec(ctx, query,
			challenge.SenderID,
			challenge.ReceiverID,
			challenge.CallID,
			challenge.Status,
			challenge.SentAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *challengeRepository) Respond(ctx context.Context, challenge *domain.Challenge, fork *domain.Call) error {
	if challenge == nil {
		return domain.ErrInvalidPayload
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Guarded update: only a still-pending row transitions, so a concurrent
	// second answer observes zero affected rows instead of overwriting.
	const update = `
	UPDATE challenges
	SET status = $2, responded_at = $3
	WHERE id = $1 AND status = 'pending'
	`
	tag, err := tx.Exec(ctx, update, challenge.ID, challenge.Status, challenge.RespondedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrChallengeAnswered
	}

	if fork != nil {
		const insert = `
		INSERT INTO calls (user_id, call_name, description, call_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
		`
		if err := tx.QueryRow(ctx, insert,
			fork.UserID,
			fork.CallName,
			fork.Description,
			fork.CallDate,
			fork.Status,
		).Scan(&fork.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *challengeRepository) ListPendingByReceiver(ctx context.Context, receiverID int64) ([]domain.ChallengeNotification, error) {
	const query = `
	SELECT c.id, c.sender_id, c.receiver_id, u.username, k.call_name, k.description, c.sent_at
	FROM challenges c
	JOIN users u ON u.id = c.sender_id
	JOIN calls k ON k.id = c.call_id
	WHERE c.receiver_id = $1 AND c.status = 'pending'
	ORDER BY c.sent_at DESC
	`
	rows, err := r.pool.Query(ctx, query, receiverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.ChallengeNotification
	for rows.Next() {
		var n domain.ChallengeNotification
		var description *string
		if err := rows.Scan(
			&n.ChallengeID,
			&n.SenderID,
			&n.ReceiverID,
			&n.SenderName,
			&n.CallName,
			&description,
			&n.SentAt,
		); err != nil {
			return nil, err
		}
		if description != nil {
			n.Description = *description
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}
