package repository

import (
	"context"

	"github.com/fitcall/backend/domain"
)

type UserRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
