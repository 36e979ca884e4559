package repository

import (
	"context"

	"github.com/fitcall/backend/domain"
)

type CallFilter struct {
	UserID  int64
	UserIDs []int64
	Status  string
	Limit   int
	Offset  int
}

type CallRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Call, error)
	List(ctx context.Context, filter CallFilter) ([]domain.Call, error)
	Create(ctx context.Context, call *domain.Call) (*domain.Call, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}
