package repository

import (
	"context"

	"github.com/fitcall/backend/domain"
)

type ActivityRepository interface {
	List(ctx context.Context) ([]domain.Activity, error)
}
