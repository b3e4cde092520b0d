package repository

import (
	"context"

	"github.com/AshisChetia/bookmart/internal/domain/model"
)

// UserRepository describes account lookups.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
