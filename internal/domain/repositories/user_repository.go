package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/entities"
)

// UserRepository is the User Store. Lookups return nil, nil when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
