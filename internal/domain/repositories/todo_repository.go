package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/entities"
)

// TodoRepository is the Todo Store. FindById returns nil, nil when nothing matches.
type TodoRepository interface {
	Create(ctx context.Context, todo *entities.Todo) (*entities.Todo, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.Todo, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Todo, error)
	FindByUserAndStatus(ctx context.Context, userID uuid.UUID, status string) ([]*entities.Todo, error)
	Update(ctx context.Context, todo *entities.Todo) (*entities.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
