package gormdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/apperrors"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/entities"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/repositories"
	"gorm.io/gorm"
)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) repositories.TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(ctx context.Context, todo *entities.Todo) (*entities.Todo, error) {
	todoModel := r.mapToModel(todo)

	if err := r.db.WithContext(ctx).Create(&todoModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, todo.Id)
}

func (r *TodoRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.Todo, error) {
	var todoModel TodoModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&todoModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&todoModel), nil
}

func (r *TodoRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Todo, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *TodoRepository) FindByUserAndStatus(ctx context.Context, userID uuid.UUID, status string) ([]*entities.Todo, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ? AND status = ?", userID, status))
}

// Update writes only title, description and status. A row that vanished in the
// meantime is reported as not found.
func (r *TodoRepository) Update(ctx context.Context, todo *entities.Todo) (*entities.Todo, error) {
	result := r.db.WithContext(ctx).
		Model(&TodoModel{}).
		Where("id = ?", todo.Id).
		Updates(map[string]any{
			"title":       todo.Title,
			"description": todo.Description,
			"status":      todo.Status,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "todo not found")
	}

	return r.FindById(ctx, todo.Id)
}

func (r *TodoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&TodoModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, "todo not found")
	}
	return nil
}

func (r *TodoRepository) find(tx *gorm.DB) ([]*entities.Todo, error) {
	var todoModels []TodoModel
	if err := tx.Order("created_at asc, id asc").Find(&todoModels).Error; err != nil {
		return nil, err
	}

	todos := make([]*entities.Todo, 0, len(todoModels))
	for i := range todoModels {
		todos = append(todos, r.mapToEntity(&todoModels[i]))
	}
	return todos, nil
}

// mapToModel stores CreatedAt in UTC so sqlite's text timestamps sort by instant.
func (r *TodoRepository) mapToModel(todo *entities.Todo) TodoModel {
	return TodoModel{
		Id:          todo.Id,
		Title:       todo.Title,
		Description: todo.Description,
		Status:      todo.Status,
		CreatedAt:   todo.CreatedAt.UTC(),
		UserId:      todo.UserId,
	}
}

func (r *TodoRepository) mapToEntity(todoModel *TodoModel) *entities.Todo {
	return &entities.Todo{
		Id:          todoModel.Id,
		Title:       todoModel.Title,
		Description: todoModel.Description,
		Status:      todoModel.Status,
		CreatedAt:   todoModel.CreatedAt,
		UserId:      todoModel.UserId,
	}
}
