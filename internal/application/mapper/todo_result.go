package mapper

import (
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/common"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/entities"
)

func NewTodoResultFromEntity(todo *entities.Todo) *common.TodoResult {
	return &common.TodoResult{
		Id:          todo.Id,
		Title:       todo.Title,
		Description: todo.Description,
		Status:      todo.Status,
		CreatedAt:   todo.CreatedAt,
		UserId:      todo.UserId,
	}
}

// NewTodoResultsFromEntities never returns nil so empty lists encode as [].
func NewTodoResultsFromEntities(todos []*entities.Todo) []*common.TodoResult {
	results := make([]*common.TodoResult, 0, len(todos))
	for _, todo := range todos {
		results = append(results, NewTodoResultFromEntity(todo))
	}
	return results
}
