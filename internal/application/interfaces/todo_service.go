package interfaces

import (
	"context"

	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/command"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/common"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/query"
)

// TodoService runs every operation on behalf of identity, the email claim of an
// already validated token.
type TodoService interface {
	ListTodos(ctx context.Context, identity string, listQuery *query.ListTodosQuery) (*query.TodoQueryListResult, error)
	CreateTodo(ctx context.Context, identity string, createCommand *command.CreateTodoCommand) (*command.CreateTodoCommandResult, error)
	UpdateTodo(ctx context.Context, identity string, updateCommand *command.UpdateTodoCommand) (*command.UpdateTodoCommandResult, error)
	DeleteTodo(ctx context.Context, identity string, deleteCommand *command.DeleteTodoCommand) error
}

// TodoEventPublisher delivers todo lifecycle events. Publishing is best effort.
type TodoEventPublisher interface {
	Publish(ctx context.Context, event *common.TodoEvent) error
}
