package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/command"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/common"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/interfaces"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/mapper"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/query"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/apperrors"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/entities"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/repositories"
)

type TodoService struct {
	todoRepo  repositories.TodoRepository
	userRepo  repositories.UserRepository
	publisher interfaces.TodoEventPublisher
	now       func() time.Time
}

// NewTodoService wires the todo flow. publisher may be nil.
func NewTodoService(
	todoRepo repositories.TodoRepository,
	userRepo repositories.UserRepository,
	publisher interfaces.TodoEventPublisher,
) interfaces.TodoService {
	return &TodoService{
		todoRepo:  todoRepo,
		userRepo:  userRepo,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *TodoService) ListTodos(ctx context.Context, identity string, listQuery *query.ListTodosQuery) (*query.TodoQueryListResult, error) {
	user, err := s.currentUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	var todos []*entities.Todo
	if listQuery == nil || entities.IsNoStatusFilter(listQuery.Status) {
		todos, err = s.todoRepo.FindByUser(ctx, user.Id)
	} else {
		todos, err = s.todoRepo.FindByUserAndStatus(ctx, user.Id, listQuery.Status)
	}
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	return &query.TodoQueryListResult{
		Result: mapper.NewTodoResultsFromEntities(todos),
	}, nil
}

func (s *TodoService) CreateTodo(ctx context.Context, identity string, createCommand *command.CreateTodoCommand) (*command.CreateTodoCommandResult, error) {
	user, err := s.currentUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	todo := entities.NewTodo(
		user.Id,
		createCommand.Title,
		createCommand.Description,
		createCommand.Status,
		createCommand.CreatedAt,
		s.now(),
	)

	createdTodo, err := s.todoRepo.Create(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	result := mapper.NewTodoResultFromEntity(createdTodo)
	s.publish(ctx, common.TodoCreated, result)

	return &command.CreateTodoCommandResult{Result: result}, nil
}

// UpdateTodo overwrites title, description and status. Concurrent updates are
// last-write-wins.
func (s *TodoService) UpdateTodo(ctx context.Context, identity string, updateCommand *command.UpdateTodoCommand) (*command.UpdateTodoCommandResult, error) {
	user, err := s.currentUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	todo, err := s.ownedTodo(ctx, user, updateCommand.Id)
	if err != nil {
		return nil, err
	}

	todo.Overwrite(updateCommand.Title, updateCommand.Description, updateCommand.Status)

	updatedTodo, err := s.todoRepo.Update(ctx, todo)
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}

	result := mapper.NewTodoResultFromEntity(updatedTodo)
	s.publish(ctx, common.TodoUpdated, result)

	return &command.UpdateTodoCommandResult{Result: result}, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, identity string, deleteCommand *command.DeleteTodoCommand) error {
	user, err := s.currentUser(ctx, identity)
	if err != nil {
		return err
	}

	todo, err := s.ownedTodo(ctx, user, deleteCommand.Id)
	if err != nil {
		return err
	}

	if err := s.todoRepo.Delete(ctx, todo.Id); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}

	s.publish(ctx, common.TodoDeleted, mapper.NewTodoResultFromEntity(todo))
	return nil
}

// currentUser resolves the token's identity claim. The account may be gone even
// though the token still verifies.
func (s *TodoService) currentUser(ctx context.Context, identity string) (*entities.User, error) {
	if identity == "" {
		return nil, apperrors.New(apperrors.KindUnauthenticated, "missing identity")
	}

	user, err := s.userRepo.FindByEmail(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if user == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "user not found")
	}
	return user, nil
}

func (s *TodoService) ownedTodo(ctx context.Context, user *entities.User, id uuid.UUID) (*entities.Todo, error) {
	todo, err := s.todoRepo.FindById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find todo: %w", err)
	}
	if todo == nil {
		return nil, apperrors.New(apperrors.KindNotFound, "todo not found")
	}
	if !user.Owns(todo) {
		return nil, apperrors.New(apperrors.KindForbidden, "not authorized")
	}
	return todo, nil
}

func (s *TodoService) publish(ctx context.Context, eventType string, todo *common.TodoResult) {
	if s.publisher == nil {
		return
	}
	event := &common.TodoEvent{
		Type:       eventType,
		Todo:       todo,
		OccurredAt: s.now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("Failed to publish %s for todo %s: %v", eventType, todo.Id, err)
	}
}
