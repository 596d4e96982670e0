package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/command"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/query"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/apperrors"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListTodos(c echo.Context) error {
	listQuery := query.ListTodosQuery{Status: c.QueryParam("status")}

	result, err := h.todoService.ListTodos(c.Request().Context(), identityFrom(c), &listQuery)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) CreateTodo(c echo.Context) error {
	var createCommand command.CreateTodoCommand
	if err := (&echo.DefaultBinder{}).BindBody(c, &createCommand); err != nil {
		return apperrors.Wrap(apperrors.KindInvalid, "invalid request body", err)
	}

	result, err := h.todoService.CreateTodo(c.Request().Context(), identityFrom(c), &createCommand)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) UpdateTodo(c echo.Context) error {
	id, err := todoID(c)
	if err != nil {
		return err
	}

	var updateCommand command.UpdateTodoCommand
	if err := (&echo.DefaultBinder{}).BindBody(c, &updateCommand); err != nil {
		return apperrors.Wrap(apperrors.KindInvalid, "invalid request body", err)
	}
	updateCommand.Id = id

	result, err := h.todoService.UpdateTodo(c.Request().Context(), identityFrom(c), &updateCommand)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) DeleteTodo(c echo.Context) error {
	id, err := todoID(c)
	if err != nil {
		return err
	}

	if err := h.todoService.DeleteTodo(c.Request().Context(), identityFrom(c), &command.DeleteTodoCommand{Id: id}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func todoID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.Wrap(apperrors.KindInvalid, "invalid todo id", err)
	}
	return id, nil
}
