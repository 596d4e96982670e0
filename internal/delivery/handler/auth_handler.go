package handler

import (
	"net/http"

	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/command"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/apperrors"
	"github.com/labstack/echo/v4"
)

const healthMessage = "Auth service is running"

func (h *Handler) Register(c echo.Context) error {
	var registerCommand command.RegisterUserCommand
	if err := c.Bind(&registerCommand); err != nil {
		return apperrors.Wrap(apperrors.KindInvalid, "invalid request body", err)
	}

	result, err := h.authService.RegisterUser(c.Request().Context(), &registerCommand)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return apperrors.Wrap(apperrors.KindInvalid, "invalid request body", err)
	}

	result, err := h.authService.LoginUser(c.Request().Context(), &loginCommand)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, healthMessage)
}
