package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/apperrors"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"conflict", apperrors.New(apperrors.KindConflict, "email already exists"), http.StatusConflict, "email already exists"},
		{"unauthenticated", apperrors.New(apperrors.KindUnauthenticated, "invalid credentials"), http.StatusUnauthorized, "invalid credentials"},
		{"not found", apperrors.New(apperrors.KindNotFound, "todo not found"), http.StatusNotFound, "todo not found"},
		{"forbidden", apperrors.New(apperrors.KindForbidden, "not authorized"), http.StatusForbidden, "not authorized"},
		{"invalid", apperrors.New(apperrors.KindInvalid, "bad id"), http.StatusBadRequest, "bad id"},
		{"wrapped", fmt.Errorf("update: %w", apperrors.New(apperrors.KindNotFound, "todo not found")), http.StatusNotFound, "todo not found"},
		{"unknown kind", apperrors.New(apperrors.KindUnknown, "boom"), http.StatusInternalServerError, "internal server error"},
		{"echo", echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests"), http.StatusTooManyRequests, "Too many requests"},
		{"plain", errors.New("db down"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFor(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, message)
		})
	}
}
