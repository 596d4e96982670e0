package handler

import (
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/interfaces"
)

// Handler serves the auth and todo HTTP surfaces.
type Handler struct {
	authService interfaces.AuthService
	todoService interfaces.TodoService
	tokens      interfaces.TokenService
}

func NewHandler(authService interfaces.AuthService, todoService interfaces.TodoService, tokens interfaces.TokenService) *Handler {
	return &Handler{
		authService: authService,
		todoService: todoService,
		tokens:      tokens,
	}
}

// Response is the envelope for error replies.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}
