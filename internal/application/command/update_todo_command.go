package command

import (
	"github.com/google/uuid"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/common"
)

type UpdateTodoCommand struct {
	Id          uuid.UUID `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

type UpdateTodoCommandResult struct {
	Result *common.TodoResult `json:"result"`
}
