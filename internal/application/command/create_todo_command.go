package command

import (
	"time"

	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/common"
)

// CreateTodoCommand carries a draft todo. Any owner sent by the client is not
// part of the command and therefore ignored.
type CreateTodoCommand struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      *string    `json:"status"`
	CreatedAt   *time.Time `json:"createdAt"`
}

type CreateTodoCommandResult struct {
	Result *common.TodoResult `json:"result"`
}
