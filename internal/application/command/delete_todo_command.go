package command

import "github.com/google/uuid"

type DeleteTodoCommand struct {
	Id uuid.UUID `json:"-"`
}
