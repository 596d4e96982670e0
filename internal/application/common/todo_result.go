package common

import (
	"time"

	"github.com/google/uuid"
)

type TodoResult struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UserId      uuid.UUID `json:"userId"`
}

// Todo lifecycle event types, also used as message subjects.
const (
	TodoCreated = "todo.created"
	TodoUpdated = "todo.updated"
	TodoDeleted = "todo.deleted"
)

type TodoEvent struct {
	Type       string      `json:"type"`
	Todo       *TodoResult `json:"todo"`
	OccurredAt time.Time   `json:"occurredAt"`
}
