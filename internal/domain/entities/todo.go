package entities

import (
	"time"

	"github.com/google/uuid"
)

// Status labels are free-form; these are the ones clients use today.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"

	// StatusAll is a list filter meaning "no filter". It is never stored.
	StatusAll = "All"
)

type Todo struct {
	Id          uuid.UUID
	Title       string
	Description string
	Status      string
	CreatedAt   time.Time
	UserId      uuid.UUID
}

// NewTodo creates a todo owned by ownerID. A nil status defaults to Pending and a
// nil createdAt defaults to now; caller-supplied values are kept as given.
func NewTodo(ownerID uuid.UUID, title, description string, status *string, createdAt *time.Time, now time.Time) *Todo {
	todo := &Todo{
		Id:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      StatusPending,
		CreatedAt:   now,
		UserId:      ownerID,
	}
	if status != nil {
		todo.Status = *status
	}
	if createdAt != nil {
		todo.CreatedAt = *createdAt
	}
	return todo
}

// Overwrite replaces the mutable fields. Id, owner and CreatedAt never change.
func (t *Todo) Overwrite(title, description, status string) {
	t.Title = title
	t.Description = description
	t.Status = status
}

// IsNoStatusFilter reports whether filter selects every status.
func IsNoStatusFilter(filter string) bool {
	return filter == "" || filter == StatusAll
}
