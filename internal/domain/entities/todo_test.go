package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTodoDefaults(t *testing.T) {
	owner := uuid.New()
	now := time.Date(2026, 1, 23, 10, 0, 0, 0, time.UTC)

	todo := NewTodo(owner, "Buy milk", "", nil, nil, now)

	assert.NotEqual(t, uuid.Nil, todo.Id)
	assert.Equal(t, owner, todo.UserId)
	assert.Equal(t, StatusPending, todo.Status)
	assert.True(t, todo.CreatedAt.Equal(now))
}

func TestNewTodoKeepsCallerSuppliedValues(t *testing.T) {
	status := StatusDone
	backdated := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)

	todo := NewTodo(uuid.New(), "Old task", "from import", &status, &backdated, time.Now())

	assert.Equal(t, StatusDone, todo.Status)
	assert.True(t, todo.CreatedAt.Equal(backdated))
	assert.Equal(t, "from import", todo.Description)
}

func TestOverwriteLeavesIdentityFields(t *testing.T) {
	todo := NewTodo(uuid.New(), "a", "b", nil, nil, time.Now())
	id, owner, createdAt := todo.Id, todo.UserId, todo.CreatedAt

	todo.Overwrite("c", "d", StatusInProgress)

	assert.Equal(t, "c", todo.Title)
	assert.Equal(t, "d", todo.Description)
	assert.Equal(t, StatusInProgress, todo.Status)
	assert.Equal(t, id, todo.Id)
	assert.Equal(t, owner, todo.UserId)
	assert.True(t, todo.CreatedAt.Equal(createdAt))
}

func TestIsNoStatusFilter(t *testing.T) {
	assert.True(t, IsNoStatusFilter(""))
	assert.True(t, IsNoStatusFilter(StatusAll))
	assert.False(t, IsNoStatusFilter("all"))
	assert.False(t, IsNoStatusFilter(StatusPending))
}

func TestUserOwnsComparesByID(t *testing.T) {
	alice := NewUser("a@x.com", "hash")
	copyOfAlice := &User{Id: alice.Id}
	bob := NewUser("b@x.com", "hash")
	todo := NewTodo(alice.Id, "T1", "", nil, nil, time.Now())

	assert.True(t, alice.Owns(todo))
	assert.True(t, copyOfAlice.Owns(todo))
	assert.False(t, bob.Owns(todo))
	assert.False(t, alice.Owns(nil))
}

func TestNewValidatedUser(t *testing.T) {
	_, err := NewValidatedUser(NewUser("", "hash"))
	require.Error(t, err)

	_, err = NewValidatedUser(NewUser("a@x.com", ""))
	require.Error(t, err)

	vu, err := NewValidatedUser(NewUser("a@x.com", "hash"))
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", vu.GetUser().Email)
}
