package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	CreatedAt    time.Time
	Email        string
	PasswordHash string
}

// NewUser builds a user from an already hashed password.
func NewUser(email, passwordHash string) *User {
	return &User{
		Id:           uuid.New(),
		CreatedAt:    time.Now(),
		Email:        email,
		PasswordHash: passwordHash,
	}
}

func (u *User) validate() error {
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if u.PasswordHash == "" {
		return errors.New("password hash must not be empty")
	}
	return nil
}

// Owns reports whether the todo belongs to u. Identity is compared by id.
func (u *User) Owns(todo *Todo) bool {
	return todo != nil && todo.UserId == u.Id
}
