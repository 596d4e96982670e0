package interfaces

import (
	"context"

	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/command"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/entities"
)

type AuthService interface {
	RegisterUser(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
}

// PasswordHasher hashes and verifies passwords. Hash is salted, so two hashes of
// the same password differ; only Verify may be used to compare.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenService issues bearer tokens and resolves them back to the user's email.
type TokenService interface {
	GenerateToken(user *entities.User) (string, error)
	ValidateToken(token string) (string, error)
}
