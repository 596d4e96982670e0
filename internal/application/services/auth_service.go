package services

import (
	"context"
	"fmt"

	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/command"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/interfaces"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/mapper"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/apperrors"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/entities"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/repositories"
)

type AuthService struct {
	userRepo repositories.UserRepository
	hasher   interfaces.PasswordHasher
	tokens   interfaces.TokenService
}

func NewAuthService(
	userRepo repositories.UserRepository,
	hasher interfaces.PasswordHasher,
	tokens interfaces.TokenService,
) interfaces.AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// RegisterUser is create-only: an existing email is a conflict, never an update.
func (s *AuthService) RegisterUser(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	if registerCommand.Email == "" || registerCommand.Password == "" {
		return nil, apperrors.New(apperrors.KindInvalid, "email and password are required")
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, registerCommand.Email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if existingUser != nil {
		return nil, apperrors.New(apperrors.KindConflict, "email already exists")
	}

	passwordHash, err := s.hasher.Hash(registerCommand.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	validatedUser, err := entities.NewValidatedUser(entities.NewUser(registerCommand.Email, passwordHash))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalid, "invalid user", err)
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(createdUser)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &command.RegisterUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

// LoginUser issues a fresh token and does not touch stored state. Unknown email
// and wrong password fail the same way.
func (s *AuthService) LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, loginCommand.Email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if user == nil {
		return nil, apperrors.New(apperrors.KindUnauthenticated, "invalid credentials")
	}

	if !s.hasher.Verify(loginCommand.Password, user.PasswordHash) {
		return nil, apperrors.New(apperrors.KindUnauthenticated, "invalid credentials")
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}
