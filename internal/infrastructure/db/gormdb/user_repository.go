package gormdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/apperrors"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/entities"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/repositories"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := UserModel{
		Id:           userEntity.Id,
		CreatedAt:    userEntity.CreatedAt.UTC(),
		Email:        userEntity.Email,
		PasswordHash: userEntity.PasswordHash,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Wrap(apperrors.KindConflict, "email already exists", err)
		}
		return nil, err
	}

	// Read back the created user to ensure data integrity
	return r.FindById(ctx, userEntity.Id)
}

func (r *UserRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:           userModel.Id,
		CreatedAt:    userModel.CreatedAt,
		Email:        userModel.Email,
		PasswordHash: userModel.PasswordHash,
	}
}
