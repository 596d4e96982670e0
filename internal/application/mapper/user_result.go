package mapper

import (
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/common"
	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:        user.Id,
		CreatedAt: user.CreatedAt,
		Email:     user.Email,
	}
}
