package command

import "github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/application/common"

type RegisterUserCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterUserCommandResult struct {
	Token string             `json:"token"`
	User  *common.UserResult `json:"user"`
}
