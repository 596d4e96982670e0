package gormdb

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
