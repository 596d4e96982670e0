package gormdb

import (
	"time"

	"github.com/google/uuid"
)

// TodoModel keeps the owner as a plain foreign key. User is only declared so
// migrations create the constraint; it is never loaded.
type TodoModel struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"not null"`
	Description string
	Status      string     `gorm:"not null;index:idx_todos_user_status,priority:2"`
	CreatedAt   time.Time  `gorm:"not null"`
	UserId      uuid.UUID  `gorm:"type:uuid;not null;index:idx_todos_user_status,priority:1"`
	User        *UserModel `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (TodoModel) TableName() string {
	return "todos"
}
