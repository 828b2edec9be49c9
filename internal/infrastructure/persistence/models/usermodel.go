package models

import (
	"ticketdesk/internal/shared/constants"
)

// UserModel represents the database persistence model for users.
// Password holds a bcrypt hash.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:100;not null"`
	Password  string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255"`
	Role      string `gorm:"size:50;index"`
	CreatedAt int64  `gorm:"autoCreateTime:false;not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
