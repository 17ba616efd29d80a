package model

import (
	"time"
)

// UserLock represents a cross-instance lock on a user while a trade runs
type UserLock struct {
	UserID    string    `gorm:"primaryKey;size:42"`
	Owner     string    `gorm:"not null;size:64"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for UserLock
func (UserLock) TableName() string {
	return "user_locks"
}
