package models

import (
	"github.com/carebridge/eldercare-backend/pkg/enums"
)

// User is the single persistent entity: both guardians and elders live in
// the users table. GuardianID is a same-table back-reference and is non-nil
// exactly when Role is elder; it is set at signup and never mutated.
type User struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	FullName     string     `gorm:"column:fullname;not null"`
	Age          *int       `gorm:"column:age"`
	Username     string     `gorm:"column:username;not null;uniqueIndex:idx_users_username"`
	Phone        *string    `gorm:"column:phone"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Role         enums.Role `gorm:"column:role;type:text;not null"`
	GuardianID   *int64     `gorm:"column:guardian_id"`
}

// TableName pins the table name regardless of GORM pluralization settings.
func (User) TableName() string {
	return "users"
}
