// Package model holds the GORM persistence models. They never leave the infra layer.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table created by migration 00001.
// Timestamps are written by the repository, not by GORM hooks.
type UserModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex:users_email_key;not null"`
	Username       string    `gorm:"type:varchar(50);uniqueIndex:users_username_key;not null"`
	HashedPassword string    `gorm:"column:hashed_password;type:varchar(255);not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false;not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
