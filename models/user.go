package models

import (
	"time"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:80;not null"`
	Email        *string   `json:"email" gorm:"uniqueIndex;size:160"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Rol          string    `json:"rol" gorm:"size:20;not null;default:'admin'"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (User) TableName() string { return "usuarios" }

// PasswordReset is a single-use token for the forgot-password flow.
type PasswordReset struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Token     string    `json:"-" gorm:"uniqueIndex;size:64;not null"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (PasswordReset) TableName() string { return "password_resets" }

func (p *PasswordReset) Valid(now time.Time) bool {
	return !p.Used && now.Before(p.ExpiresAt)
}
