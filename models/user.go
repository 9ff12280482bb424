package models

import (
	"time"
)

type Role string

const (
	AdminRole Role = "ADMIN"
	UserRole  Role = "USER"
)

// User represents an account in the database
// @Description Full user model
type User struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email      string     `json:"email" gorm:"uniqueIndex" binding:"required,email"`
	Password   string     `json:"password,omitempty" binding:"required,min=6"`
	UserName   string     `json:"username"`
	Role       Role       `json:"role" gorm:"type:varchar(20);default:'USER'"`
	GmailToken string     `json:"-" gorm:"type:text"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty" gorm:"index" swaggerignore:"true"`
}

func (User) TableName() string {
	return "users"
}

// UserCreate model for the register endpoint
type UserCreate struct {
	Email    string `json:"email" binding:"required,email" example:"nafhan@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
	UserName string `json:"username" example:"nafhan"`
}

// UserLogin model for the login endpoint
type UserLogin struct {
	Email    string `json:"email" binding:"required,email" example:"nafhan@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}
