package models

import "time"

type User struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement;column:userid" json:"userid"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}
