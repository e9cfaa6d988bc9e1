package models

import "github.com/google/uuid"

// User is the minimal identity record. No route exposes it; the table exists
// for the admin tooling that manages inventory out of band.
type User struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Username string    `gorm:"column:username;type:text;not null;uniqueIndex"`
	Password string    `gorm:"column:password;not null"`
}
