package domain

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Email        string
	SchoolName   string
	Profile      string
	CreatedAt    time.Time
}
