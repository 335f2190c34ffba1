package domain

import "time"

type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	IsPremium         bool      `json:"isPremium"`
	IsEmailVerified   bool      `json:"emailVerified"`
	VerificationToken string    `json:"-"`
	CreatedAt         time.Time `json:"createdAt"`
}

// UserStats mirrors the dashboard stats payload.
type UserStats struct {
	Email         string    `json:"email"`
	FirstName     string    `json:"firstName"`
	TotalResumes  int       `json:"totalResumes"`
	Templates     []string  `json:"templates"`
	IsPremium     bool      `json:"isPremium"`
	EmailVerified bool      `json:"emailVerified"`
	MemberSince   time.Time `json:"memberSince"`
}
