package domain

import "time"

// Admin is a reviewer allowed to inspect interviews and change runtime config.
type Admin struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// AdminClaims is the identity carried by a verified bearer token.
type AdminClaims struct {
	AdminID   string
	Email     string
	ExpiresAt time.Time
}
