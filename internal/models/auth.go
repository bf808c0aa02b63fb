package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthAccount is an identity-provider account: credentials only, no profile
// data. Its ID is the opaque reference handed back to the user service.
// Accounts never cross the HTTP boundary, so the hash may carry a json tag
// for the blob store.
type AuthAccount struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"passwordHash"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// LoginRequest holds credentials for starting a session.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse returns the issued session token.
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresIn   int64     `json:"expiresIn"`
	IssuedAt    time.Time `json:"issuedAt"`
	Email       string    `json:"email"`
}

// JWTClaims is the session token payload.
type JWTClaims struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}
