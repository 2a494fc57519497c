package auth

import (
	"github.com/carebridge/eldercare-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

// SessionPayload captures the data bound into a session cookie at login.
type SessionPayload struct {
	UserID int64
	Role   enums.Role
	Name   string
}

// SessionClaims is the typed JWT carried in the session cookie.
type SessionClaims struct {
	UserID int64      `json:"user_id"`
	Role   enums.Role `json:"role"`
	Name   string     `json:"name"`
	jwt.RegisteredClaims
}
