package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session binding inside a signed token. The role gate
// never trusts the Role claim for authorization; it re-reads the live role
// from the session snapshot on every action.
type Claims struct {
	SessionID string   `json:"sid"`
	UserID    string   `json:"uid"`
	Role      UserRole `json:"role"`
	jwt.RegisteredClaims
}
