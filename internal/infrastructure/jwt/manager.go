package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/samikassu/crewboard/internal/domain/entity"
	"github.com/samikassu/crewboard/internal/usecase"
)

// SessionTokenManager signs and verifies the session tokens that bind HTTP
// requests to a live session. The Role claim is informational only; every
// authorization decision re-reads the live role from the session snapshot.
type SessionTokenManager struct {
	secret []byte
	expiry time.Duration
}

// NewSessionTokenManager creates a manager with the given signing secret.
func NewSessionTokenManager(secret string, expiry time.Duration) *SessionTokenManager {
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &SessionTokenManager{secret: []byte(secret), expiry: expiry}
}

// Ensure SessionTokenManager implements usecase.TokenService
var _ usecase.TokenService = (*SessionTokenManager)(nil)

// GenerateSessionToken issues a signed token for a session.
func (m *SessionTokenManager) GenerateSessionToken(sessionID, userID string, role entity.UserRole) (string, error) {
	now := time.Now()
	claims := &entity.Claims{
		SessionID: sessionID,
		UserID:    userID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken validates a token and returns its claims.
func (m *SessionTokenManager) ParseSessionToken(tokenStr string) (*entity.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &entity.Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	claims, ok := token.Claims.(*entity.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token claims")
	}
	return claims, nil
}
