package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/samikassu/crewboard/internal/domain/entity"
	"github.com/samikassu/crewboard/internal/infrastructure/jwt"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	m := jwt.NewSessionTokenManager("test-secret", time.Hour)

	token, err := m.GenerateSessionToken("s1", "u1", entity.UserRoleBoy)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := m.ParseSessionToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "s1", claims.SessionID)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, entity.UserRoleBoy, claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := jwt.NewSessionTokenManager("secret-a", time.Hour)
	other := jwt.NewSessionTokenManager("secret-b", time.Hour)

	token, err := m.GenerateSessionToken("s1", "u1", entity.UserRoleBoy)
	assert.NoError(t, err)

	_, err = other.ParseSessionToken(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := jwt.NewSessionTokenManager("test-secret", time.Hour)

	_, err := m.ParseSessionToken("not-a-token")
	assert.Error(t, err)
}
