package util

import (
	"testing"
	"time"

	"phish_trainer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Username: "anna", Role: model.TestSubject}
	user.ID = 7

	token, err := GenerateJWT(user, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "anna", claims.Username)
	assert.Equal(t, model.TestSubject, claims.Role)
}

func TestParseJWTRejects(t *testing.T) {
	user := &model.User{Username: "anna"}

	token, err := GenerateJWT(user, "secret", time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)

	expired, err := GenerateJWT(user, "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired, "secret")
	assert.Error(t, err)

	_, err = ParseJWT("not-a-token", "secret")
	assert.Error(t, err)
}

func TestMustParseUint(t *testing.T) {
	assert.Equal(t, uint(12), MustParseUint("12"))
	assert.Equal(t, uint(0), MustParseUint("x"))
}
