package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speaker-booking/models/user"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPassword("s3cret", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	u := &user.User{
		ID:       1,
		Uuid:     "11111111-2222-3333-4444-555555555555",
		UserType: user.UserTypeSpeaker,
	}

	token, err := GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.Uuid, claims["uuid"])
	assert.Equal(t, "speaker", claims["user_type"])
}

func TestParseTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	u := &user.User{ID: 1, Uuid: "abc", UserType: user.UserTypeUser}
	token, err := GenerateToken(u)
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	u := &user.User{ID: 1, Uuid: "abc", UserType: user.UserTypeUser}
	token, err := GenerateToken(u)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}
