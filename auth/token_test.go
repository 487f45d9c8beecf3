package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken(&Claims{Role: RoleJudge, JudgeId: 4, EventId: 2})
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleJudge, claims.Role)
	assert.Equal(t, 4, claims.JudgeId)
	assert.Equal(t, 2, claims.EventId)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := CreateToken(&Claims{Role: RoleAdmin, Exp: time.Now().Add(-time.Hour).Unix()})
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsJudgeWithoutJudgeId(t *testing.T) {
	token, err := CreateToken(&Claims{Role: RoleJudge, EventId: 1})
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestAllows(t *testing.T) {
	admin := &Claims{Role: RoleAdmin}
	coordinator := &Claims{Role: RoleCoordinator}
	judge := &Claims{Role: RoleJudge, JudgeId: 1, EventId: 1}

	assert.True(t, admin.Allows([]Role{RoleJudge}))
	assert.True(t, coordinator.Allows([]Role{RoleAdmin, RoleCoordinator}))
	assert.False(t, coordinator.Allows([]Role{RoleAdmin}))
	assert.False(t, judge.Allows([]Role{RoleCoordinator}))
	assert.True(t, judge.Allows(nil))
}
