package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleForDemoTokens(t *testing.T) {
	v := NewTokenValidator("secret")

	for token, want := range map[string]string{
		"fake-admin-token":   "Admin",
		"fake-planner-token": "Planner",
		"fake-viewer-token":  "Viewer",
	} {
		role, err := v.RoleFor(token)
		require.NoError(t, err)
		assert.Equal(t, want, role)
	}

	_, err := v.RoleFor("fake-root-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsOtherAlgorithms(t *testing.T) {
	v := NewTokenValidator("secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		Role:             "Admin",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	s, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = v.ValidateToken(s)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenClaims(t *testing.T) {
	v := NewTokenValidator("secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Email:            "sam@example.com",
		Role:             "team-lead",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "7", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	s, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	claims, err := v.ValidateToken(s)
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", claims.Email)
	assert.Equal(t, "team-lead", claims.Role)
	assert.Equal(t, "7", claims.Subject)
}
