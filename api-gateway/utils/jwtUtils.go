package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims matches the access tokens users-service signs.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// demoTokens are the fixed tokens handed out to the demo accounts.
var demoTokens = map[string]string{
	"fake-admin-token":   "Admin",
	"fake-planner-token": "Planner",
	"fake-viewer-token":  "Viewer",
}

type TokenValidator struct {
	secret []byte
}

func NewTokenValidator(secret string) *TokenValidator {
	return &TokenValidator{secret: []byte(secret)}
}

// RoleFor resolves a bearer token to its role. Demo tokens map directly, anything
// else must be an HS256 JWT signed with the shared secret.
func (v *TokenValidator) RoleFor(tokenString string) (string, error) {
	if role, ok := demoTokens[tokenString]; ok {
		return role, nil
	}

	claims, err := v.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Role, nil
}

func (v *TokenValidator) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
