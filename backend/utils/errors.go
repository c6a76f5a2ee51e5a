package utils

import "errors"

var (
	ErrRoleMissing   = errors.New("role is missing in request header")
	ErrRoleForbidden = errors.New("access forbidden: user does not have the required role")
)
