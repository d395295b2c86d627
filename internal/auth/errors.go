package auth

import "errors"

var (
	ErrTokenInvalid     = errors.New("the token is invalid")
	ErrTokenExpired     = errors.New("the token has expired")
	ErrUnauthenticated  = errors.New("you need to be logged in to do this")
	ErrUserInactive     = errors.New("this user has been deactivated")
	ErrSecretKeyMissing = errors.New("no secret key is configured")
)
