package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	inviteValidity = 24 * time.Hour
	inviteURLPath  = "/reset-wachtwoord/"
)

// Audiences of the token types. A token is only accepted for the audience
// it was issued for.
const (
	AudienceAPI          = "api"
	AudienceInvite       = "invite"
	AudienceConsentState = "consent-state"
)

// Tokens issues and verifies HS256 tokens signed with the deployment secret.
type Tokens struct {
	secret []byte
	now    func() time.Time
}

func NewTokens(secret string) Tokens {
	return Tokens{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// WithClock returns a copy of t that uses now as the current time.
func (t Tokens) WithClock(now func() time.Time) Tokens {
	t.now = now
	return t
}

// Now returns the current time of t's clock.
func (t Tokens) Now() time.Time {
	return t.now()
}

// Sign signs the claims.
func (t Tokens) Sign(claims jwt.Claims) (string, error) {
	if len(t.secret) == 0 {
		return "", ErrSecretKeyMissing
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// Parse verifies the token and decodes it into claims. Tokens without
// expiry or issued for another audience are rejected.
func (t Tokens) Parse(token, audience string, claims jwt.Claims) error {
	if len(t.secret) == 0 {
		return ErrSecretKeyMissing
	}

	keyFunc := func(*jwt.Token) (any, error) {
		return t.secret, nil
	}

	_, err := jwt.ParseWithClaims(token, claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(t.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrTokenExpired
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return nil
}

// UserClaims identify the user making a request.
type UserClaims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// UserToken returns a bearer token for the user, valid for the duration.
func (t Tokens) UserToken(userID uuid.UUID, validity time.Duration) (string, error) {
	return t.Sign(UserClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{AudienceAPI},
			ExpiresAt: jwt.NewNumericDate(t.now().Add(validity)),
			IssuedAt:  jwt.NewNumericDate(t.now()),
		},
	})
}

// ParseUserToken returns the ID of the user the token was issued for.
func (t Tokens) ParseUserToken(token string) (uuid.UUID, error) {
	var claims UserClaims
	if err := t.Parse(token, AudienceAPI, &claims); err != nil {
		return uuid.Nil, err
	}

	if claims.UserID == uuid.Nil {
		return uuid.Nil, ErrTokenInvalid
	}

	return claims.UserID, nil
}

// InviteClaims allow a user to set their password.
type InviteClaims struct {
	ResetPassword uuid.UUID `json:"reset_password"`
	jwt.RegisteredClaims
}

// InviteLink returns the link a new user visits to set their password. It
// is valid for 24 hours.
func (t Tokens) InviteLink(baseURL string, userID uuid.UUID) (string, error) {
	token, err := t.Sign(InviteClaims{
		ResetPassword: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{AudienceInvite},
			ExpiresAt: jwt.NewNumericDate(t.now().Add(inviteValidity)),
		},
	})
	if err != nil {
		return "", err
	}

	return strings.TrimRight(baseURL, "/") + inviteURLPath + token, nil
}

// ParseInvite returns the user ID of an invite token.
func (t Tokens) ParseInvite(token string) (uuid.UUID, error) {
	var claims InviteClaims
	if err := t.Parse(token, AudienceInvite, &claims); err != nil {
		return uuid.Nil, err
	}

	return claims.ResetPassword, nil
}
