package consent

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/openpoen/backend/internal/auth"
)

const stateValidity = 30 * time.Minute

// StateClaims tie the bank callback to the user that started linking the
// account and the consent that was created for it.
type StateClaims struct {
	UserID    uuid.UUID `json:"user_id"`
	IBAN      string    `json:"iban"`
	BankName  string    `json:"bank_name"`
	ConsentID string    `json:"consent_id"`
	jwt.RegisteredClaims
}

func (o *Orchestrator) signState(userID uuid.UUID, iban, consentID string) (string, error) {
	return o.tokens.Sign(StateClaims{
		UserID:    userID,
		IBAN:      iban,
		BankName:  o.bankName,
		ConsentID: consentID,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{auth.AudienceConsentState},
			ExpiresAt: jwt.NewNumericDate(o.tokens.Now().Add(stateValidity)),
		},
	})
}

func (o *Orchestrator) parseState(state string) (StateClaims, error) {
	var claims StateClaims
	err := o.tokens.Parse(state, auth.AudienceConsentState, &claims)
	if errors.Is(err, auth.ErrTokenExpired) {
		return StateClaims{}, ErrStateExpired
	}
	if err != nil {
		return StateClaims{}, ErrStateInvalid
	}

	if claims.UserID == uuid.Nil || claims.ConsentID == "" || claims.IBAN == "" {
		return StateClaims{}, ErrStateInvalid
	}

	return claims, nil
}
