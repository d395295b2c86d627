package consent

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/openpoen/backend/internal/auth"
	"github.com/openpoen/backend/internal/config"
	"github.com/openpoen/backend/internal/ingest"
	"github.com/openpoen/backend/internal/models"
	"github.com/openpoen/backend/internal/psd2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Bank is the part of the bank API needed to manage the consent.
type Bank interface {
	CreateConsent(ctx context.Context, iban string, validUntil time.Time) (psd2.Consent, error)
	ExchangeCode(ctx context.Context, code string) (psd2.Token, error)
	RefreshToken(ctx context.Context, refreshToken string) (psd2.Token, error)
	ReadConsentStatus(ctx context.Context, consentID, accessToken string) (psd2.ConsentStatus, error)
	RevokeConsent(ctx context.Context, consentID, accessToken string) error
}

// Ingester imports the transactions of the linked account.
type Ingester interface {
	Ingest(ctx context.Context) error
}

// Orchestrator manages the lifecycle of the consent for the linked bank
// account.
type Orchestrator struct {
	db           *gorm.DB
	bank         Bank
	ingester     Ingester
	tokens       auth.Tokens
	bankName     string
	expiringDays int
	loc          *time.Location
}

func New(db *gorm.DB, bank Bank, ingester Ingester, c config.Config) *Orchestrator {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}

	return &Orchestrator{
		db:           db,
		bank:         bank,
		ingester:     ingester,
		tokens:       auth.NewTokens(c.SecretKey),
		bankName:     c.Bank.Name,
		expiringDays: c.ConsentExpiringDays,
		loc:          loc,
	}
}

// WithClock sets the function used to determine the current time.
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.tokens = o.tokens.WithClock(now)
	return o
}

func (o *Orchestrator) now() time.Time {
	return o.tokens.Now().In(o.loc)
}

// BeginLink creates a consent for the IBAN and returns the URL the user
// needs to visit to authorise it. The URL carries a signed state token that
// HandleCallback verifies.
func (o *Orchestrator) BeginLink(ctx context.Context, user models.User, iban string, validUntil time.Time) (string, error) {
	if !user.Admin {
		return "", models.ErrPermissionDenied
	}

	if err := psd2.ValidateIBAN(iban); err != nil {
		return "", err
	}

	if !validUntil.After(o.now()) {
		return "", ErrValidUntil
	}

	accounts, err := models.LinkedBankAccounts(o.db.WithContext(ctx))
	if err != nil {
		return "", err
	}
	if len(accounts) > 0 {
		return "", ErrAlreadyLinked
	}

	consent, err := o.bank.CreateConsent(ctx, iban, validUntil)
	if err != nil {
		return "", err
	}

	state, err := o.signState(user.ID, iban, consent.ConsentID)
	if err != nil {
		return "", err
	}

	log.Info().Str("iban", iban).Str("consent", consent.ConsentID).Str("user", user.ID.String()).Msg("Consent created, awaiting authorisation")
	return consent.AuthoriseURL + "&state=" + url.QueryEscape(state), nil
}

// HandleCallback finishes linking after the user authorised the consent at
// the bank. The state token is verified before anything else happens.
//
// If the initial ingestion fails, the account stays linked and an error
// wrapping ErrIngestDeferred is returned together with the account.
func (o *Orchestrator) HandleCallback(ctx context.Context, user models.User, code, state string) (models.BankAccount, error) {
	if !user.Admin {
		return models.BankAccount{}, models.ErrPermissionDenied
	}

	claims, err := o.parseState(state)
	if err != nil {
		return models.BankAccount{}, err
	}

	if claims.UserID != user.ID {
		return models.BankAccount{}, ErrStateInvalid
	}

	if code == "" {
		return models.BankAccount{}, ErrStateInvalid
	}

	accounts, err := models.LinkedBankAccounts(o.db.WithContext(ctx))
	if err != nil {
		return models.BankAccount{}, err
	}
	if len(accounts) > 0 {
		return models.BankAccount{}, ErrAlreadyLinked
	}

	token, err := o.bank.ExchangeCode(ctx, code)
	if err != nil {
		return models.BankAccount{}, err
	}

	account := models.BankAccount{
		UserID:       user.ID,
		IBAN:         claims.IBAN,
		BankName:     claims.BankName,
		ConsentID:    claims.ConsentID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresOn:    o.now().Add(time.Duration(token.ExpiresIn) * time.Second).UTC(),
	}

	err = o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accounts, err := models.LinkedBankAccounts(tx)
		if err != nil {
			return err
		}
		if len(accounts) > 0 {
			return ErrAlreadyLinked
		}

		return tx.Create(&account).Error
	})
	if err != nil {
		return models.BankAccount{}, err
	}
	log.Info().Str("iban", account.IBAN).Time("expires", account.ExpiresOn).Msg("Bank account linked")

	if o.ingester == nil {
		return account, nil
	}

	if err := o.ingester.Ingest(ctx); err != nil {
		log.Error().Err(err).Msg("Initial ingestion failed")
		return account, fmt.Errorf("%w: %w", ErrIngestDeferred, err)
	}

	return account, nil
}

// Unlink revokes the consent at the bank and removes the linked account.
func (o *Orchestrator) Unlink(ctx context.Context, user models.User) error {
	if !user.Admin {
		return models.ErrPermissionDenied
	}

	account, err := o.account(ctx)
	if err != nil {
		return err
	}

	if err := o.bank.RevokeConsent(ctx, account.ConsentID, account.AccessToken); err != nil {
		return err
	}

	err = o.db.WithContext(ctx).Unscoped().Delete(&account).Error
	if err != nil {
		return err
	}

	log.Info().Str("iban", account.IBAN).Str("user", user.ID.String()).Msg("Bank account unlinked")
	return nil
}

// Refresh renews the access token when the consent is about to expire and
// the bank issued a refresh token. It reports if the token was renewed.
func (o *Orchestrator) Refresh(ctx context.Context) (bool, error) {
	account, err := o.account(ctx)
	if err != nil {
		return false, err
	}

	if account.RefreshToken == "" || DaysLeft(account.ExpiresOn, o.now()) >= o.expiringDays {
		return false, nil
	}

	token, err := o.bank.RefreshToken(ctx, account.RefreshToken)
	if err != nil {
		return false, err
	}

	updates := map[string]any{
		"access_token": token.AccessToken,
		"expires_on":   o.now().Add(time.Duration(token.ExpiresIn) * time.Second).UTC(),
	}
	if token.RefreshToken != "" {
		updates["refresh_token"] = token.RefreshToken
	}

	err = o.db.WithContext(ctx).Model(&account).Updates(updates).Error
	if err != nil {
		return false, err
	}

	log.Info().Str("iban", account.IBAN).Msg("Access token refreshed")
	return true, nil
}

// account returns the linked bank account.
func (o *Orchestrator) account(ctx context.Context) (models.BankAccount, error) {
	accounts, err := models.LinkedBankAccounts(o.db.WithContext(ctx))
	if err != nil {
		return models.BankAccount{}, err
	}

	switch len(accounts) {
	case 0:
		return models.BankAccount{}, ErrNoLinkedAccount
	case 1:
		return accounts[0], nil
	default:
		return models.BankAccount{}, fmt.Errorf("%w: %d bank accounts are linked", ingest.ErrMisconfigured, len(accounts))
	}
}
