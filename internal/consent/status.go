package consent

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

type State string

const (
	StateUnlinked              State = "unlinked"
	StateAwaitingAuthorisation State = "awaiting-authorisation"
	StateLinked                State = "linked"
	StateExpiring              State = "expiring"
	StateRevoked               State = "revoked"
)

// Colour is the traffic light colour the interface shows for a value.
type Colour string

const (
	ColourGreen Colour = "green"
	ColourAmber Colour = "amber"
	ColourRed   Colour = "red"
	ColourGrey  Colour = "grey"
)

// Status describes the linked account as shown to administrators.
type Status struct {
	State            State      `json:"state" example:"linked"`
	IBAN             string     `json:"iban" example:"NL91BNGH0417164300"`
	BankName         string     `json:"bankName" example:"BNG"`
	Online           bool       `json:"online" example:"true"` // The bank reported the consent as valid
	ValidUntil       *time.Time `json:"validUntil" example:"2023-12-31T00:00:00Z"`
	DaysLeft         int        `json:"daysLeft" example:"42"`
	DaysLeftColour   Colour     `json:"daysLeftColour" example:"green"`
	LastImportOn     *time.Time `json:"lastImportOn" example:"2023-10-01T06:00:12Z"`
	LastImportColour Colour     `json:"lastImportColour" example:"green"`
}

// Bank statuses of consents that can not be used anymore.
var revoked = map[string]bool{
	"revokedByPsu":    true,
	"terminatedByTpp": true,
}

// DaysLeft returns the number of whole days until t, 0 if t has passed.
func DaysLeft(t, now time.Time) int {
	return max(int(t.Sub(now).Hours()/24), 0)
}

// DaysLeftColour returns red for less than 4 days, amber for less than 11
// days and green otherwise.
func DaysLeftColour(days int) Colour {
	switch {
	case days < 4:
		return ColourRed
	case days < 11:
		return ColourAmber
	default:
		return ColourGreen
	}
}

// LastImportColour returns green when the last import happened less than
// 3 hours ago, amber for less than 8 hours and red otherwise. Without any
// import, it is grey.
func LastImportColour(lastImport *time.Time, now time.Time) Colour {
	if lastImport == nil {
		return ColourGrey
	}

	since := now.Sub(*lastImport)
	switch {
	case since < 3*time.Hour:
		return ColourGreen
	case since < 8*time.Hour:
		return ColourAmber
	default:
		return ColourRed
	}
}

// Status returns the status of the linked account. The consent status is
// requested from the bank. If the bank is unavailable, the account is
// reported offline and the expiry stored locally is used.
//
// The account is expiring when the consent is not valid, or when either the
// consent or the access token expire within the configured number of days.
func (o *Orchestrator) Status(ctx context.Context) (Status, error) {
	account, err := o.account(ctx)
	if errors.Is(err, ErrNoLinkedAccount) {
		return Status{State: StateUnlinked}, nil
	}
	if err != nil {
		return Status{}, err
	}

	now := o.now()
	validUntil := account.ExpiresOn
	s := Status{
		State:        StateLinked,
		IBAN:         account.IBAN,
		BankName:     account.BankName,
		LastImportOn: account.LastImportOn,
	}

	consent, err := o.bank.ReadConsentStatus(ctx, account.ConsentID, account.AccessToken)
	if err != nil {
		log.Warn().Err(err).Str("iban", account.IBAN).Msg("Could not read consent status")
	} else {
		s.Online = consent.Valid()
		if !consent.ValidUntil.IsZero() {
			validUntil = consent.ValidUntil
		}
	}

	s.ValidUntil = &validUntil
	s.DaysLeft = DaysLeft(validUntil, now)
	s.DaysLeftColour = DaysLeftColour(s.DaysLeft)
	s.LastImportColour = LastImportColour(account.LastImportOn, now)

	switch {
	case err == nil && revoked[consent.Status]:
		s.State = StateRevoked
	case err == nil && !consent.Valid(), s.DaysLeft < o.expiringDays, DaysLeft(account.ExpiresOn, now) < o.expiringDays:
		s.State = StateExpiring
	}

	return s, nil
}
