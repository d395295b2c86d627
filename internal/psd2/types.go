package psd2

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Consent is the result of creating a consent.
type Consent struct {
	ConsentID string
	// AuthoriseURL is the URL the account holder needs to visit. It lacks the
	// state parameter, which the caller appends.
	AuthoriseURL string
}

// Token is an access token issued by the bank.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// ConsentStatus is the status of a consent as reported by the bank.
type ConsentStatus struct {
	Status     string
	ValidUntil time.Time
}

// Valid reports if the bank considers the consent valid.
func (s ConsentStatus) Valid() bool {
	return s.Status == "valid"
}

// Account is an account the consent grants access to.
type Account struct {
	ResourceID string `json:"resourceId"`
	IBAN       string `json:"iban"`
	Currency   string `json:"currency"`
	Name       string `json:"name"`
}

type consentAccess struct {
	Accounts                      []accountReference `json:"accounts"`
	Balances                      []accountReference `json:"balances"`
	Transactions                  []accountReference `json:"transactions"`
	AvailableAccounts             *string            `json:"availableAccounts"`
	AvailableAccountsWithBalances *string            `json:"availableAccountsWithBalances"`
	AllPsd2                       *string            `json:"allPsd2"`
}

type accountReference struct {
	IBAN     string `json:"iban"`
	Currency string `json:"currency"`
}

type consentRequest struct {
	Access                   consentAccess `json:"access"`
	CombinedServiceIndicator bool          `json:"combinedServiceIndicator"`
	RecurringIndicator       bool          `json:"recurringIndicator"`
	ValidUntil               string        `json:"validUntil"`
	FrequencyPerDay          int           `json:"frequencyPerDay"`
}

type consentResponse struct {
	ConsentID     string `json:"consentId"`
	ConsentStatus string `json:"consentStatus"`
}

type consentStatusResponse struct {
	ConsentStatus string `json:"consentStatus"`
	ValidUntil    string `json:"validUntil"`
}

type accountsResponse struct {
	Accounts []Account `json:"accounts"`
}

// ValidateIBAN checks that the IBAN is a Dutch IBAN of this bank:
// it starts with NL, has the bank code BNG and ends in digits.
func ValidateIBAN(iban string) error {
	if len(iban) < 9 || !strings.HasPrefix(iban, "NL") || iban[4:7] != "BNG" {
		return fmt.Errorf("%s %w", iban, ErrInvalidIBAN)
	}

	for _, r := range iban[8:] {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("%s %w", iban, ErrInvalidIBAN)
		}
	}

	return nil
}
