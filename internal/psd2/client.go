package psd2

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openpoen/backend/internal/config"
	"github.com/rs/zerolog/log"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded;charset=UTF-8"
	dateFormat      = "2006-01-02"
)

// Client is a client for the account information endpoints of the bank.
// It is stateless apart from the shared HTTP client and safe for concurrent use.
type Client struct {
	bank   config.Bank
	signer Signer
	http   *http.Client
	now    func() time.Time
}

type Option func(*Client)

// WithHTTPClient replaces the mutually authenticated HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithClock sets the function used to determine the Date header.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a client for the bank. Unless an HTTP client is passed in
// with WithHTTPClient, the TLS client certificate is loaded from disk.
func NewClient(bank config.Bank, opts ...Option) (*Client, error) {
	c := &Client{
		bank:   bank,
		signer: NewSigner(bank),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		cert, err := tls.LoadX509KeyPair(bank.TLSCertFile, bank.TLSKeyFile)
		if err != nil {
			return nil, fmt.Errorf("%w: could not load TLS client certificate: %w", ErrConfig, err)
		}

		c.http = &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					Certificates: []tls.Certificate{cert},
					MinVersion:   tls.VersionTLS12,
				},
			},
		}
	}

	return c, nil
}

// CreateConsent requests a consent for reading account information,
// balances and transactions of the IBAN until validUntil.
func (c *Client) CreateConsent(ctx context.Context, iban string, validUntil time.Time) (Consent, error) {
	if err := ValidateIBAN(iban); err != nil {
		return Consent{}, err
	}

	accounts := []accountReference{{IBAN: iban, Currency: "EUR"}}
	body, err := json.Marshal(consentRequest{
		Access: consentAccess{
			Accounts:     accounts,
			Balances:     accounts,
			Transactions: accounts,
		},
		CombinedServiceIndicator: false,
		RecurringIndicator:       true,
		ValidUntil:               validUntil.Format(dateFormat),
		FrequencyPerDay:          4,
	})
	if err != nil {
		return Consent{}, err
	}

	var r consentResponse
	err = c.call(ctx, "createConsent", http.MethodPost, c.bank.APIURL+"/consents", body, contentTypeJSON, nil, http.StatusCreated, &r)
	if err != nil {
		return Consent{}, err
	}

	if r.ConsentID == "" {
		return Consent{}, fmt.Errorf("%w: createConsent returned no consent ID", ErrBankUnavailable)
	}

	query := url.Values{
		"response_type":         {"code"},
		"client_id":             {c.bank.ClientID},
		"scope":                 {"AIS:" + r.ConsentID},
		"code_challenge":        {c.bank.CodeVerifier},
		"code_challenge_method": {"Plain"},
		"redirect_uri":          {c.bank.RedirectURL},
	}

	return Consent{
		ConsentID:    r.ConsentID,
		AuthoriseURL: c.bank.AuthoriseURL + "?" + query.Encode(),
	}, nil
}

// ExchangeCode exchanges the authorisation code from the redirect for an access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (Token, error) {
	return c.token(ctx, "exchangeCode", url.Values{
		"client_id":     {c.bank.ClientID},
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"code_verifier": {c.bank.CodeVerifier},
		"redirect_uri":  {c.bank.RedirectURL},
	})
}

// RefreshToken exchanges a refresh token for a new access token.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (Token, error) {
	return c.token(ctx, "refreshToken", url.Values{
		"client_id":     {c.bank.ClientID},
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	})
}

func (c *Client) token(ctx context.Context, op string, form url.Values) (Token, error) {
	var t Token
	err := c.call(ctx, op, http.MethodPost, c.bank.TokenURL, []byte(form.Encode()), contentTypeForm, nil, http.StatusOK, &t)
	if err != nil {
		return Token{}, err
	}

	if t.AccessToken == "" {
		return Token{}, fmt.Errorf("%w: %s returned no access token", ErrBankUnavailable, op)
	}

	return t, nil
}

// ReadConsentStatus returns the status and validity of a consent.
func (c *Client) ReadConsentStatus(ctx context.Context, consentID, accessToken string) (ConsentStatus, error) {
	var r consentStatusResponse
	err := c.call(ctx, "readConsentStatus", http.MethodGet, c.bank.APIURL+"/consents/"+url.PathEscape(consentID), nil, "", authorization(accessToken, ""), http.StatusOK, &r)
	if err != nil {
		return ConsentStatus{}, err
	}

	status := ConsentStatus{Status: r.ConsentStatus}
	if r.ValidUntil != "" {
		status.ValidUntil, err = time.Parse(dateFormat, r.ValidUntil)
		if err != nil {
			return ConsentStatus{}, fmt.Errorf("%w: readConsentStatus returned invalid validUntil %q", ErrBankUnavailable, r.ValidUntil)
		}
	}

	return status, nil
}

// ReadAccounts lists the accounts the consent grants access to.
func (c *Client) ReadAccounts(ctx context.Context, consentID, accessToken string) ([]Account, error) {
	var r accountsResponse
	err := c.call(ctx, "readAccounts", http.MethodGet, c.bank.APIURL+"/accounts?withBalance=true", nil, "", authorization(accessToken, consentID), http.StatusOK, &r)
	if err != nil {
		return nil, err
	}

	return r.Accounts, nil
}

// ReadTransactionArchive downloads the booked transactions of the account
// between from and to (both inclusive) as a ZIP archive.
func (c *Client) ReadTransactionArchive(ctx context.Context, consentID, accessToken, resourceID string, from, to time.Time) ([]byte, error) {
	target := fmt.Sprintf("%s/accounts/%s/transactions?bookingStatus=booked&dateFrom=%s&dateTo=%s&withBalance=true&download=true",
		c.bank.APIURL, url.PathEscape(resourceID), from.Format(dateFormat), to.Format(dateFormat))

	resp, err := c.do(ctx, http.MethodGet, target, nil, "", authorization(accessToken, consentID))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := expect(resp, "readTransactionArchive", http.StatusOK); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading transaction archive: %w", ErrBankUnavailable, err)
	}

	return data, nil
}

// RevokeConsent deletes the consent at the bank.
func (c *Client) RevokeConsent(ctx context.Context, consentID, accessToken string) error {
	return c.call(ctx, "revokeConsent", http.MethodDelete, c.bank.APIURL+"/consents/"+url.PathEscape(consentID), nil, "", authorization(accessToken, ""), http.StatusNoContent, nil)
}

// call executes a request and decodes the JSON response into target if it is not nil.
func (c *Client) call(ctx context.Context, op, method, target string, body []byte, contentType string, extra http.Header, want int, result any) error {
	resp, err := c.do(ctx, method, target, body, contentType, extra)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := expect(resp, op, want); err != nil {
		return err
	}

	if result == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: %s returned an unparseable body: %w", ErrBankUnavailable, op, err)
	}

	return nil
}

// do signs and sends a request.
func (c *Client) do(ctx context.Context, method, target string, body []byte, contentType string, extra http.Header) (*http.Response, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid URL %q: %w", ErrConfig, target, err)
	}

	requestTarget := u.EscapedPath()
	if u.RawQuery != "" {
		requestTarget += "?" + u.RawQuery
	}

	values := SignedValues{
		Date:      c.now().UTC().Format(http.TimeFormat),
		Digest:    Digest(body),
		RequestID: uuid.NewString(),
	}

	signature, err := c.signer.Signature(method, requestTarget, values)
	if err != nil {
		return nil, err
	}

	certificate, err := c.signer.Certificate()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	for k, v := range extra {
		req.Header[k] = v
	}

	if contentType == "" {
		contentType = contentTypeJSON
	}

	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Date", values.Date)
	req.Header.Set("Digest", values.Digest)
	req.Header.Set("X-Request-ID", values.RequestID)
	req.Header.Set("PSU-IP-Address", c.bank.PSUIPAddress)
	req.Header.Set("Signature", signature)
	req.Header.Set("TPP-Signature-Certificate", certificate)

	log.Debug().Str("x-request-id", values.RequestID).Str("method", method).Str("target", requestTarget).Msg("PSD2")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBankUnavailable, err)
	}

	return resp, nil
}

func expect(resp *http.Response, op string, want int) error {
	if resp.StatusCode == want {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	log.Warn().
		Str("operation", op).
		Int("status", resp.StatusCode).
		Str("x-request-id", resp.Request.Header.Get("X-Request-ID")).
		Str("body", strings.TrimSpace(string(body))).
		Msg("PSD2")

	return fmt.Errorf("%w: %s returned HTTP %d", ErrBankUnavailable, op, resp.StatusCode)
}

func authorization(accessToken, consentID string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+accessToken)
	if consentID != "" {
		h.Set("Consent-ID", consentID)
	}
	return h
}
