package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Bank endpoints for the BNG XS2A interface.
const (
	sandboxAPIURL       = "https://api.xs2a-sandbox.bngbank.nl/api/v1"
	sandboxTokenURL     = "https://api.xs2a-sandbox.bngbank.nl/token"
	sandboxAuthoriseURL = "https://api.xs2a-sandbox.bngbank.nl/authorise"

	productionAPIURL       = "https://api.xs2a.bngbank.nl/api/v1"
	productionTokenURL     = "https://api.xs2a.bngbank.nl/token"
	productionAuthoriseURL = "https://api.xs2a.bngbank.nl/authorise"

	sandboxKeyID = "SN=00E8B54055D929413F,CA=CN=xs2a_sandbox_bngbank_client_signing, E=klantenservice@bngbank.nl, O=BNG Bank, OU=API XS2A Sandbox, C=NL, S=South-Holland, L=The Hague, OID.2.5.4.97=PSDNL-AUT-SANDBOX"
)

// Config is the immutable configuration of a deployment. It is loaded once
// at startup and handed to every component by value.
type Config struct {
	SecretKey string `mapstructure:"SECRET_KEY" validate:"required,min=16"`
	BaseURL   string `mapstructure:"BASE_URL" validate:"required,url"` // URL of the web frontend
	APIURL    string `mapstructure:"API_URL" validate:"required,url"`  // URL this API is served under
	Port      int    `mapstructure:"PORT" validate:"min=1,max=65535"`

	Timezone string         `mapstructure:"TIMEZONE" validate:"required"`
	Location *time.Location `mapstructure:"-" validate:"-"`

	DBFile     string `mapstructure:"DB_FILE"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	IngestSchedule      string `mapstructure:"INGEST_SCHEDULE" validate:"required"`
	ConsentExpiringDays int    `mapstructure:"CONSENT_EXPIRING_DAYS" validate:"min=1"`

	Bank Bank `mapstructure:",squash"`
}

// Bank holds everything needed to talk to the PSD2 interface of the bank.
type Bank struct {
	Name           string `mapstructure:"BANK_NAME" validate:"required"`
	Sandbox        bool   `mapstructure:"BANK_SANDBOX"`
	APIURL         string `mapstructure:"BANK_API_URL" validate:"required,url"`
	TokenURL       string `mapstructure:"BANK_TOKEN_URL" validate:"required,url"`
	AuthoriseURL   string `mapstructure:"BANK_AUTHORISE_URL" validate:"required,url"`
	ClientID       string `mapstructure:"BANK_CLIENT_ID" validate:"required"`
	RedirectURL    string `mapstructure:"BANK_REDIRECT_URL" validate:"required,url"`
	CodeVerifier   string `mapstructure:"BANK_CODE_VERIFIER" validate:"required"`
	KeyID          string `mapstructure:"BANK_KEY_ID" validate:"required"`
	PSUIPAddress   string `mapstructure:"BANK_PSU_IP_ADDRESS" validate:"required,ip"`
	SigningKeyFile string `mapstructure:"BANK_SIGNING_KEY_FILE" validate:"required"`
	SigningCert    string `mapstructure:"BANK_SIGNING_CERT_FILE" validate:"required"`
	TLSCertFile    string `mapstructure:"BANK_TLS_CERT_FILE" validate:"required"`
	TLSKeyFile     string `mapstructure:"BANK_TLS_KEY_FILE" validate:"required"`
}

var defaults = map[string]any{
	"SECRET_KEY":             "",
	"BASE_URL":               "",
	"API_URL":                "",
	"PORT":                   8080,
	"TIMEZONE":               "Europe/Amsterdam",
	"DB_FILE":                "data/gorm.db",
	"DB_HOST":                "",
	"DB_USER":                "",
	"DB_PASSWORD":            "",
	"DB_NAME":                "",
	"INGEST_SCHEDULE":        "0 */6 * * *",
	"CONSENT_EXPIRING_DAYS":  11,
	"BANK_NAME":              "BNG",
	"BANK_SANDBOX":           true,
	"BANK_API_URL":           "",
	"BANK_TOKEN_URL":         "",
	"BANK_AUTHORISE_URL":     "",
	"BANK_CLIENT_ID":         "PSDNL-AUT-SANDBOX",
	"BANK_REDIRECT_URL":      "",
	"BANK_CODE_VERIFIER":     "12345",
	"BANK_KEY_ID":            "",
	"BANK_PSU_IP_ADDRESS":    "212.178.101.162",
	"BANK_SIGNING_KEY_FILE":  "",
	"BANK_SIGNING_CERT_FILE": "",
	"BANK_TLS_CERT_FILE":     "",
	"BANK_TLS_KEY_FILE":      "",
}

// Load reads the configuration from the environment. A .env file in the
// working directory is read first if it exists, real environment variables
// take precedence over it.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not read .env file: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("could not parse configuration: %w", err)
	}

	c.Bank.applyEndpoints()

	c.Location, err = time.LoadLocation(c.Timezone)
	if err != nil {
		return Config{}, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	log.Debug().Bool("sandbox", c.Bank.Sandbox).Str("bank", c.Bank.APIURL).Str("timezone", c.Timezone).Msg("Config")
	return c, nil
}

// Validate checks that all required settings are present and well-formed.
func (c Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, validationErrorToText(e))
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, ", "))
}

// Now returns the current time in the configured timezone.
func (c Config) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// applyEndpoints fills in the bank endpoints that are not explicitly
// configured from the sandbox or production defaults.
func (b *Bank) applyEndpoints() {
	api, token, authorise := productionAPIURL, productionTokenURL, productionAuthoriseURL
	if b.Sandbox {
		api, token, authorise = sandboxAPIURL, sandboxTokenURL, sandboxAuthoriseURL
		if b.KeyID == "" {
			b.KeyID = sandboxKeyID
		}
	}

	if b.APIURL == "" {
		b.APIURL = api
	}
	if b.TokenURL == "" {
		b.TokenURL = token
	}
	if b.AuthoriseURL == "" {
		b.AuthoriseURL = authorise
	}

	b.APIURL = strings.TrimRight(b.APIURL, "/")
}

func validationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	case "url":
		return fmt.Sprintf("%s must be a URL", e.Field())
	case "ip":
		return fmt.Sprintf("%s must be an IP address", e.Field())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}
