package consent

import (
	"errors"

	"github.com/openpoen/backend/internal/models"
)

var (
	ErrStateInvalid    = errors.New("the state of the bank callback is invalid")
	ErrStateExpired    = errors.New("the state of the bank callback has expired, please link the account again")
	ErrNoLinkedAccount = errors.New("no bank account is linked")
	ErrIngestDeferred  = errors.New("the bank account has been linked, importing its transactions failed and will be retried")
	ErrValidUntil      = errors.New("the consent must be valid until a date in the future")
)

var ErrAlreadyLinked = models.ErrBankAccountLinked
