package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/openpoen/backend/internal/consent"
	"github.com/openpoen/backend/internal/jobs"
	"github.com/openpoen/backend/internal/models"
)

// status returns the HTTP status for an error.
func status(err error) int {
	if errors.Is(err, consent.ErrNoLinkedAccount) {
		return http.StatusNotFound
	}

	switch jobs.KindOf(err) {
	case jobs.KindNotFound:
		return http.StatusNotFound
	case jobs.KindPermissionDenied:
		return http.StatusForbidden
	case jobs.KindBankUnavailable:
		return http.StatusBadGateway
	case jobs.KindMisconfigured:
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

var (
	errIBANRequired       = errors.New("the IBAN of the bank account must be set")
	errCallbackParameters = errors.New("the code and state query parameters must be set")
)

// Hidden resources are reported as not existing to users that can not see them.
var (
	errProjectNotFound = fmt.Errorf("%w project matching your query", models.ErrResourceNotFound)
	errPaymentNotFound = fmt.Errorf("%w payment matching your query", models.ErrResourceNotFound)
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid uint64"`
}
