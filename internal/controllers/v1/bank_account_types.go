package v1

import (
	"net/http"
	"time"

	"github.com/openpoen/backend/internal/consent"
	"github.com/openpoen/backend/internal/jobs"
)

type BankAccountStatusResponse struct {
	Data  *consent.Status `json:"data"`                                           // Status of the linked bank account
	Error *string         `json:"error" example:"you are not allowed to do this"` // The error, if any occurred
}

// BankAccountLinkEditable is the request to link a bank account.
type BankAccountLinkEditable struct {
	IBAN       string    `json:"iban" example:"NL91BNGH0417164300"`         // IBAN of the account to link
	ValidUntil time.Time `json:"validUntil" example:"2024-12-31T00:00:00Z"` // End of the consent, at most 90 days from now
}

type BankAccountLink struct {
	State        consent.State `json:"state" example:"awaiting-authorisation"`                                                                   // State of the link
	AuthoriseURL string        `json:"authoriseUrl" example:"https://api.xs2a-sandbox.bngbank.nl/authorise?response_type=code&state=eyJhbGciOi"` // The URL the user needs to visit to authorise the consent
}

type BankAccountLinkResponse struct {
	Data  *BankAccountLink `json:"data"`                                                     // Data for the link
	Error *string          `json:"error" example:"the IBAN of the bank account must be set"` // The error, if any occurred
}

type BankAccountCallbackQuery struct {
	Code  string `form:"code"`  // Authorisation code issued by the bank
	State string `form:"state"` // State token from the authorisation URL
}

type BankAccountCallback struct {
	Outcome jobs.CallbackOutcome `json:"outcome" example:"linked"`                                  // Outcome of the callback
	Message string               `json:"message" example:"De koppeling met de bank is aangemaakt."` // Message to show to the user
}

type BankAccountCallbackResponse struct {
	Data  *BankAccountCallback `json:"data"`                                                            // Outcome of the callback
	Error *string              `json:"error" example:"the code and state query parameters must be set"` // The error, if any occurred
}

// callbackStatus maps callback outcomes to HTTP status codes.
var callbackStatus = map[jobs.CallbackOutcome]int{
	jobs.OutcomeLinked:          http.StatusOK,
	jobs.OutcomeIngestDeferred:  http.StatusOK,
	jobs.OutcomeBadState:        http.StatusBadRequest,
	jobs.OutcomeStateExpired:    http.StatusBadRequest,
	jobs.OutcomeForbidden:       http.StatusForbidden,
	jobs.OutcomeBankUnavailable: http.StatusBadGateway,
	jobs.OutcomeFailed:          http.StatusInternalServerError,
}

type BankAccountImportResponse struct {
	Data  *jobs.JobReport `json:"data"`                                           // Report of the import
	Error *string         `json:"error" example:"you are not allowed to do this"` // The error, if any occurred
}
