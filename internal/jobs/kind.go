package jobs

import (
	"errors"

	"github.com/openpoen/backend/internal/auth"
	"github.com/openpoen/backend/internal/consent"
	"github.com/openpoen/backend/internal/ingest"
	"github.com/openpoen/backend/internal/models"
	"github.com/openpoen/backend/internal/psd2"
)

// Kind classifies errors for users.
type Kind string

const (
	KindNone             Kind = ""
	KindBankUnavailable  Kind = "bank-unavailable"
	KindMisconfigured    Kind = "misconfigured"
	KindStateInvalid     Kind = "state-invalid"
	KindStateExpired     Kind = "state-expired"
	KindArchiveMalformed Kind = "archive-malformed"
	KindDuplicate        Kind = "duplicate"
	KindCardHasPayments  Kind = "card-has-payments"
	KindPermissionDenied Kind = "permission-denied"
	KindNotFound         Kind = "not-found"
	KindGeneral          Kind = "general"
)

// kinds is checked in order, the first match wins.
var kinds = []struct {
	err  error
	kind Kind
}{
	{psd2.ErrBankUnavailable, KindBankUnavailable},
	{psd2.ErrConfig, KindMisconfigured},
	{ingest.ErrMisconfigured, KindMisconfigured},
	{consent.ErrNoLinkedAccount, KindMisconfigured},
	{auth.ErrSecretKeyMissing, KindMisconfigured},
	{consent.ErrStateExpired, KindStateExpired},
	{consent.ErrStateInvalid, KindStateInvalid},
	{ingest.ErrArchiveMalformed, KindArchiveMalformed},
	{models.ErrDuplicate, KindDuplicate},
	{models.ErrCardHasPayments, KindCardHasPayments},
	{models.ErrPermissionDenied, KindPermissionDenied},
	{models.ErrResourceNotFound, KindNotFound},
}

// KindOf returns the kind of err.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}

	return KindGeneral
}

var messages = map[Kind]string{
	KindBankUnavailable:  "De bank is op dit moment niet bereikbaar. Probeer het later nog eens.",
	KindMisconfigured:    "De koppeling met de bank is niet goed ingesteld. De beheerder van Open Poen is op de hoogte gesteld.",
	KindStateInvalid:     "Er ging iets mis terwijl je toegang verleende aan de bank. Probeer het later nog eens, of neem contact op met de beheerder.",
	KindStateExpired:     "Je aanvraag om te koppelen met de bank is verlopen.",
	KindArchiveMalformed: "De transacties van de bank konden niet worden gelezen. De beheerder van Open Poen is op de hoogte gesteld.",
	KindDuplicate:        "Dit bestaat al.",
	KindCardHasPayments:  "Deze betaalpas kan niet worden ontkoppeld, omdat er al betalingen mee zijn gedaan.",
	KindPermissionDenied: "Je hebt niet voldoende rechten om dit te doen.",
	KindNotFound:         "Dit kon niet worden gevonden.",
	KindGeneral:          "Er ging iets mis. De beheerder van Open Poen is op de hoogte gesteld.",
}

// Message returns the message shown to users for the kind.
func Message(kind Kind) string {
	return messages[kind]
}
