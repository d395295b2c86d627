package jobs

import (
	"context"
	"errors"

	"github.com/openpoen/backend/internal/consent"
	"github.com/openpoen/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// Linker finishes linking a bank account.
type Linker interface {
	HandleCallback(ctx context.Context, user models.User, code, state string) (models.BankAccount, error)
}

// CallbackOutcome is the result of the bank callback as shown to the user.
type CallbackOutcome string

const (
	OutcomeLinked          CallbackOutcome = "linked"
	OutcomeBadState        CallbackOutcome = "bad-state"
	OutcomeStateExpired    CallbackOutcome = "state-expired"
	OutcomeBankUnavailable CallbackOutcome = "bank-unavailable"
	OutcomeIngestDeferred  CallbackOutcome = "ingest-deferred"
	OutcomeForbidden       CallbackOutcome = "forbidden"
	OutcomeFailed          CallbackOutcome = "failed"
)

var outcomeMessages = map[CallbackOutcome]string{
	OutcomeLinked:          "De koppeling met de bank is aangemaakt. Betalingen worden nu op de achtergrond opgehaald.",
	OutcomeBadState:        Message(KindStateInvalid),
	OutcomeStateExpired:    Message(KindStateExpired),
	OutcomeBankUnavailable: Message(KindBankUnavailable),
	OutcomeIngestDeferred:  "De koppeling met de bank is aangemaakt, maar het opslaan van de betalingen is mislukt. Het wordt later opnieuw geprobeerd.",
	OutcomeForbidden:       "Je hebt niet voldoende rechten om een koppeling met de bank aan te maken.",
	OutcomeFailed:          Message(KindGeneral),
}

// Message returns the message shown to the user for the outcome.
func (o CallbackOutcome) Message() string {
	return outcomeMessages[o]
}

// CallbackHandler handles the redirect from the bank after the user
// authorised the consent.
func CallbackHandler(ctx context.Context, linker Linker, user models.User, code, state string) CallbackOutcome {
	_, err := linker.HandleCallback(ctx, user, code, state)
	if err == nil {
		return OutcomeLinked
	}

	log.Error().Err(err).Str("user", user.ID.String()).Msg("Bank callback failed")

	if errors.Is(err, consent.ErrIngestDeferred) {
		return OutcomeIngestDeferred
	}

	switch KindOf(err) {
	case KindPermissionDenied:
		return OutcomeForbidden
	case KindStateInvalid:
		return OutcomeBadState
	case KindStateExpired:
		return OutcomeStateExpired
	case KindBankUnavailable:
		return OutcomeBankUnavailable
	default:
		return OutcomeFailed
	}
}
