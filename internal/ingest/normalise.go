package ingest

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/openpoen/backend/internal/models"
	"github.com/shopspring/decimal"
)

var cardNumberRegex = regexp.MustCompile(models.CardNumberPrefix + `\d*`)

// Keys of the nested transaction amount, folded onto the payment columns.
var folded = map[string]string{
	"transaction_amount_amount":   "transaction_amount",
	"transaction_amount_currency": "transaction_currency",
}

// Flatten flattens nested objects, joining keys with "_".
func Flatten(record map[string]any) map[string]any {
	flat := map[string]any{}
	flatten(flat, "", record)
	return flat
}

func flatten(flat map[string]any, prefix string, record map[string]any) {
	for k, v := range record {
		key := k
		if prefix != "" {
			key = prefix + "_" + k
		}

		if nested, ok := v.(map[string]any); ok {
			flatten(flat, key, nested)
			continue
		}
		flat[key] = v
	}
}

// SnakeCase converts camelCase keys to snake_case by inserting "_" before
// each upper case letter that does not start the key.
func SnakeCase(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Normalise flattens a bank record, converts its keys to snake_case and
// replaces empty strings with nil.
func Normalise(record map[string]any) map[string]any {
	normalised := map[string]any{}
	for k, v := range Flatten(record) {
		key := SnakeCase(k)
		if column, ok := folded[key]; ok {
			key = column
		}

		if s, ok := v.(string); ok && s == "" {
			v = nil
		}
		normalised[key] = v
	}

	return normalised
}

// skip reports if the record must be skipped. Records without entry
// reference and structured remittance information are not final yet. The
// bank lists them again later with a different transaction ID.
func skip(record map[string]any) bool {
	return record["entry_reference"] == nil && record["remittance_information_structured"] == nil
}

// toPayment converts a normalised record to a bank payment. Dates are
// interpreted in loc.
func toPayment(record map[string]any, loc *time.Location) (models.Payment, error) {
	p := models.Payment{Type: models.PaymentTypeBank}

	id, err := stringValue(record, "transaction_id")
	if err != nil {
		return p, err
	}
	if id == nil {
		return p, fmt.Errorf("%w: record without transaction_id", ErrArchiveMalformed)
	}
	p.TransactionID = *id

	bookingDate, err := dateValue(record, "booking_date", loc)
	if err != nil {
		return p, err
	}
	if bookingDate == nil {
		return p, fmt.Errorf("%w: transaction %s has no booking_date", ErrArchiveMalformed, p.TransactionID)
	}
	p.BookingDate = *bookingDate

	p.ValueDate, err = dateValue(record, "value_date", loc)
	if err != nil {
		return p, err
	}

	amount, err := stringValue(record, "transaction_amount")
	if err != nil {
		return p, err
	}
	if amount == nil {
		return p, fmt.Errorf("%w: transaction %s has no transaction_amount", ErrArchiveMalformed, p.TransactionID)
	}
	p.Amount, err = decimal.NewFromString(*amount)
	if err != nil {
		return p, fmt.Errorf("%w: transaction %s has an invalid amount: %w", ErrArchiveMalformed, p.TransactionID, err)
	}
	p.Route = models.RouteOf(p.Amount)

	for column, field := range map[string]**string{
		"transaction_currency":                &p.TransactionCurrency,
		"debtor_name":                         &p.DebtorName,
		"debtor_account_iban":                 &p.DebtorAccount,
		"debtor_account_currency":             &p.DebtorAccountCurrency,
		"creditor_name":                       &p.CreditorName,
		"creditor_account_iban":               &p.CreditorAccount,
		"creditor_account_currency":           &p.CreditorAccountCurrency,
		"remittance_information_structured":   &p.RemittanceStructured,
		"remittance_information_unstructured": &p.RemittanceUnstructured,
		"entry_reference":                     &p.EntryReference,
		"end_to_end_id":                       &p.EndToEndID,
	} {
		if *field, err = stringValue(record, column); err != nil {
			return p, err
		}
	}

	if p.RemittanceUnstructured != nil {
		if card := cardNumberRegex.FindString(*p.RemittanceUnstructured); card != "" {
			p.CardNumber = &card
		}
	}

	p.RawRecord, err = json.Marshal(record)
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrArchiveMalformed, err)
	}

	return p, nil
}

// stringValue returns the value for key as a string. Numbers are accepted
// as they are given in the record.
func stringValue(record map[string]any, key string) (*string, error) {
	switch v := record[key].(type) {
	case nil:
		return nil, nil
	case string:
		return &v, nil
	case json.Number:
		s := v.String()
		return &s, nil
	default:
		return nil, fmt.Errorf("%w: %s has unexpected type %T", ErrArchiveMalformed, key, v)
	}
}

var dateLayouts = []string{"2006-01-02", "2006-01-02T15:04:05", time.RFC3339}

func dateValue(record map[string]any, key string, loc *time.Location) (*time.Time, error) {
	s, err := stringValue(record, key)
	if s == nil || err != nil {
		return nil, err
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, *s, loc); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("%w: %s %q is not a date", ErrArchiveMalformed, key, *s)
}
