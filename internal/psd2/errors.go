package psd2

import "errors"

var (
	// ErrBankUnavailable is returned for transport failures and every
	// unexpected HTTP status from the bank.
	ErrBankUnavailable = errors.New("the bank is currently unavailable")

	// ErrConfig is returned when key or certificate material can not be loaded.
	ErrConfig = errors.New("the bank connection is misconfigured")

	ErrInvalidIBAN = errors.New("is not a valid IBAN for this bank")
)
