package ingest

import "errors"

var (
	ErrMisconfigured    = errors.New("the bank integration is misconfigured")
	ErrArchiveMalformed = errors.New("the transaction archive is malformed")
)
