package quote

import "errors"

var (
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrQuoteAlreadyProcessed = errors.New("quote already accepted or rejected")
)
