package order

import "errors"

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyConfirmed = errors.New("order already confirmed")
	ErrOrderCancelled        = errors.New("order is cancelled")
	ErrOrderNotConfirmed     = errors.New("order must be confirmed first")
)
