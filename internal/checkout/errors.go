package checkout

import "errors"

var (
	// ErrEmptyRecipient rejects advancing without a recipient handle.
	ErrEmptyRecipient = errors.New("recipient handle required")
	// ErrUnknownMethod rejects a payment method outside the catalog.
	ErrUnknownMethod = errors.New("unknown payment method")
	// ErrInvalidTransition rejects an action the current step does not
	// offer.
	ErrInvalidTransition = errors.New("action not available in current step")
	// ErrClosed rejects actions on a wizard that has been closed.
	ErrClosed = errors.New("checkout closed")
	// ErrNoOrder means no completed order is available yet.
	ErrNoOrder = errors.New("order not completed")
)
