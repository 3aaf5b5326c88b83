package checkout

// Step identifies a position in the checkout flow. The flow is strictly
// linear; the only re-entry is an explicit back action.
type Step string

const (
	StepCollectingRecipient    Step = "collecting_recipient"
	StepSelectingPayment       Step = "selecting_payment"
	StepAwaitingQRConfirmation Step = "awaiting_qr_confirmation"
	StepProcessing             Step = "processing"
	StepSucceeded              Step = "succeeded"
)

// IsTerminal reports whether no further transitions are possible.
func (s Step) IsTerminal() bool {
	return s == StepSucceeded
}

// String representation (for logging)
func (s Step) String() string {
	return string(s)
}
