// Package checkout implements the linear checkout flow: collect a
// recipient handle, pick a payment method, run the (simulated) payment
// and produce the immutable order summary.
package checkout

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"robux-storefront/internal/domain"
)

// Config carries the wizard's tunables.
type Config struct {
	// ProcessingDelay is the simulated payment latency.
	ProcessingDelay time.Duration
	// QRPayHost is the host embedded in the scannable payment
	// reference.
	QRPayHost string
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.ProcessingDelay <= 0 {
		c.ProcessingDelay = 2 * time.Second
	}
	if c.QRPayHost == "" {
		c.QRPayHost = "example.com"
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// Wizard drives one checkout attempt over a cart snapshot taken when
// the wizard opened. Cart changes after opening never reach the wizard.
//
// The processing timer survives Close; its callback checks the wizard
// generation and bails out instead of acting on discarded state.
type Wizard struct {
	mu sync.Mutex

	step     Step
	snapshot domain.CartSnapshot

	recipient        string
	contact          string
	contactPrefilled bool

	method domain.PaymentMethod
	nonce  string
	handle PaymentHandle

	gen     int
	closed  bool
	timer   *time.Timer
	summary *domain.OrderSummary

	gateway   Gateway
	cfg       Config
	logger    *log.Logger
	onSuccess func(summary domain.OrderSummary, contactEntered bool)
}

// NewWizard opens a checkout over a cart snapshot. A non-empty
// prefilled contact address starts out masked for display and is
// abandoned the moment the buyer supplies their own.
func NewWizard(snapshot domain.CartSnapshot, prefilledContact string, gateway Gateway, cfg Config, logger *log.Logger, onSuccess func(domain.OrderSummary, bool)) *Wizard {
	return &Wizard{
		step:             StepCollectingRecipient,
		snapshot:         snapshot,
		contact:          prefilledContact,
		contactPrefilled: prefilledContact != "",
		nonce:            uuid.NewString(),
		gateway:          gateway,
		cfg:              cfg.withDefaults(),
		logger:           logger,
		onSuccess:        onSuccess,
	}
}

// Step returns the current position in the flow.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Snapshot returns the cart view the wizard was opened with.
func (w *Wizard) Snapshot() domain.CartSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.snapshot
	out.Items = make([]domain.LineItem, len(w.snapshot.Items))
	copy(out.Items, w.snapshot.Items)
	return out
}

// Recipient returns the collected recipient handle.
func (w *Wizard) Recipient() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.recipient
}

// SelectedMethod returns the chosen payment method, if any.
func (w *Wizard) SelectedMethod() domain.PaymentMethod {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.method
}

// OrderNonce returns the identifier embedded in the payment reference.
func (w *Wizard) OrderNonce() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nonce
}

// DisplayContactAddress returns the address as it should be shown:
// masked while still the untouched prefill, verbatim once the buyer
// typed it.
func (w *Wizard) DisplayContactAddress() (address string, masked bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.contactPrefilled && w.contact != "" {
		return MaskContactAddress(w.contact), true
	}
	return w.contact, false
}

// SubmitRecipient records the recipient handle and advances to payment
// selection. A handle that trims to nothing is rejected and the step
// does not change.
func (w *Wizard) SubmitRecipient(handle string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if w.step != StepCollectingRecipient {
		return ErrInvalidTransition
	}
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return ErrEmptyRecipient
	}
	w.recipient = handle
	w.step = StepSelectingPayment
	return nil
}

// Back steps from payment selection to recipient collection, or from
// the QR screen back to payment selection.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	switch w.step {
	case StepSelectingPayment:
		w.step = StepCollectingRecipient
	case StepAwaitingQRConfirmation:
		w.step = StepSelectingPayment
	default:
		return ErrInvalidTransition
	}
	return nil
}

// SetContactAddress records the buyer's own address verbatim and drops
// the masked prefill. Allowed at any point before processing starts.
func (w *Wizard) SetContactAddress(address string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if w.step == StepProcessing || w.step.IsTerminal() {
		return ErrInvalidTransition
	}
	w.contact = address
	w.contactPrefilled = false
	return nil
}

// SelectPayment records the payment method. The instant-QR channel
// detours through the confirmation screen; every other method opens the
// payment and starts processing immediately.
func (w *Wizard) SelectPayment(ctx context.Context, method domain.PaymentMethod) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if w.step != StepSelectingPayment {
		return ErrInvalidTransition
	}
	if !KnownMethod(method) {
		return ErrUnknownMethod
	}
	w.method = method
	if RequiresQRConfirmation(method) {
		w.step = StepAwaitingQRConfirmation
		return nil
	}
	return w.startProcessingLocked(ctx)
}

// ConfirmQRPaid is the buyer's manual assertion that the scanned
// payment went through. Nothing polls for it.
func (w *Wizard) ConfirmQRPaid(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if w.step != StepAwaitingQRConfirmation {
		return ErrInvalidTransition
	}
	return w.startProcessingLocked(ctx)
}

func (w *Wizard) startProcessingLocked(ctx context.Context) error {
	handle, err := w.gateway.InitiatePayment(ctx, OrderDraft{
		OrderID:         w.nonce,
		RecipientHandle: w.recipient,
		TotalPrice:      w.snapshot.TotalPrice,
		Method:          w.method,
	})
	if err != nil {
		return fmt.Errorf("initiate payment: %w", err)
	}
	w.handle = handle
	w.step = StepProcessing
	gen := w.gen
	w.timer = time.AfterFunc(w.cfg.ProcessingDelay, func() {
		w.finish(gen)
	})
	return nil
}

// finish fires when the processing delay elapses. A wizard closed or
// reopened in the meantime carries a different generation and the
// callback becomes a no-op.
func (w *Wizard) finish(gen int) {
	w.mu.Lock()
	if w.closed || gen != w.gen || w.step != StepProcessing {
		w.mu.Unlock()
		return
	}
	status, err := w.gateway.PollStatus(context.Background(), w.handle)
	if err != nil || status != PaymentSucceeded {
		// The simulation has no failure outcome; log the anomaly
		// and complete anyway.
		w.logger.Printf("payment %s polled %q (err=%v), completing", w.handle.ID, status, err)
	}
	summary := domain.OrderSummary{
		OrderID:         w.nonce,
		RecipientHandle: w.recipient,
		ContactAddress:  w.contact,
		LineItems:       make([]domain.LineItem, len(w.snapshot.Items)),
		TotalPrice:      w.snapshot.TotalPrice,
		PaymentMethod:   w.method,
		CompletedAt:     w.cfg.Now(),
	}
	copy(summary.LineItems, w.snapshot.Items)
	w.summary = &summary
	w.step = StepSucceeded
	contactEntered := w.contact != "" && !w.contactPrefilled
	cb := w.onSuccess
	w.mu.Unlock()

	if cb != nil {
		cb(summary, contactEntered)
	}
}

// Summary returns the completed order. Before the terminal step it
// returns ErrNoOrder.
func (w *Wizard) Summary() (domain.OrderSummary, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.summary == nil {
		return domain.OrderSummary{}, ErrNoOrder
	}
	out := *w.summary
	out.LineItems = make([]domain.LineItem, len(w.summary.LineItems))
	copy(out.LineItems, w.summary.LineItems)
	return out, nil
}

// QRReference is the scannable payment reference: order nonce plus the
// amount due.
func (w *Wizard) QRReference() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return fmt.Sprintf("https://%s/pay?order_id=%s&amount=%d", w.cfg.QRPayHost, w.nonce, w.snapshot.TotalPrice)
}

// QRPNG renders the payment reference as a PNG of the given size.
func (w *Wizard) QRPNG(size int) ([]byte, error) {
	return qrcode.Encode(w.QRReference(), qrcode.Medium, size)
}

// Close discards all wizard-local state. The cart is untouched; a
// pending processing timer is stopped best-effort and neutralized by
// the generation bump either way.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.gen++
	w.closed = true
	w.recipient = ""
	w.contact = ""
	w.contactPrefilled = false
	w.method = ""
	w.summary = nil
	w.step = StepCollectingRecipient
}
