package checkout

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"robux-storefront/internal/domain"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testSnapshot() domain.CartSnapshot {
	return domain.SnapshotOf([]domain.LineItem{
		{ID: "robux-400", DisplayName: "400 Robux", UnitPrice: 300, Kind: domain.KindRobuxPackage, Quantity: 1},
		{ID: "pet-raccoon", DisplayName: "Енот", UnitPrice: 100, Kind: domain.KindCollectible, Quantity: 2},
	})
}

func newTestWizard(snapshot domain.CartSnapshot, prefill string, onSuccess func(domain.OrderSummary, bool)) *Wizard {
	cfg := Config{ProcessingDelay: 10 * time.Millisecond}
	return NewWizard(snapshot, prefill, NewSimulatedGateway(cfg.ProcessingDelay), cfg, testLogger(), onSuccess)
}

func waitForStep(t *testing.T, w *Wizard, want Step) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if w.Step() == want {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("wizard stuck in %s, want %s", w.Step(), want)
}

func TestSubmitRecipientRejectsBlankHandle(t *testing.T) {
	w := newTestWizard(testSnapshot(), "", nil)

	for _, handle := range []string{"", "   ", "\t\n"} {
		if err := w.SubmitRecipient(handle); err != ErrEmptyRecipient {
			t.Fatalf("handle %q: expected ErrEmptyRecipient, got %v", handle, err)
		}
		if w.Step() != StepCollectingRecipient {
			t.Fatalf("handle %q: step changed to %s", handle, w.Step())
		}
	}
}

func TestSubmitRecipientTrimsAndAdvances(t *testing.T) {
	w := newTestWizard(testSnapshot(), "", nil)

	if err := w.SubmitRecipient("  player1  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Recipient() != "player1" {
		t.Fatalf("expected trimmed handle, got %q", w.Recipient())
	}
	if w.Step() != StepSelectingPayment {
		t.Fatalf("expected payment step, got %s", w.Step())
	}
}

func TestQRMethodDetoursThroughConfirmation(t *testing.T) {
	w := newTestWizard(testSnapshot(), "", nil)
	ctx := context.Background()

	if err := w.SubmitRecipient("player1"); err != nil {
		t.Fatalf("recipient: %v", err)
	}
	if err := w.SelectPayment(ctx, domain.MethodSBP); err != nil {
		t.Fatalf("select sbp: %v", err)
	}
	if w.Step() != StepAwaitingQRConfirmation {
		t.Fatalf("expected qr confirmation step, got %s", w.Step())
	}
	if err := w.ConfirmQRPaid(ctx); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if w.Step() != StepProcessing {
		t.Fatalf("expected processing after confirmation, got %s", w.Step())
	}
	waitForStep(t, w, StepSucceeded)
}

func TestDirectMethodSkipsConfirmation(t *testing.T) {
	w := newTestWizard(testSnapshot(), "", nil)

	if err := w.SubmitRecipient("player1"); err != nil {
		t.Fatalf("recipient: %v", err)
	}
	if err := w.SelectPayment(context.Background(), domain.MethodCard); err != nil {
		t.Fatalf("select card: %v", err)
	}
	if w.Step() != StepProcessing {
		t.Fatalf("expected processing, got %s", w.Step())
	}
}

func TestUnknownMethodRejected(t *testing.T) {
	w := newTestWizard(testSnapshot(), "", nil)

	if err := w.SubmitRecipient("player1"); err != nil {
		t.Fatalf("recipient: %v", err)
	}
	if err := w.SelectPayment(context.Background(), "paypal"); err != ErrUnknownMethod {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}
	if w.Step() != StepSelectingPayment {
		t.Fatalf("step changed to %s", w.Step())
	}
}

func TestCheckoutSucceedsWithSummary(t *testing.T) {
	snapshot := domain.SnapshotOf([]domain.LineItem{
		{ID: "p1", DisplayName: "p1", UnitPrice: 500, Quantity: 1, Kind: domain.KindCollectible},
	})

	var mu sync.Mutex
	var delivered *domain.OrderSummary
	w := newTestWizard(snapshot, "", func(s domain.OrderSummary, _ bool) {
		mu.Lock()
		delivered = &s
		mu.Unlock()
	})

	if err := w.SubmitRecipient("player1"); err != nil {
		t.Fatalf("recipient: %v", err)
	}
	if err := w.SelectPayment(context.Background(), domain.MethodCard); err != nil {
		t.Fatalf("payment: %v", err)
	}
	waitForStep(t, w, StepSucceeded)

	summary, err := w.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalPrice != 500 {
		t.Fatalf("expected total 500, got %d", summary.TotalPrice)
	}
	if summary.RecipientHandle != "player1" {
		t.Fatalf("expected recipient player1, got %q", summary.RecipientHandle)
	}
	if summary.PaymentMethod != domain.MethodCard {
		t.Fatalf("expected card, got %s", summary.PaymentMethod)
	}
	if summary.OrderID == "" || summary.CompletedAt.IsZero() {
		t.Fatalf("summary missing order id or completion time: %+v", summary)
	}

	mu.Lock()
	defer mu.Unlock()
	if delivered == nil {
		t.Fatal("completion callback not invoked")
	}
	if delivered.OrderID != summary.OrderID {
		t.Fatalf("callback order %s, summary order %s", delivered.OrderID, summary.OrderID)
	}
}

func TestSummaryIsValueCopyOfOpenTimeSnapshot(t *testing.T) {
	items := []domain.LineItem{
		{ID: "p1", DisplayName: "p1", UnitPrice: 100, Quantity: 2, Kind: domain.KindCollectible},
	}
	snapshot := domain.SnapshotOf(items)
	w := newTestWizard(snapshot, "", nil)

	// Mutating the source items after open must not reach the wizard.
	items[0].Quantity = 50

	if err := w.SubmitRecipient("player1"); err != nil {
		t.Fatalf("recipient: %v", err)
	}
	if err := w.SelectPayment(context.Background(), domain.MethodCard); err != nil {
		t.Fatalf("payment: %v", err)
	}
	waitForStep(t, w, StepSucceeded)

	summary, err := w.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.LineItems[0].Quantity != 2 || summary.TotalPrice != 200 {
		t.Fatalf("summary reflects later mutation: %+v", summary)
	}

	summary.LineItems[0].Quantity = 99
	again, _ := w.Summary()
	if again.LineItems[0].Quantity != 2 {
		t.Fatal("summary copies alias each other")
	}
}

func TestBackTransitions(t *testing.T) {
	w := newTestWizard(testSnapshot(), "", nil)
	ctx := context.Background()

	if err := w.Back(); err != ErrInvalidTransition {
		t.Fatalf("back from initial step: expected ErrInvalidTransition, got %v", err)
	}
	if err := w.SubmitRecipient("player1"); err != nil {
		t.Fatalf("recipient: %v", err)
	}
	if err := w.Back(); err != nil {
		t.Fatalf("back to recipient: %v", err)
	}
	if w.Step() != StepCollectingRecipient {
		t.Fatalf("expected recipient step, got %s", w.Step())
	}

	if err := w.SubmitRecipient("player1"); err != nil {
		t.Fatalf("recipient again: %v", err)
	}
	if err := w.SelectPayment(ctx, domain.MethodSBP); err != nil {
		t.Fatalf("sbp: %v", err)
	}
	if err := w.Back(); err != nil {
		t.Fatalf("back from qr: %v", err)
	}
	if w.Step() != StepSelectingPayment {
		t.Fatalf("expected payment step, got %s", w.Step())
	}
}

func TestCloseDiscardsStateAndNeutralizesTimer(t *testing.T) {
	fired := false
	var mu sync.Mutex
	w := newTestWizard(testSnapshot(), "", func(domain.OrderSummary, bool) {
		mu.Lock()
		fired = true
		mu.Unlock()
	})

	if err := w.SubmitRecipient("player1"); err != nil {
		t.Fatalf("recipient: %v", err)
	}
	if err := w.SelectPayment(context.Background(), domain.MethodCard); err != nil {
		t.Fatalf("payment: %v", err)
	}
	w.Close()

	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if fired {
		t.Fatal("stale processing timer acted on a closed wizard")
	}
	if w.Recipient() != "" {
		t.Fatal("close did not discard wizard-local state")
	}
	if _, err := w.Summary(); err != ErrNoOrder {
		t.Fatalf("expected ErrNoOrder after close, got %v", err)
	}
	if err := w.SubmitRecipient("player2"); err != ErrClosed {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestContactPrefillMaskedUntilTouched(t *testing.T) {
	w := newTestWizard(testSnapshot(), "johnny@domain.com", nil)

	address, masked := w.DisplayContactAddress()
	if !masked {
		t.Fatal("prefilled address should start masked")
	}
	if address != "j****y@domain.com" {
		t.Fatalf("unexpected masked form: %q", address)
	}

	if err := w.SetContactAddress("new@domain.com"); err != nil {
		t.Fatalf("set contact: %v", err)
	}
	address, masked = w.DisplayContactAddress()
	if masked || address != "new@domain.com" {
		t.Fatalf("typed address should show verbatim, got %q masked=%v", address, masked)
	}
}

func TestQRReferenceCarriesNonceAndAmount(t *testing.T) {
	w := newTestWizard(testSnapshot(), "", nil)

	ref := w.QRReference()
	if !strings.Contains(ref, "order_id="+w.OrderNonce()) {
		t.Fatalf("reference missing nonce: %s", ref)
	}
	if !strings.Contains(ref, "amount=500") {
		t.Fatalf("reference missing amount: %s", ref)
	}

	png, err := w.QRPNG(128)
	if err != nil {
		t.Fatalf("render qr: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("empty png")
	}
}
