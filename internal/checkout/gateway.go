package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"

	"robux-storefront/internal/domain"
)

// PaymentStatus is the gateway's view of a payment in flight.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
)

// OrderDraft is what the gateway needs to open a payment.
type OrderDraft struct {
	OrderID         string
	RecipientHandle string
	TotalPrice      int64
	Method          domain.PaymentMethod
}

// PaymentHandle references a payment opened with the gateway.
type PaymentHandle struct {
	ID string
}

// Gateway is the payment collaborator behind the checkout flow. The
// shipped implementation is a simulation; a real integration plugs in
// here without touching the wizard.
type Gateway interface {
	InitiatePayment(ctx context.Context, draft OrderDraft) (PaymentHandle, error)
	PollStatus(ctx context.Context, handle PaymentHandle) (PaymentStatus, error)
	Cancel(ctx context.Context, handle PaymentHandle) error
}

// SimulatedGateway accepts every payment and reports success once a
// fixed latency has elapsed. No requests leave the process.
type SimulatedGateway struct {
	delay time.Duration
	now   func() time.Time

	mu       sync.Mutex
	payments map[string]time.Time
}

// NewSimulatedGateway builds a gateway whose payments complete after
// the given latency.
func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{
		delay:    delay,
		now:      time.Now,
		payments: map[string]time.Time{},
	}
}

func (g *SimulatedGateway) InitiatePayment(_ context.Context, _ OrderDraft) (PaymentHandle, error) {
	id := "TXN-" + uuid.NewString()
	g.mu.Lock()
	g.payments[id] = g.now().Add(g.delay)
	g.mu.Unlock()
	return PaymentHandle{ID: id}, nil
}

func (g *SimulatedGateway) PollStatus(_ context.Context, handle PaymentHandle) (PaymentStatus, error) {
	g.mu.Lock()
	completeAt, ok := g.payments[handle.ID]
	g.mu.Unlock()
	if !ok {
		return PaymentFailed, domain.ErrNotFound
	}
	if g.now().Before(completeAt) {
		return PaymentPending, nil
	}
	return PaymentSucceeded, nil
}

func (g *SimulatedGateway) Cancel(_ context.Context, handle PaymentHandle) error {
	g.mu.Lock()
	delete(g.payments, handle.ID)
	g.mu.Unlock()
	return nil
}

// BreakerGateway wraps a Gateway with a circuit breaker so a
// misbehaving payment provider sheds load instead of stalling checkout.
type BreakerGateway struct {
	inner    Gateway
	initiate *gobreaker.CircuitBreaker[PaymentHandle]
	poll     *gobreaker.CircuitBreaker[PaymentStatus]
}

// NewBreakerGateway wraps inner with per-call circuit breakers.
func NewBreakerGateway(inner Gateway) *BreakerGateway {
	settings := gobreaker.Settings{
		Name:    "payment-gateway",
		Timeout: 30 * time.Second,
	}
	return &BreakerGateway{
		inner:    inner,
		initiate: gobreaker.NewCircuitBreaker[PaymentHandle](settings),
		poll:     gobreaker.NewCircuitBreaker[PaymentStatus](settings),
	}
}

func (b *BreakerGateway) InitiatePayment(ctx context.Context, draft OrderDraft) (PaymentHandle, error) {
	return b.initiate.Execute(func() (PaymentHandle, error) {
		return b.inner.InitiatePayment(ctx, draft)
	})
}

func (b *BreakerGateway) PollStatus(ctx context.Context, handle PaymentHandle) (PaymentStatus, error) {
	return b.poll.Execute(func() (PaymentStatus, error) {
		return b.inner.PollStatus(ctx, handle)
	})
}

func (b *BreakerGateway) Cancel(ctx context.Context, handle PaymentHandle) error {
	return b.inner.Cancel(ctx, handle)
}
