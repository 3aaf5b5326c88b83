package cart

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"robux-storefront/internal/domain"
	cartrepo "robux-storefront/internal/repository/cart"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestStore(t *testing.T) (*Store, cartrepo.Repository) {
	t.Helper()
	repo := cartrepo.NewMemory()
	return New(context.Background(), "owner", repo, testLogger()), repo
}

func item(id string, price int64) domain.LineItem {
	return domain.LineItem{ID: id, DisplayName: id, UnitPrice: price, Kind: domain.KindRobuxPackage}
}

func TestAddItemCoalescesSameID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		s.AddItem(ctx, item("p1", 100))
	}

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected one line item, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", items[0].Quantity)
	}
}

func TestAddItemFirstWriteWinsOnPrice(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddItem(ctx, item("p1", 100))
	repriced := item("p1", 999)
	repriced.DisplayName = "renamed"
	s.AddItem(ctx, repriced)

	items := s.Items()
	if items[0].UnitPrice != 100 {
		t.Fatalf("expected original price 100, got %d", items[0].UnitPrice)
	}
	if items[0].DisplayName != "p1" {
		t.Fatalf("expected original display name, got %q", items[0].DisplayName)
	}
}

func TestTotalPriceRecomputed(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddItem(ctx, item("p1", 100))
	s.AddItem(ctx, item("p2", 250))
	s.AddItem(ctx, item("p2", 250))

	if got := s.TotalPrice(); got != 600 {
		t.Fatalf("expected total 600, got %d", got)
	}
	s.UpdateQuantity(ctx, "p2", 1)
	if got := s.TotalPrice(); got != 350 {
		t.Fatalf("expected total 350 after update, got %d", got)
	}
}

func TestUpdateQuantityZeroAndNegativeRemove(t *testing.T) {
	for _, qty := range []int{0, -1} {
		s, _ := newTestStore(t)
		ctx := context.Background()
		s.AddItem(ctx, item("p1", 100))
		s.UpdateQuantity(ctx, "p1", qty)
		if len(s.Items()) != 0 {
			t.Fatalf("quantity %d should remove the item", qty)
		}
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	s.AddItem(ctx, item("p1", 100))
	s.RemoveItem(ctx, "missing")
	s.UpdateQuantity(ctx, "missing", 3)
	if got := s.TotalItems(); got != 1 {
		t.Fatalf("expected untouched cart, got %d items", got)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	repo := cartrepo.NewMemory()
	ctx := context.Background()

	s := New(ctx, "owner", repo, testLogger())
	s.AddItem(ctx, item("p1", 100))
	s.AddItem(ctx, item("p1", 100))
	s.AddItem(ctx, item("p2", 250))

	restored := New(ctx, "owner", repo, testLogger())
	want := s.Items()
	got := restored.Items()
	if len(got) != len(want) {
		t.Fatalf("expected %d items after restore, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Quantity != want[i].Quantity || got[i].UnitPrice != want[i].UnitPrice {
			t.Fatalf("restored item %d mismatch: %+v vs %+v", i, got[i], want[i])
		}
	}
	if restored.TotalPrice() != s.TotalPrice() {
		t.Fatalf("restored total %d, want %d", restored.TotalPrice(), s.TotalPrice())
	}
}

type failingRepo struct {
	saveErr error
	loadErr error
}

func (r *failingRepo) Save(context.Context, string, domain.CartState) error {
	return r.saveErr
}

func (r *failingRepo) Load(context.Context, string) (domain.CartState, error) {
	return domain.CartState{}, r.loadErr
}

func (r *failingRepo) Delete(context.Context, string) error { return nil }

func TestStorageFailuresAreSwallowed(t *testing.T) {
	repo := &failingRepo{saveErr: errors.New("quota exceeded"), loadErr: errors.New("unavailable")}
	ctx := context.Background()

	s := New(ctx, "owner", repo, testLogger())
	s.AddItem(ctx, item("p1", 100))
	s.AddItem(ctx, item("p1", 100))

	if got := s.TotalItems(); got != 2 {
		t.Fatalf("cart should keep working in memory, got %d items", got)
	}
}

func TestEndToEndScenario(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.AddItem(ctx, item("p1", 100))
	s.AddItem(ctx, item("p1", 100))
	if s.TotalItems() != 2 || s.TotalPrice() != 200 {
		t.Fatalf("after two adds: items=%d total=%d", s.TotalItems(), s.TotalPrice())
	}

	s.UpdateQuantity(ctx, "p1", 1)
	if s.TotalPrice() != 100 {
		t.Fatalf("after quantity update: total=%d", s.TotalPrice())
	}

	s.Clear(ctx)
	if s.TotalItems() != 0 {
		t.Fatalf("after clear: items=%d", s.TotalItems())
	}
}

func TestSnapshotDoesNotAliasStore(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	s.AddItem(ctx, item("p1", 100))

	snap := s.Snapshot()
	snap.Items[0].Quantity = 99

	if got := s.TotalItems(); got != 1 {
		t.Fatalf("snapshot mutation leaked into store: %d", got)
	}
}

func TestRegistryReturnsSameStore(t *testing.T) {
	reg := NewRegistry(cartrepo.NewMemory(), testLogger())
	ctx := context.Background()

	a := reg.Get(ctx, "s1")
	b := reg.Get(ctx, "s1")
	if a != b {
		t.Fatal("expected the same store for one session")
	}
	if reg.Get(ctx, "s2") == a {
		t.Fatal("expected distinct stores per session")
	}
}
