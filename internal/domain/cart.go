package domain

// CartState is the full serialized form of a cart, the exact shape
// written to the persistence layer on every mutation and read back on
// startup.
type CartState struct {
	Items []LineItem `json:"items"`
	Total int64      `json:"total"`
}

// CartSnapshot is a derived, read-only view of a cart. It is always
// recomputed from the line items, never cached.
type CartSnapshot struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice int64      `json:"totalPrice"`
}

// SnapshotOf recomputes the derived totals for a set of line items. The
// items slice is copied so the snapshot cannot alias live cart state.
func SnapshotOf(items []LineItem) CartSnapshot {
	out := CartSnapshot{Items: make([]LineItem, len(items))}
	copy(out.Items, items)
	for _, li := range items {
		out.TotalItems += li.Quantity
		out.TotalPrice += li.LineTotal()
	}
	return out
}
