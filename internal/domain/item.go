package domain

// ItemKind tags the category a line item came from. It affects display
// only, never cart mechanics.
type ItemKind string

const (
	KindRobuxPackage ItemKind = "robux-package"
	KindCollectible  ItemKind = "collectible"
	KindClassUnlock  ItemKind = "class-unlock"
)

// LineItem is one entry in the cart, keyed by product ID. UnitPrice is
// fixed at the moment the item is first added; later catalog changes do
// not reach existing carts.
type LineItem struct {
	ID            string   `json:"id"`
	DisplayName   string   `json:"displayName"`
	UnitPrice     int64    `json:"unitPrice"`
	Kind          ItemKind `json:"kind"`
	Quantity      int      `json:"quantity"`
	ImageRef      string   `json:"imageRef,omitempty"`
	PackageAmount int64    `json:"packageAmount,omitempty"`
}

// LineTotal is the price contribution of this line.
func (li LineItem) LineTotal() int64 {
	return li.UnitPrice * int64(li.Quantity)
}
