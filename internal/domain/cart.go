package domain

import "strings"

// LineKey is the identity of a cart line. At most one line per key exists in
// a well-formed cart.
type LineKey struct {
	ProductID string
	Size      string
	Color     string
}

func (k LineKey) String() string {
	return strings.Join([]string{k.ProductID, k.Size, k.Color}, "|")
}

// CartLine is one cart entry. UnitPrice is a snapshot taken when the line was
// first added; it is not refreshed from the catalog afterwards.
type CartLine struct {
	ID        string
	ProductID string
	Size      string
	Color     string
	Quantity  int
	UnitPrice float64
}

func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.ProductID, Size: l.Size, Color: l.Color}
}

func (l CartLine) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}
