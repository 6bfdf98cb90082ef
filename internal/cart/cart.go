// Package cart holds the pure cart-line operations: the guest/server merge
// and the single-line mutations. All functions return a fresh slice and leave
// their inputs untouched; whoever owns the cart reference applies the result.
package cart

import (
	"github.com/yuvaraj-20/trendwear-core/internal/domain"
)

// normalize gives a line its derived id and a sane quantity before it enters
// a cart.
func normalize(l domain.CartLine) domain.CartLine {
	if l.ID == "" {
		l.ID = l.Key().String()
	}
	if l.Quantity < 1 {
		l.Quantity = 1
	}
	return l
}

// Merge combines a server-authoritative cart with a guest cart. Quantities
// for the same (product, size, color) identity are summed; the primary cart's
// unit price wins on conflict. PriceConflict lists identities whose guest
// snapshot disagreed with the server price, so callers can flag stale caches.
//
// Merge is stateless: merging the same incoming cart twice will double the
// quantities, so callers must clear the guest source after a successful merge.
func Merge(primary, incoming []domain.CartLine) (merged []domain.CartLine, conflicts []domain.LineKey) {
	merged = make([]domain.CartLine, 0, len(primary)+len(incoming))
	for _, l := range primary {
		merged = append(merged, normalize(l))
	}
	for _, in := range incoming {
		in = normalize(in)
		i := indexOf(merged, in.Key())
		if i < 0 {
			merged = append(merged, in)
			continue
		}
		if merged[i].UnitPrice != in.UnitPrice {
			conflicts = append(conflicts, in.Key())
		}
		merged[i].Quantity += in.Quantity
	}
	return merged, conflicts
}

// AddLine adds a line, summing quantities into an existing line with the same
// identity.
func AddLine(lines []domain.CartLine, l domain.CartLine) []domain.CartLine {
	l = normalize(l)
	out := clone(lines)
	if i := indexOf(out, l.Key()); i >= 0 {
		out[i].Quantity += l.Quantity
		return out
	}
	return append(out, l)
}

// SetQuantity sets a line's quantity; qty <= 0 removes the line entirely so a
// zero-quantity line can never exist.
func SetQuantity(lines []domain.CartLine, id string, qty int) []domain.CartLine {
	if qty <= 0 {
		return RemoveLine(lines, id)
	}
	out := clone(lines)
	for i := range out {
		if out[i].ID == id {
			out[i].Quantity = qty
			break
		}
	}
	return out
}

// RemoveLine removes the line with the given id. A missing id is a no-op.
func RemoveLine(lines []domain.CartLine, id string) []domain.CartLine {
	out := make([]domain.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}

// Total is the sum of line subtotals at their add-time prices.
func Total(lines []domain.CartLine) float64 {
	t := 0.0
	for _, l := range lines {
		t += l.Subtotal()
	}
	return t
}

func indexOf(lines []domain.CartLine, k domain.LineKey) int {
	for i := range lines {
		if lines[i].Key() == k {
			return i
		}
	}
	return -1
}

func clone(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}
