// Package state owns the mutable session reference the pure engines refuse
// to hold: current cart lines, the wishlist, and the one-time guest→user cart
// merge. Mutations are applied optimistically and rolled back when the
// persistence call fails, so a failed save never leaves a half-applied cart.
package state

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/yuvaraj-20/trendwear-core/internal/cart"
	"github.com/yuvaraj-20/trendwear-core/internal/domain"
	"github.com/yuvaraj-20/trendwear-core/internal/log"
	"github.com/yuvaraj-20/trendwear-core/internal/wishlist"
)

// ErrAlreadyMerged means UpgradeToUser was called twice for one session.
// The merge runs exactly once per guest→authenticated transition.
var ErrAlreadyMerged = errors.New("state: cart already merged for this session")

// CartStore is the persistence collaborator. Load returns an empty slice for
// an unknown owner, not an error.
type CartStore interface {
	Load(ownerID string) ([]domain.CartLine, error)
	Save(ownerID string, lines []domain.CartLine) error
	Clear(ownerID string) error
}

// Session is a single shopper's in-memory state. It is not safe for
// concurrent use; the caller owns the reference and serializes access.
type Session struct {
	ID     string
	store  CartStore
	lines  []domain.CartLine
	wish   wishlist.Set
	merged bool
}

// NewGuest starts an anonymous session with a fresh id and an empty cart.
func NewGuest(store CartStore) *Session {
	return &Session{ID: uuid.NewString(), store: store, wish: wishlist.New()}
}

// Resume loads an existing owner's cart from the store.
func Resume(store CartStore, ownerID string) (*Session, error) {
	lines, err := store.Load(ownerID)
	if err != nil {
		return nil, fmt.Errorf("resume %s: %w", ownerID, err)
	}
	return &Session{ID: ownerID, store: store, lines: lines, wish: wishlist.New()}, nil
}

// Lines returns a snapshot copy; mutating it does not touch the session.
func (s *Session) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Session) Total() float64 { return cart.Total(s.lines) }

// apply swaps in next, persists, and restores the previous snapshot when the
// save fails.
func (s *Session) apply(next []domain.CartLine) error {
	prev := s.lines
	s.lines = next
	if err := s.store.Save(s.ID, next); err != nil {
		s.lines = prev
		log.Error("cart_save_failed", err, "owner", s.ID)
		return fmt.Errorf("save cart %s: %w", s.ID, err)
	}
	return nil
}

func (s *Session) AddLine(l domain.CartLine) error {
	return s.apply(cart.AddLine(s.lines, l))
}

func (s *Session) SetQuantity(lineID string, qty int) error {
	return s.apply(cart.SetQuantity(s.lines, lineID, qty))
}

func (s *Session) RemoveLine(lineID string) error {
	return s.apply(cart.RemoveLine(s.lines, lineID))
}

// UpgradeToUser merges this session's cart into the authenticated user's
// server cart, exactly once. The server cart is primary: quantities sum and
// server prices win; price divergence is logged since it usually means the
// guest snapshot went stale. On success the guest source is cleared so a
// repeated merge cannot double-count.
func (s *Session) UpgradeToUser(userID string) error {
	if s.merged {
		return ErrAlreadyMerged
	}
	server, err := s.store.Load(userID)
	if err != nil {
		return fmt.Errorf("load user cart %s: %w", userID, err)
	}

	merged, conflicts := cart.Merge(server, s.lines)
	for _, k := range conflicts {
		log.Warn("cart_merge_price_conflict",
			"owner", userID, "product", k.ProductID, "size", k.Size, "color", k.Color)
	}

	if err := s.store.Save(userID, merged); err != nil {
		log.Error("cart_merge_save_failed", err, "owner", userID)
		return fmt.Errorf("save merged cart %s: %w", userID, err)
	}
	guestID := s.ID
	s.ID = userID
	s.lines = merged
	s.merged = true
	if err := s.store.Clear(guestID); err != nil {
		// The merge itself landed; an orphaned guest cart is only cleanup.
		log.Warn("guest_cart_clear_failed", "owner", guestID, "err", err.Error())
	}
	return nil
}

// ToggleWish flips wishlist membership for an item id.
func (s *Session) ToggleWish(itemID string) {
	s.wish = wishlist.Toggle(s.wish, itemID)
}

func (s *Session) Wishlist() wishlist.Set { return s.wish }
