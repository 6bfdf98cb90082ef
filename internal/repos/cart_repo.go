package repos

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yuvaraj-20/trendwear-core/internal/domain"
)

// CartRepo persists cart snapshots per owner (guest session id or user id).
// It implements the store interface the state manager consumes.
type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

type cartLineRow struct {
	ProductID  string  `db:"product_id"`
	Size       string  `db:"size"`
	Color      string  `db:"color"`
	Qty        int     `db:"qty"`
	PriceAtAdd float64 `db:"price_at_add"`
}

// Load returns the owner's cart lines; an unknown owner gets an empty cart.
func (r *CartRepo) Load(ownerID string) ([]domain.CartLine, error) {
	var rows []cartLineRow
	err := r.db.Select(&rows, `
	  SELECT product_id, size, color, qty, price_at_add
	  FROM cart_items WHERE owner_id = ?
	  ORDER BY product_id, size, color
	`, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CartLine, 0, len(rows))
	for _, row := range rows {
		l := domain.CartLine{
			ProductID: row.ProductID,
			Size:      row.Size,
			Color:     row.Color,
			Quantity:  row.Qty,
			UnitPrice: row.PriceAtAdd,
		}
		l.ID = l.Key().String()
		out = append(out, l)
	}
	return out, nil
}

// Save replaces the owner's stored cart with the given snapshot.
func (r *CartRepo) Save(ownerID string, lines []domain.CartLine) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO carts(owner_id, updated_at) VALUES(?, ?)
	  ON CONFLICT(owner_id) DO UPDATE SET updated_at = excluded.updated_at
	`, ownerID, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM cart_items WHERE owner_id = ?`, ownerID); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := tx.Exec(`
		  INSERT INTO cart_items(owner_id, product_id, size, color, qty, price_at_add)
		  VALUES(?, ?, ?, ?, ?, ?)
		`, ownerID, l.ProductID, l.Size, l.Color, l.Quantity, l.UnitPrice); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Clear drops the owner's cart entirely. Items are deleted explicitly since
// the foreign_keys pragma is per-connection and the pool may hand out one
// that never ran it.
func (r *CartRepo) Clear(ownerID string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM cart_items WHERE owner_id = ?`, ownerID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM carts WHERE owner_id = ?`, ownerID); err != nil {
		return err
	}
	return tx.Commit()
}
