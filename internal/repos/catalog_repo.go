package repos

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yuvaraj-20/trendwear-core/internal/domain"
)

// CatalogRepo is the catalog-source collaborator: it hands out item
// collections by kind, already restricted to listable rows. Engagement
// counters are whatever the server last wrote; this side never mutates them.
type CatalogRepo struct{ db *sqlx.DB }

func NewCatalogRepo(db *sqlx.DB) *CatalogRepo { return &CatalogRepo{db: db} }

type itemRow struct {
	ID             string  `db:"id"`
	Kind           string  `db:"kind"`
	Name           string  `db:"name"`
	Description    string  `db:"description"`
	Category       string  `db:"category"`
	Price          float64 `db:"price"`
	TagsJSON       string  `db:"tags_json"`
	CreatedAt      string  `db:"created_at"`
	Approved       bool    `db:"approved"`
	SizesJSON      string  `db:"sizes_json"`
	ColorsJSON     string  `db:"colors_json"`
	Stock          int     `db:"stock"`
	Condition      string  `db:"condition"`
	Status         string  `db:"status"`
	Size           string  `db:"size"`
	Gender         string  `db:"gender"`
	Occasion       string  `db:"occasion"`
	Season         string  `db:"season"`
	ComboItemsJSON string  `db:"combo_items_json"`
	TotalPrice     float64 `db:"total_price"`
	DiscountPct    float64 `db:"discount_pct"`
	Likes          int     `db:"likes"`
	Views          int     `db:"views"`
	Shares         int     `db:"shares"`
	OrdersCount    int     `db:"orders_count"`
	Comments       int     `db:"comments"`
	TrendingScore  float64 `db:"trending_score"`
	IsTrending     bool    `db:"is_trending"`
}

const itemCols = `
  id, kind, name, COALESCE(description,'') AS description, COALESCE(category,'') AS category,
  price, COALESCE(tags_json,'') AS tags_json, COALESCE(created_at,'') AS created_at, approved,
  COALESCE(sizes_json,'') AS sizes_json, COALESCE(colors_json,'') AS colors_json, stock,
  COALESCE(condition,'') AS condition, COALESCE(status,'') AS status, COALESCE(size,'') AS size,
  COALESCE(gender,'') AS gender, COALESCE(occasion,'') AS occasion, COALESCE(season,'') AS season,
  COALESCE(combo_items_json,'') AS combo_items_json, total_price, discount_pct,
  likes, views, shares, orders_count, comments, trending_score, is_trending`

// ListByKind returns the listable items of one kind, newest first. Thrift
// rows additionally require moderation status 'approved'.
func (r *CatalogRepo) ListByKind(kind domain.Kind) ([]domain.Item, error) {
	var rows []itemRow
	err := r.db.Select(&rows, `
	  SELECT `+itemCols+`
	  FROM items
	  WHERE kind = ? AND approved = 1
	    AND (kind != 'thrift' OR status = 'approved')
	  ORDER BY created_at DESC
	`, string(kind))
	if err != nil {
		return nil, err
	}
	return toItems(rows), nil
}

// ListAll returns every listable item across kinds, newest first.
func (r *CatalogRepo) ListAll() ([]domain.Item, error) {
	var rows []itemRow
	err := r.db.Select(&rows, `
	  SELECT `+itemCols+`
	  FROM items
	  WHERE approved = 1 AND (kind != 'thrift' OR status = 'approved')
	  ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return toItems(rows), nil
}

func (r *CatalogRepo) Get(id string) (domain.Item, error) {
	var row itemRow
	if err := r.db.Get(&row, `SELECT `+itemCols+` FROM items WHERE id = ?`, id); err != nil {
		return domain.Item{}, err
	}
	return row.toDomain(), nil
}

func toItems(rows []itemRow) []domain.Item {
	out := make([]domain.Item, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

func (r itemRow) toDomain() domain.Item {
	it := domain.Item{
		ID:                 r.ID,
		Kind:               domain.Kind(r.Kind),
		Name:               r.Name,
		Description:        r.Description,
		Category:           r.Category,
		Price:              r.Price,
		Approved:           r.Approved,
		Stock:              r.Stock,
		Condition:          r.Condition,
		Status:             r.Status,
		Size:               r.Size,
		Gender:             r.Gender,
		Occasion:           r.Occasion,
		Season:             r.Season,
		TotalPrice:         r.TotalPrice,
		DiscountPercentage: r.DiscountPct,
		Likes:              r.Likes,
		Views:              r.Views,
		Shares:             r.Shares,
		Orders:             r.OrdersCount,
		Comments:           r.Comments,
		TrendingScore:      r.TrendingScore,
		IsTrending:         r.IsTrending,
	}
	if t, err := time.Parse(time.RFC3339, r.CreatedAt); err == nil {
		it.CreatedAt = t
	}
	unmarshalList(r.TagsJSON, &it.Tags)
	unmarshalList(r.SizesJSON, &it.Sizes)
	unmarshalList(r.ColorsJSON, &it.Colors)
	if r.ComboItemsJSON != "" {
		_ = json.Unmarshal([]byte(r.ComboItemsJSON), &it.Items)
	}
	return it
}

func unmarshalList(s string, dst *[]string) {
	if s != "" {
		_ = json.Unmarshal([]byte(s), dst)
	}
}
