package domain

import "time"

// All is the sentinel filter value meaning "do not constrain on this field".
// An empty string is treated the same way.
const All = "all"

type Kind string

const (
	KindProduct Kind = "product"
	KindThrift  Kind = "thrift"
	KindCombo   Kind = "combo"
)

// Item is the common catalog shape shared by products, thrift items and
// outfit combos. Variant fields are zero-valued on kinds they do not apply to.
type Item struct {
	ID          string
	Kind        Kind
	Name        string
	Description string
	Category    string
	Price       float64
	Tags        []string
	CreatedAt   time.Time
	Approved    bool

	// product
	Sizes  []string
	Colors []string
	Stock  int

	// thrift
	Condition string // new | like-new | good | fair
	Status    string // thrift moderation state; "approved" is listable
	Size      string

	// thrift + combo
	Gender string // men | women | unisex
	Likes  int
	Views  int

	// combo
	Occasion           string
	Season             string // or "all season"
	Items              []ComboItem
	TotalPrice         float64
	DiscountPercentage float64 // 0 disables; 0-100
	Shares             int
	Orders             int
	Comments           int
	TrendingScore      float64 // cached; recompute via catalog.TrendingScore
	IsTrending         bool
}

// ComboItem is one garment inside an outfit combo, in outfit order.
type ComboItem struct {
	ID    string
	Name  string
	Price float64
}

// EffectivePrice is the price all range filters and price sorts use: the
// discounted combo total for combos, the list price for everything else.
func (it Item) EffectivePrice() float64 {
	if it.Kind != KindCombo {
		return it.Price
	}
	if it.DiscountPercentage > 0 {
		return it.TotalPrice * (1 - it.DiscountPercentage/100)
	}
	return it.TotalPrice
}

// Popularity sums the engagement counters that count as popularity for the
// item's kind: likes+views for thrift, likes+views+orders for combos.
func (it Item) Popularity() int {
	p := it.Likes + it.Views
	if it.Kind == KindCombo {
		p += it.Orders
	}
	return p
}

// Listable reports whether the item may appear on customer-facing surfaces.
func (it Item) Listable() bool {
	if !it.Approved {
		return false
	}
	if it.Kind == KindThrift {
		return it.Status == "approved"
	}
	return true
}

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPopular   SortKey = "popular"
	SortTrending  SortKey = "trending"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

// PriceRange is inclusive on both ends.
type PriceRange struct {
	Min float64
	Max float64
}

// FilterSpec is the closed set of catalog constraints. Every string field
// accepts All (or "") to mean unconstrained; a nil Price means the same.
// Unknown values never error: they just match nothing but themselves.
type FilterSpec struct {
	Category  string
	Condition string
	Size      string
	Gender    string
	Occasion  string
	Season    string
	Price     *PriceRange
	Search    string
	SortBy    SortKey
}
