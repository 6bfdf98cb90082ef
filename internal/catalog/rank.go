package catalog

import (
	"sort"

	"github.com/yuvaraj-20/trendwear-core/internal/domain"
)

// Weights are the admin-tunable multipliers behind the trending score. An
// order is the strongest signal, a comment the weakest.
type Weights struct {
	Likes    int
	Shares   int
	Orders   int
	Comments int
}

func DefaultWeights() Weights {
	return Weights{Likes: 2, Shares: 3, Orders: 4, Comments: 1}
}

// TrendingScore computes the weighted engagement score for an item. Only
// combos carry the full counter set, but the formula is total for any item.
func TrendingScore(it domain.Item, w Weights) float64 {
	return float64(it.Likes*w.Likes + it.Shares*w.Shares +
		it.Orders*w.Orders + it.Comments*w.Comments)
}

// Rank returns a new slice ordered by the given sort key. Ties keep their
// relative input order; an unknown key falls back to newest-first. The input
// is never mutated.
func Rank(items []domain.Item, sortBy domain.SortKey, w Weights) []domain.Item {
	out := make([]domain.Item, len(items))
	copy(out, items)

	var less func(a, b domain.Item) bool
	switch sortBy {
	case domain.SortPopular:
		less = func(a, b domain.Item) bool { return a.Popularity() > b.Popularity() }
	case domain.SortTrending:
		less = func(a, b domain.Item) bool { return TrendingScore(a, w) > TrendingScore(b, w) }
	case domain.SortPriceLow:
		less = func(a, b domain.Item) bool { return a.EffectivePrice() < b.EffectivePrice() }
	case domain.SortPriceHigh:
		less = func(a, b domain.Item) bool { return a.EffectivePrice() > b.EffectivePrice() }
	default: // SortNewest and anything unrecognized
		less = func(a, b domain.Item) bool { return a.CreatedAt.After(b.CreatedAt) }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// TrendingFeed selects the surfaced trending list: listable items flagged
// trending, ranked by score, truncated to size.
func TrendingFeed(items []domain.Item, w Weights, size int) []domain.Item {
	feed := make([]domain.Item, 0, size)
	for _, it := range items {
		if it.Listable() && it.IsTrending {
			feed = append(feed, it)
		}
	}
	feed = Rank(feed, domain.SortTrending, w)
	if size > 0 && len(feed) > size {
		feed = feed[:size]
	}
	return feed
}

// Page slices a ranked list for display. page counts from 1; out-of-range
// values clamp the same way the storefront always has: page < 1 becomes 1,
// size <= 0 becomes defaultSize.
func Page(items []domain.Item, page, size, defaultSize int) []domain.Item {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultSize
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []domain.Item{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
