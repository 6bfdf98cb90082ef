package catalog_test

import (
	"testing"
	"time"

	"github.com/yuvaraj-20/trendwear-core/internal/catalog"
	"github.com/yuvaraj-20/trendwear-core/internal/domain"
)

func scoredCombo(id string, likes, shares, orders, comments int) domain.Item {
	return domain.Item{
		ID: id, Kind: domain.KindCombo, Name: id, Approved: true, IsTrending: true,
		Likes: likes, Shares: shares, Orders: orders, Comments: comments,
		CreatedAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTrendingScore_DefaultWeights(t *testing.T) {
	it := scoredCombo("c", 10, 5, 3, 7)
	// 10*2 + 5*3 + 3*4 + 7*1 = 54
	if got := catalog.TrendingScore(it, catalog.DefaultWeights()); got != 54 {
		t.Fatalf("want 54, got %v", got)
	}
}

func TestTrendingScore_ConfigurableWeights(t *testing.T) {
	it := scoredCombo("c", 1, 1, 1, 1)
	w := catalog.Weights{Likes: 10, Shares: 20, Orders: 30, Comments: 40}
	if got := catalog.TrendingScore(it, w); got != 100 {
		t.Fatalf("want 100, got %v", got)
	}
}

func TestRank_Trending(t *testing.T) {
	// scores with default weights: mid=500, top=900, low=300
	items := []domain.Item{
		scoredCombo("mid", 250, 0, 0, 0),
		scoredCombo("top", 0, 300, 0, 0),
		scoredCombo("low", 0, 0, 75, 0),
	}
	got := catalog.Rank(items, domain.SortTrending, catalog.DefaultWeights())
	want := []string{"top", "mid", "low"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("pos %d: want %s, got %s", i, id, got[i].ID)
		}
	}
	// input untouched
	if items[0].ID != "mid" {
		t.Fatalf("rank mutated its input")
	}
}

func TestRank_PriceUsesDiscount(t *testing.T) {
	a := scoredCombo("a", 0, 0, 0, 0)
	a.TotalPrice, a.DiscountPercentage = 100, 30 // 70
	b := scoredCombo("b", 0, 0, 0, 0)
	b.TotalPrice = 80 // 80

	low := catalog.Rank([]domain.Item{b, a}, domain.SortPriceLow, catalog.DefaultWeights())
	if low[0].ID != "a" || low[0].EffectivePrice() > low[1].EffectivePrice() {
		t.Fatalf("price-low should lead with discounted combo, got %s", low[0].ID)
	}
	high := catalog.Rank([]domain.Item{a, b}, domain.SortPriceHigh, catalog.DefaultWeights())
	if high[0].ID != "b" {
		t.Fatalf("price-high should lead with undiscounted combo, got %s", high[0].ID)
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	a := scoredCombo("first", 10, 0, 0, 0)
	b := scoredCombo("second", 10, 0, 0, 0)
	got := catalog.Rank([]domain.Item{a, b}, domain.SortTrending, catalog.DefaultWeights())
	if got[0].ID != "first" || got[1].ID != "second" {
		t.Fatalf("tie broke input order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestRank_Newest_DefaultAndUnknownKey(t *testing.T) {
	older := scoredCombo("older", 0, 0, 0, 0)
	older.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := scoredCombo("newer", 0, 0, 0, 0)
	newer.CreatedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, key := range []domain.SortKey{domain.SortNewest, domain.SortKey("bogus"), ""} {
		got := catalog.Rank([]domain.Item{older, newer}, key, catalog.DefaultWeights())
		if got[0].ID != "newer" {
			t.Fatalf("sortBy=%q: want newest first, got %s", key, got[0].ID)
		}
	}
}

func TestRank_PopularPerKind(t *testing.T) {
	th := domain.Item{ID: "th", Kind: domain.KindThrift, Likes: 10, Views: 100, Orders: 999}
	cb := domain.Item{ID: "cb", Kind: domain.KindCombo, Likes: 10, Views: 50, Orders: 60}
	// thrift popularity ignores orders: 110 vs combo 120
	got := catalog.Rank([]domain.Item{th, cb}, domain.SortPopular, catalog.DefaultWeights())
	if got[0].ID != "cb" {
		t.Fatalf("want combo first on popularity, got %s", got[0].ID)
	}
}

func TestTrendingFeed_SelectsFlagsAndTruncates(t *testing.T) {
	items := make([]domain.Item, 0, 14)
	for i := 0; i < 12; i++ {
		it := scoredCombo(string(rune('a'+i)), i+1, 0, 0, 0)
		items = append(items, it)
	}
	notFlagged := scoredCombo("quiet", 500, 0, 0, 0)
	notFlagged.IsTrending = false
	unapproved := scoredCombo("hidden", 500, 0, 0, 0)
	unapproved.Approved = false
	items = append(items, notFlagged, unapproved)

	feed := catalog.TrendingFeed(items, catalog.DefaultWeights(), 10)
	if len(feed) != 10 {
		t.Fatalf("want feed of 10, got %d", len(feed))
	}
	for i := 1; i < len(feed); i++ {
		w := catalog.DefaultWeights()
		if catalog.TrendingScore(feed[i-1], w) < catalog.TrendingScore(feed[i], w) {
			t.Fatalf("feed not sorted by score at %d", i)
		}
	}
	for _, it := range feed {
		if it.ID == "quiet" || it.ID == "hidden" {
			t.Fatalf("%s must not be surfaced", it.ID)
		}
	}
}

func TestPage_Clamps(t *testing.T) {
	items := []domain.Item{
		scoredCombo("a", 0, 0, 0, 0), scoredCombo("b", 0, 0, 0, 0),
		scoredCombo("c", 0, 0, 0, 0),
	}
	if got := catalog.Page(items, 0, 2, 12); len(got) != 2 || got[0].ID != "a" {
		t.Fatalf("page<1 should clamp to first page, got %v", ids(got))
	}
	if got := catalog.Page(items, 2, 2, 12); len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("second page wrong: %v", ids(got))
	}
	if got := catalog.Page(items, 9, 2, 12); len(got) != 0 {
		t.Fatalf("past-the-end page should be empty, got %v", ids(got))
	}
	if got := catalog.Page(items, 1, 0, 2); len(got) != 2 {
		t.Fatalf("size<=0 should use default, got %d", len(got))
	}
}
