package catalog

import (
	"strings"

	"github.com/yuvaraj-20/trendwear-core/internal/domain"
)

// Wildcard item values: a unisex combo satisfies any gender constraint and an
// all-season combo satisfies any season constraint.
const (
	WildcardGender = "unisex"
	WildcardSeason = "all season"
)

// active reports whether a spec field actually constrains anything. The
// sentinel domain.All and the empty string both mean "no constraint".
func active(v string) bool {
	return v != "" && !strings.EqualFold(v, domain.All)
}

// matchValue is the single comparison rule every enum-ish constraint goes
// through: the item value matches when it equals one of the listed wildcards
// or equals the requested value, case-insensitively.
func matchValue(requested, value string, wildcards ...string) bool {
	for _, w := range wildcards {
		if strings.EqualFold(value, w) {
			return true
		}
	}
	return strings.EqualFold(requested, value)
}

// Filter narrows items to those satisfying every active constraint in spec.
// It is pure and order-preserving: the result is a subsequence of items.
func Filter(items []domain.Item, spec domain.FilterSpec) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if Matches(it, spec) {
			out = append(out, it)
		}
	}
	return out
}

// Matches reports whether a single item satisfies every active constraint.
func Matches(it domain.Item, spec domain.FilterSpec) bool {
	if active(spec.Category) && !matchValue(spec.Category, it.Category) {
		return false
	}
	if active(spec.Condition) && !matchValue(spec.Condition, it.Condition) {
		return false
	}
	if active(spec.Size) && !matchSize(spec.Size, it) {
		return false
	}
	if active(spec.Gender) {
		if it.Kind == domain.KindCombo {
			if !matchValue(spec.Gender, it.Gender, WildcardGender) {
				return false
			}
		} else if !matchValue(spec.Gender, it.Gender) {
			return false
		}
	}
	if active(spec.Occasion) && !matchValue(spec.Occasion, it.Occasion) {
		return false
	}
	if active(spec.Season) {
		if it.Kind == domain.KindCombo {
			if !matchValue(spec.Season, it.Season, WildcardSeason) {
				return false
			}
		} else if !matchValue(spec.Season, it.Season) {
			return false
		}
	}
	if spec.Price != nil {
		p := it.EffectivePrice()
		if p < spec.Price.Min || p > spec.Price.Max {
			return false
		}
	}
	if q := strings.TrimSpace(spec.Search); q != "" {
		if !matchSearch(q, it) {
			return false
		}
	}
	return true
}

// matchSize compares against the thrift size, or against any of a product's
// size options.
func matchSize(requested string, it domain.Item) bool {
	if it.Size != "" {
		return matchValue(requested, it.Size)
	}
	for _, s := range it.Sizes {
		if matchValue(requested, s) {
			return true
		}
	}
	return false
}

func matchSearch(q string, it domain.Item) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(it.Name), q) ||
		strings.Contains(strings.ToLower(it.Description), q) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
