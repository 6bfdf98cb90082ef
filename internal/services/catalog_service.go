package services

import (
	"github.com/yuvaraj-20/trendwear-core/internal/catalog"
	"github.com/yuvaraj-20/trendwear-core/internal/config"
	"github.com/yuvaraj-20/trendwear-core/internal/domain"
	"github.com/yuvaraj-20/trendwear-core/internal/repos"
)

// CatalogService glues the catalog source to the filter and ranking engines:
// fetch, narrow, order, page. Engagement counters come in with the items and
// are never touched here.
type CatalogService struct {
	Repo     *repos.CatalogRepo
	Settings config.Settings
}

func NewCatalogService(repo *repos.CatalogRepo, settings config.Settings) *CatalogService {
	return &CatalogService{Repo: repo, Settings: settings}
}

// Browse returns one page of items of the given kind matching spec, ordered
// by spec.SortBy. An empty kind browses across all kinds.
func (s *CatalogService) Browse(kind domain.Kind, spec domain.FilterSpec, page, pageSize int) ([]domain.Item, error) {
	items, err := s.list(kind)
	if err != nil {
		return nil, err
	}
	out := catalog.Filter(items, spec)
	out = catalog.Rank(out, spec.SortBy, s.Settings.Weights)
	return catalog.Page(out, page, pageSize, s.Settings.PageSize), nil
}

// Trending returns the surfaced trending combo feed.
func (s *CatalogService) Trending() ([]domain.Item, error) {
	combos, err := s.Repo.ListByKind(domain.KindCombo)
	if err != nil {
		return nil, err
	}
	return catalog.TrendingFeed(combos, s.Settings.Weights, s.Settings.TrendingFeedSize), nil
}

func (s *CatalogService) Get(id string) (domain.Item, error) {
	return s.Repo.Get(id)
}

func (s *CatalogService) list(kind domain.Kind) ([]domain.Item, error) {
	if kind == "" {
		return s.Repo.ListAll()
	}
	return s.Repo.ListByKind(kind)
}
