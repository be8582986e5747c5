package facility

import (
	"context"

	"github.com/xetasuite/xetasuite-go/pkg/apierrors"
	"github.com/xetasuite/xetasuite-go/pkg/pagination"
	"github.com/xetasuite/xetasuite-go/pkg/query"
)

// Service wraps the repository with the error-normalization convention:
// one repository call per method, single attempt, every failure leaving
// here is apierrors-typed.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetSites(ctx context.Context, filters query.Filters) (*pagination.Page[Site], error) {
	page, err := s.repo.ListSites(ctx, filters)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return page, nil
}

func (s *Service) GetSiteByID(ctx context.Context, id int) (*Site, error) {
	site, err := s.repo.GetSite(ctx, id)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return site, nil
}

func (s *Service) CreateSite(ctx context.Context, draft SiteDraft) (*Site, error) {
	site, err := s.repo.CreateSite(ctx, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return site, nil
}

func (s *Service) UpdateSite(ctx context.Context, id int, draft SiteDraft) (*Site, error) {
	site, err := s.repo.UpdateSite(ctx, id, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return site, nil
}

func (s *Service) DeleteSite(ctx context.Context, id int) error {
	return apierrors.Normalize(s.repo.DeleteSite(ctx, id))
}

func (s *Service) GetZones(ctx context.Context, filters query.Filters) (*pagination.Page[Zone], error) {
	page, err := s.repo.ListZones(ctx, filters)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return page, nil
}

func (s *Service) GetZoneByID(ctx context.Context, id int) (*Zone, error) {
	zone, err := s.repo.GetZone(ctx, id)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return zone, nil
}

func (s *Service) GetZoneTree(ctx context.Context, siteID int) ([]Zone, error) {
	zones, err := s.repo.ZoneTree(ctx, siteID)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return zones, nil
}

func (s *Service) CreateZone(ctx context.Context, draft ZoneDraft) (*Zone, error) {
	zone, err := s.repo.CreateZone(ctx, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return zone, nil
}

func (s *Service) UpdateZone(ctx context.Context, id int, draft ZoneDraft) (*Zone, error) {
	zone, err := s.repo.UpdateZone(ctx, id, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return zone, nil
}

func (s *Service) DeleteZone(ctx context.Context, id int) error {
	return apierrors.Normalize(s.repo.DeleteZone(ctx, id))
}
