package inventory

import (
	"context"

	"github.com/xetasuite/xetasuite-go/pkg/apierrors"
	"github.com/xetasuite/xetasuite-go/pkg/pagination"
	"github.com/xetasuite/xetasuite-go/pkg/query"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetItems(ctx context.Context, filters query.Filters) (*pagination.Page[Item], error) {
	page, err := s.repo.ListItems(ctx, filters)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return page, nil
}

func (s *Service) GetItemByID(ctx context.Context, id int) (*Item, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return item, nil
}

func (s *Service) CreateItem(ctx context.Context, draft ItemDraft) (*Item, error) {
	item, err := s.repo.CreateItem(ctx, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, id int, draft ItemDraft) (*Item, error) {
	item, err := s.repo.UpdateItem(ctx, id, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, id int) error {
	return apierrors.Normalize(s.repo.DeleteItem(ctx, id))
}

func (s *Service) GetMaterials(ctx context.Context, filters query.Filters) (*pagination.Page[Material], error) {
	page, err := s.repo.ListMaterials(ctx, filters)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return page, nil
}

// GetMaterialsByItem returns the unpaginated materials of one item, used
// by the item detail panel.
func (s *Service) GetMaterialsByItem(ctx context.Context, itemID int) ([]Material, error) {
	materials, err := s.repo.MaterialsByItem(ctx, itemID)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return materials, nil
}

func (s *Service) GetMaterialByID(ctx context.Context, id int) (*Material, error) {
	material, err := s.repo.GetMaterial(ctx, id)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return material, nil
}

func (s *Service) CreateMaterial(ctx context.Context, draft MaterialDraft) (*Material, error) {
	material, err := s.repo.CreateMaterial(ctx, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return material, nil
}

func (s *Service) UpdateMaterial(ctx context.Context, id int, draft MaterialDraft) (*Material, error) {
	material, err := s.repo.UpdateMaterial(ctx, id, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return material, nil
}

func (s *Service) DeleteMaterial(ctx context.Context, id int) error {
	return apierrors.Normalize(s.repo.DeleteMaterial(ctx, id))
}
