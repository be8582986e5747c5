package maintenance

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

func (s *Service) GetIncidents(ctx context.Context, filters query.Filters) (*pagination.Page[Incident], error) {
	page, err := s.repo.ListIncidents(ctx, filters)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return page, nil
}

func (s *Service) GetIncidentByID(ctx context.Context, id int) (*Incident, error) {
	incident, err := s.repo.GetIncident(ctx, id)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return incident, nil
}

func (s *Service) CreateIncident(ctx context.Context, draft IncidentDraft) (*Incident, error) {
	incident, err := s.repo.CreateIncident(ctx, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return incident, nil
}

func (s *Service) UpdateIncident(ctx context.Context, id int, draft IncidentDraft) (*Incident, error) {
	incident, err := s.repo.UpdateIncident(ctx, id, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return incident, nil
}

func (s *Service) ResolveIncident(ctx context.Context, id int) (*Incident, error) {
	incident, err := s.repo.ResolveIncident(ctx, id)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return incident, nil
}

func (s *Service) DeleteIncident(ctx context.Context, id int) error {
	return apierrors.Normalize(s.repo.DeleteIncident(ctx, id))
}

func (s *Service) GetMaintenances(ctx context.Context, filters query.Filters) (*pagination.Page[Maintenance], error) {
	page, err := s.repo.ListMaintenances(ctx, filters)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return page, nil
}

func (s *Service) GetMaintenanceByID(ctx context.Context, id int) (*Maintenance, error) {
	m, err := s.repo.GetMaintenance(ctx, id)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return m, nil
}

func (s *Service) CreateMaintenance(ctx context.Context, draft MaintenanceDraft) (*Maintenance, error) {
	m, err := s.repo.CreateMaintenance(ctx, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return m, nil
}

func (s *Service) UpdateMaintenance(ctx context.Context, id int, draft MaintenanceDraft) (*Maintenance, error) {
	m, err := s.repo.UpdateMaintenance(ctx, id, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return m, nil
}

func (s *Service) DeleteMaintenance(ctx context.Context, id int) error {
	return apierrors.Normalize(s.repo.DeleteMaintenance(ctx, id))
}

func (s *Service) GetCleanings(ctx context.Context, filters query.Filters) (*pagination.Page[Cleaning], error) {
	page, err := s.repo.ListCleanings(ctx, filters)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return page, nil
}

func (s *Service) GetCleaningByID(ctx context.Context, id int) (*Cleaning, error) {
	cleaning, err := s.repo.GetCleaning(ctx, id)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return cleaning, nil
}

func (s *Service) CreateCleaning(ctx context.Context, draft CleaningDraft) (*Cleaning, error) {
	cleaning, err := s.repo.CreateCleaning(ctx, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return cleaning, nil
}

func (s *Service) UpdateCleaning(ctx context.Context, id int, draft CleaningDraft) (*Cleaning, error) {
	cleaning, err := s.repo.UpdateCleaning(ctx, id, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return cleaning, nil
}

func (s *Service) DeleteCleaning(ctx context.Context, id int) error {
	return apierrors.Normalize(s.repo.DeleteCleaning(ctx, id))
}
