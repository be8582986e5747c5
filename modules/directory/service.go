package directory

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

func (s *Service) GetCompanies(ctx context.Context, filters query.Filters) (*pagination.Page[Company], error) {
	page, err := s.repo.ListCompanies(ctx, filters)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return page, nil
}

func (s *Service) GetCompanyByID(ctx context.Context, id int) (*Company, error) {
	company, err := s.repo.GetCompany(ctx, id)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return company, nil
}

func (s *Service) CreateCompany(ctx context.Context, draft CompanyDraft) (*Company, error) {
	company, err := s.repo.CreateCompany(ctx, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return company, nil
}

func (s *Service) UpdateCompany(ctx context.Context, id int, draft CompanyDraft) (*Company, error) {
	company, err := s.repo.UpdateCompany(ctx, id, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return company, nil
}

func (s *Service) DeleteCompany(ctx context.Context, id int) error {
	return apierrors.Normalize(s.repo.DeleteCompany(ctx, id))
}

func (s *Service) GetUsers(ctx context.Context, filters query.Filters) (*pagination.Page[User], error) {
	page, err := s.repo.ListUsers(ctx, filters)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return page, nil
}

func (s *Service) GetUserByID(ctx context.Context, id int) (*User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return user, nil
}

func (s *Service) CreateUser(ctx context.Context, draft UserDraft) (*User, error) {
	user, err := s.repo.CreateUser(ctx, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int, draft UserDraft) (*User, error) {
	user, err := s.repo.UpdateUser(ctx, id, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return user, nil
}

// GetCurrentUser resolves the logged-in account; 401 means no session.
func (s *Service) GetCurrentUser(ctx context.Context) (*User, error) {
	user, err := s.repo.CurrentUser(ctx)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int) error {
	return apierrors.Normalize(s.repo.DeleteUser(ctx, id))
}

func (s *Service) GetRoles(ctx context.Context, filters query.Filters) (*pagination.Page[Role], error) {
	page, err := s.repo.ListRoles(ctx, filters)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return page, nil
}

func (s *Service) GetRoleByID(ctx context.Context, id int) (*Role, error) {
	role, err := s.repo.GetRole(ctx, id)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return role, nil
}

func (s *Service) CreateRole(ctx context.Context, draft RoleDraft) (*Role, error) {
	role, err := s.repo.CreateRole(ctx, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return role, nil
}

func (s *Service) UpdateRole(ctx context.Context, id int, draft RoleDraft) (*Role, error) {
	role, err := s.repo.UpdateRole(ctx, id, draft)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return role, nil
}

func (s *Service) DeleteRole(ctx context.Context, id int) error {
	return apierrors.Normalize(s.repo.DeleteRole(ctx, id))
}

// GetPermissions returns the permission-flag catalog role forms render
// their checkbox grid from.
func (s *Service) GetPermissions(ctx context.Context) ([]Permission, error) {
	permissions, err := s.repo.ListPermissions(ctx)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return permissions, nil
}
