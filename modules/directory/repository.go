package directory

import (
	"context"

	"github.com/xetasuite/xetasuite-go/pkg/apiclient"
	"github.com/xetasuite/xetasuite-go/pkg/endpoints"
	"github.com/xetasuite/xetasuite-go/pkg/pagination"
	"github.com/xetasuite/xetasuite-go/pkg/query"
)

type Repository struct {
	client *apiclient.Client
}

func NewRepository(client *apiclient.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) ListCompanies(ctx context.Context, filters query.Filters) (*pagination.Page[Company], error) {
	var page pagination.Page[Company]
	if err := r.client.Get(ctx, endpoints.Companies.Base, filters.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *Repository) GetCompany(ctx context.Context, id int) (*Company, error) {
	var envelope apiclient.DataEnvelope[Company]
	if err := r.client.Get(ctx, endpoints.Companies.Detail(id), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) CreateCompany(ctx context.Context, draft CompanyDraft) (*Company, error) {
	var envelope apiclient.DataEnvelope[Company]
	if err := r.client.Post(ctx, endpoints.Companies.Base, draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) UpdateCompany(ctx context.Context, id int, draft CompanyDraft) (*Company, error) {
	var envelope apiclient.DataEnvelope[Company]
	if err := r.client.Put(ctx, endpoints.Companies.Detail(id), draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) DeleteCompany(ctx context.Context, id int) error {
	return r.client.Delete(ctx, endpoints.Companies.Detail(id))
}

func (r *Repository) ListUsers(ctx context.Context, filters query.Filters) (*pagination.Page[User], error) {
	var page pagination.Page[User]
	if err := r.client.Get(ctx, endpoints.Users.Base, filters.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *Repository) GetUser(ctx context.Context, id int) (*User, error) {
	var envelope apiclient.DataEnvelope[User]
	if err := r.client.Get(ctx, endpoints.Users.Detail(id), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) CreateUser(ctx context.Context, draft UserDraft) (*User, error) {
	var envelope apiclient.DataEnvelope[User]
	if err := r.client.Post(ctx, endpoints.Users.Base, draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) UpdateUser(ctx context.Context, id int, draft UserDraft) (*User, error) {
	var envelope apiclient.DataEnvelope[User]
	if err := r.client.Put(ctx, endpoints.Users.Detail(id), draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) DeleteUser(ctx context.Context, id int) error {
	return r.client.Delete(ctx, endpoints.Users.Detail(id))
}

// CurrentUser returns the account behind the session cookie.
func (r *Repository) CurrentUser(ctx context.Context) (*User, error) {
	var envelope apiclient.DataEnvelope[User]
	if err := r.client.Get(ctx, endpoints.Auth.Me, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) ListRoles(ctx context.Context, filters query.Filters) (*pagination.Page[Role], error) {
	var page pagination.Page[Role]
	if err := r.client.Get(ctx, endpoints.Roles.Base, filters.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *Repository) GetRole(ctx context.Context, id int) (*Role, error) {
	var envelope apiclient.DataEnvelope[Role]
	if err := r.client.Get(ctx, endpoints.Roles.Detail(id), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) CreateRole(ctx context.Context, draft RoleDraft) (*Role, error) {
	var envelope apiclient.DataEnvelope[Role]
	if err := r.client.Post(ctx, endpoints.Roles.Base, draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) UpdateRole(ctx context.Context, id int, draft RoleDraft) (*Role, error) {
	var envelope apiclient.DataEnvelope[Role]
	if err := r.client.Put(ctx, endpoints.Roles.Detail(id), draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) DeleteRole(ctx context.Context, id int) error {
	return r.client.Delete(ctx, endpoints.Roles.Detail(id))
}

// ListPermissions returns the full flag catalog; it is not paginated.
func (r *Repository) ListPermissions(ctx context.Context) ([]Permission, error) {
	var envelope apiclient.DataEnvelope[[]Permission]
	if err := r.client.Get(ctx, endpoints.Permissions, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}
