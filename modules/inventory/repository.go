package inventory

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

func (r *Repository) ListItems(ctx context.Context, filters query.Filters) (*pagination.Page[Item], error) {
	var page pagination.Page[Item]
	if err := r.client.Get(ctx, endpoints.Items.Base, filters.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *Repository) GetItem(ctx context.Context, id int) (*Item, error) {
	var envelope apiclient.DataEnvelope[Item]
	if err := r.client.Get(ctx, endpoints.Items.Detail(id), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) CreateItem(ctx context.Context, draft ItemDraft) (*Item, error) {
	var envelope apiclient.DataEnvelope[Item]
	if err := r.client.Post(ctx, endpoints.Items.Base, draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) UpdateItem(ctx context.Context, id int, draft ItemDraft) (*Item, error) {
	var envelope apiclient.DataEnvelope[Item]
	if err := r.client.Put(ctx, endpoints.Items.Detail(id), draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) DeleteItem(ctx context.Context, id int) error {
	return r.client.Delete(ctx, endpoints.Items.Detail(id))
}

func (r *Repository) ListMaterials(ctx context.Context, filters query.Filters) (*pagination.Page[Material], error) {
	var page pagination.Page[Material]
	if err := r.client.Get(ctx, endpoints.Materials.Base, filters.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *Repository) MaterialsByItem(ctx context.Context, itemID int) ([]Material, error) {
	var envelope apiclient.DataEnvelope[[]Material]
	if err := r.client.Get(ctx, endpoints.MaterialsByItem(itemID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (r *Repository) GetMaterial(ctx context.Context, id int) (*Material, error) {
	var envelope apiclient.DataEnvelope[Material]
	if err := r.client.Get(ctx, endpoints.Materials.Detail(id), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) CreateMaterial(ctx context.Context, draft MaterialDraft) (*Material, error) {
	var envelope apiclient.DataEnvelope[Material]
	if err := r.client.Post(ctx, endpoints.Materials.Base, draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) UpdateMaterial(ctx context.Context, id int, draft MaterialDraft) (*Material, error) {
	var envelope apiclient.DataEnvelope[Material]
	if err := r.client.Put(ctx, endpoints.Materials.Detail(id), draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) DeleteMaterial(ctx context.Context, id int) error {
	return r.client.Delete(ctx, endpoints.Materials.Detail(id))
}
