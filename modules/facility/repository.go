package facility

import (
	"context"

	"github.com/xetasuite/xetasuite-go/pkg/apiclient"
	"github.com/xetasuite/xetasuite-go/pkg/endpoints"
	"github.com/xetasuite/xetasuite-go/pkg/pagination"
	"github.com/xetasuite/xetasuite-go/pkg/query"
)

// Repository is the only layer of this module doing network I/O. It maps
// routes to typed payloads and lets transport errors pass through
// untouched; normalization happens one layer up.
type Repository struct {
	client *apiclient.Client
}

func NewRepository(client *apiclient.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) ListSites(ctx context.Context, filters query.Filters) (*pagination.Page[Site], error) {
	var page pagination.Page[Site]
	if err := r.client.Get(ctx, endpoints.Sites.Base, filters.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *Repository) GetSite(ctx context.Context, id int) (*Site, error) {
	var envelope apiclient.DataEnvelope[Site]
	if err := r.client.Get(ctx, endpoints.Sites.Detail(id), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) CreateSite(ctx context.Context, draft SiteDraft) (*Site, error) {
	var envelope apiclient.DataEnvelope[Site]
	if err := r.client.Post(ctx, endpoints.Sites.Base, draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) UpdateSite(ctx context.Context, id int, draft SiteDraft) (*Site, error) {
	var envelope apiclient.DataEnvelope[Site]
	if err := r.client.Put(ctx, endpoints.Sites.Detail(id), draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) DeleteSite(ctx context.Context, id int) error {
	return r.client.Delete(ctx, endpoints.Sites.Detail(id))
}

func (r *Repository) ListZones(ctx context.Context, filters query.Filters) (*pagination.Page[Zone], error) {
	var page pagination.Page[Zone]
	if err := r.client.Get(ctx, endpoints.Zones.Base, filters.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *Repository) GetZone(ctx context.Context, id int) (*Zone, error) {
	var envelope apiclient.DataEnvelope[Zone]
	if err := r.client.Get(ctx, endpoints.Zones.Detail(id), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// ZoneTree returns every zone of a site as a flat list ordered by path;
// callers rebuild the tree from ParentID.
func (r *Repository) ZoneTree(ctx context.Context, siteID int) ([]Zone, error) {
	var envelope apiclient.DataEnvelope[[]Zone]
	if err := r.client.Get(ctx, endpoints.ZoneTree(siteID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (r *Repository) CreateZone(ctx context.Context, draft ZoneDraft) (*Zone, error) {
	var envelope apiclient.DataEnvelope[Zone]
	if err := r.client.Post(ctx, endpoints.Zones.Base, draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) UpdateZone(ctx context.Context, id int, draft ZoneDraft) (*Zone, error) {
	var envelope apiclient.DataEnvelope[Zone]
	if err := r.client.Put(ctx, endpoints.Zones.Detail(id), draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) DeleteZone(ctx context.Context, id int) error {
	return r.client.Delete(ctx, endpoints.Zones.Detail(id))
}
