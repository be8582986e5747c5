package maintenance

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

func (r *Repository) ListIncidents(ctx context.Context, filters query.Filters) (*pagination.Page[Incident], error) {
	var page pagination.Page[Incident]
	if err := r.client.Get(ctx, endpoints.Incidents.Base, filters.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *Repository) GetIncident(ctx context.Context, id int) (*Incident, error) {
	var envelope apiclient.DataEnvelope[Incident]
	if err := r.client.Get(ctx, endpoints.Incidents.Detail(id), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) CreateIncident(ctx context.Context, draft IncidentDraft) (*Incident, error) {
	var envelope apiclient.DataEnvelope[Incident]
	if err := r.client.Post(ctx, endpoints.Incidents.Base, draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) UpdateIncident(ctx context.Context, id int, draft IncidentDraft) (*Incident, error) {
	var envelope apiclient.DataEnvelope[Incident]
	if err := r.client.Put(ctx, endpoints.Incidents.Detail(id), draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// ResolveIncident flips the incident to resolved server-side; the updated
// entity comes back in the response.
func (r *Repository) ResolveIncident(ctx context.Context, id int) (*Incident, error) {
	var envelope apiclient.DataEnvelope[Incident]
	if err := r.client.Patch(ctx, endpoints.IncidentResolve(id), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) DeleteIncident(ctx context.Context, id int) error {
	return r.client.Delete(ctx, endpoints.Incidents.Detail(id))
}

func (r *Repository) ListMaintenances(ctx context.Context, filters query.Filters) (*pagination.Page[Maintenance], error) {
	var page pagination.Page[Maintenance]
	if err := r.client.Get(ctx, endpoints.Maintenances.Base, filters.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *Repository) GetMaintenance(ctx context.Context, id int) (*Maintenance, error) {
	var envelope apiclient.DataEnvelope[Maintenance]
	if err := r.client.Get(ctx, endpoints.Maintenances.Detail(id), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) CreateMaintenance(ctx context.Context, draft MaintenanceDraft) (*Maintenance, error) {
	var envelope apiclient.DataEnvelope[Maintenance]
	if err := r.client.Post(ctx, endpoints.Maintenances.Base, draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) UpdateMaintenance(ctx context.Context, id int, draft MaintenanceDraft) (*Maintenance, error) {
	var envelope apiclient.DataEnvelope[Maintenance]
	if err := r.client.Put(ctx, endpoints.Maintenances.Detail(id), draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) DeleteMaintenance(ctx context.Context, id int) error {
	return r.client.Delete(ctx, endpoints.Maintenances.Detail(id))
}

func (r *Repository) ListCleanings(ctx context.Context, filters query.Filters) (*pagination.Page[Cleaning], error) {
	var page pagination.Page[Cleaning]
	if err := r.client.Get(ctx, endpoints.Cleanings.Base, filters.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *Repository) GetCleaning(ctx context.Context, id int) (*Cleaning, error) {
	var envelope apiclient.DataEnvelope[Cleaning]
	if err := r.client.Get(ctx, endpoints.Cleanings.Detail(id), nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) CreateCleaning(ctx context.Context, draft CleaningDraft) (*Cleaning, error) {
	var envelope apiclient.DataEnvelope[Cleaning]
	if err := r.client.Post(ctx, endpoints.Cleanings.Base, draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) UpdateCleaning(ctx context.Context, id int, draft CleaningDraft) (*Cleaning, error) {
	var envelope apiclient.DataEnvelope[Cleaning]
	if err := r.client.Put(ctx, endpoints.Cleanings.Detail(id), draft, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

func (r *Repository) DeleteCleaning(ctx context.Context, id int) error {
	return r.client.Delete(ctx, endpoints.Cleanings.Detail(id))
}
