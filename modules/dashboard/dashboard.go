// Package dashboard fetches the aggregate counts behind the home-page
// stat cards.
package dashboard

import (
	"context"
	"net/url"
	"strconv"

	"github.com/xetasuite/xetasuite-go/pkg/apiclient"
	"github.com/xetasuite/xetasuite-go/pkg/apierrors"
	"github.com/xetasuite/xetasuite-go/pkg/endpoints"
)

type Statistics struct {
	Sites                int `json:"sites"`
	Zones                int `json:"zones"`
	Items                int `json:"items"`
	Materials            int `json:"materials"`
	OpenIncidents        int `json:"open_incidents"`
	UpcomingMaintenances int `json:"upcoming_maintenances"`
	CleaningsThisWeek    int `json:"cleanings_this_week"`
	Users                int `json:"users"`
}

type Repository struct {
	client *apiclient.Client
}

func NewRepository(client *apiclient.Client) *Repository {
	return &Repository{client: client}
}

// Overview fetches the counts, scoped to one site when siteID > 0.
func (r *Repository) Overview(ctx context.Context, siteID int) (*Statistics, error) {
	var params url.Values
	if siteID > 0 {
		params = url.Values{"site_id": []string{strconv.Itoa(siteID)}}
	}
	var envelope apiclient.DataEnvelope[Statistics]
	if err := r.client.Get(ctx, endpoints.Dashboard, params, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetOverview(ctx context.Context, siteID int) (*Statistics, error) {
	stats, err := s.repo.Overview(ctx, siteID)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return stats, nil
}
