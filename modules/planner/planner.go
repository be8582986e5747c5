// Package planner exposes the calendar: a read-only, date-ranged merge of
// maintenances and cleanings.
package planner

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/xetasuite/xetasuite-go/pkg/apiclient"
	"github.com/xetasuite/xetasuite-go/pkg/apierrors"
	"github.com/xetasuite/xetasuite-go/pkg/endpoints"
)

// EventKind tags the source entity of a calendar event.
type EventKind string

const (
	KindMaintenance EventKind = "maintenance"
	KindCleaning    EventKind = "cleaning"
)

type Event struct {
	ID       int       `json:"id"`
	Kind     EventKind `json:"kind"`
	Title    string    `json:"title"`
	SiteID   int       `json:"site_id"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	AllDay   bool      `json:"all_day"`
}

type Repository struct {
	client *apiclient.Client
}

func NewRepository(client *apiclient.Client) *Repository {
	return &Repository{client: client}
}

// Range fetches events overlapping [from, to]. siteID 0 means all sites.
func (r *Repository) Range(ctx context.Context, from, to time.Time, siteID int) ([]Event, error) {
	params := url.Values{}
	params.Set("from", from.Format("2006-01-02"))
	params.Set("to", to.Format("2006-01-02"))
	if siteID > 0 {
		params.Set("site_id", strconv.Itoa(siteID))
	}
	var envelope apiclient.DataEnvelope[[]Event]
	if err := r.client.Get(ctx, endpoints.Calendar, params, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetRange(ctx context.Context, from, to time.Time, siteID int) ([]Event, error) {
	events, err := s.repo.Range(ctx, from, to, siteID)
	if err != nil {
		return nil, apierrors.Normalize(err)
	}
	return events, nil
}
