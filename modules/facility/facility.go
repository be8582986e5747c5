// Package facility covers the physical layout of an operation: sites and
// the zone tree inside each site.
package facility

import (
	"strconv"
	"time"
)

type Site struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Zone is a node of a site's zone tree. ParentID is nil for roots;
// FullPath is the server-computed breadcrumb ("Building A / Floor 2").
type Zone struct {
	ID        int       `json:"id"`
	SiteID    int       `json:"site_id"`
	ParentID  *int      `json:"parent_id"`
	Name      string    `json:"name"`
	FullPath  string    `json:"full_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteDraft is the create/update payload for sites.
type SiteDraft struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Active  bool   `json:"active"`
}

// ZoneDraft is the create/update payload for zones.
type ZoneDraft struct {
	SiteID   int    `json:"site_id" validate:"required"`
	ParentID *int   `json:"parent_id"`
	Name     string `json:"name" validate:"required"`
}

func (s Site) OptionID() string    { return strconv.Itoa(s.ID) }
func (s Site) OptionLabel() string { return s.Name }

func (z Zone) OptionID() string    { return strconv.Itoa(z.ID) }
func (z Zone) OptionLabel() string { return z.FullPath }
