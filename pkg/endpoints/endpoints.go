// Package endpoints is the single catalog of backend routes. Paths here
// must stay byte-identical to the server's route table; repositories never
// spell a path themselves.
package endpoints

import "fmt"

const prefix = "/api/v1"

// Auth endpoints sit outside the versioned prefix (Sanctum convention).
var Auth = struct {
	CSRFCookie string
	Login      string
	Logout     string
	Me         string
}{
	CSRFCookie: "/sanctum/csrf-cookie",
	Login:      "/login",
	Logout:     "/logout",
	Me:         prefix + "/me",
}

type resource struct {
	Base string
}

func (r resource) Detail(id int) string {
	return fmt.Sprintf("%s/%d", r.Base, id)
}

var (
	Sites        = resource{Base: prefix + "/sites"}
	Zones        = resource{Base: prefix + "/zones"}
	Items        = resource{Base: prefix + "/items"}
	Materials    = resource{Base: prefix + "/materials"}
	Incidents    = resource{Base: prefix + "/incidents"}
	Maintenances = resource{Base: prefix + "/maintenances"}
	Cleanings    = resource{Base: prefix + "/cleanings"}
	Companies    = resource{Base: prefix + "/companies"}
	Users        = resource{Base: prefix + "/users"}
	Roles        = resource{Base: prefix + "/roles"}
)

// Entity-specific routes that do not fit the plain resource shape.
var (
	Permissions = prefix + "/permissions"
	Calendar    = prefix + "/calendar"
	Dashboard   = prefix + "/dashboard"
)

// ZoneTree returns the zone tree of one site.
func ZoneTree(siteID int) string {
	return fmt.Sprintf("%s/sites/%d/zones/tree", prefix, siteID)
}

// MaterialsByItem lists the materials attached to an item.
func MaterialsByItem(itemID int) string {
	return fmt.Sprintf("%s/items/%d/materials", prefix, itemID)
}

// IncidentResolve marks an incident resolved.
func IncidentResolve(id int) string {
	return fmt.Sprintf("%s/incidents/%d/resolve", prefix, id)
}
