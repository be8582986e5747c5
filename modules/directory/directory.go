// Package directory covers the people side: maintainer companies, user
// accounts with site memberships, and roles with their permission flags.
package directory

import (
	"strconv"
	"time"
)

type Company struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type User struct {
	ID        int       `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	RoleID    int       `json:"role_id"`
	SiteIDs   []int     `json:"site_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Role carries the permission flags the views branch on; the flag catalog
// itself comes from the permissions lookup.
type Role struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Permission is one entry of the flag catalog.
type Permission struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Can reports whether the role carries the given permission flag.
func (r Role) Can(permission string) bool {
	for _, p := range r.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// FullName joins the user's names for display.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type CompanyDraft struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

type UserDraft struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	RoleID    int    `json:"role_id" validate:"required"`
	SiteIDs   []int  `json:"site_ids"`
}

type RoleDraft struct {
	Name        string   `json:"name" validate:"required"`
	Permissions []string `json:"permissions"`
}

func (c Company) OptionID() string    { return strconv.Itoa(c.ID) }
func (c Company) OptionLabel() string { return c.Name }

func (u User) OptionID() string    { return strconv.Itoa(u.ID) }
func (u User) OptionLabel() string { return u.FullName() }

func (r Role) OptionID() string    { return strconv.Itoa(r.ID) }
func (r Role) OptionLabel() string { return r.Name }
