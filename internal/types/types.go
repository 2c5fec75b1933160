// Package types defines the data types shared across mvs-photo-form.
package types

import "strings"

// Player is one roster row. Known columns are promoted to fields; any other
// column rides along in Extra so foreign columns survive a load/edit cycle.
type Player struct {
	Barcode      string `json:"barcode"`
	Team         string `json:"team"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	JerseyNumber string `json:"jersey_number"`
	Coach        string `json:"coach"`
	CellPhone    string `json:"cell_phone"`
	Email        string `json:"email"`
	Products     string `json:"products"`
	Packages     string `json:"packages"`

	Extra map[string]string `json:"extra,omitempty"`
}

// IsCoach reports whether the coach flag is set.
func (p *Player) IsCoach() bool {
	return strings.EqualFold(strings.TrimSpace(p.Coach), "Y")
}

// DisplayName is "First Last" with missing halves dropped.
func (p *Player) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// Update returns the editable subset of the player as a PlayerUpdate.
func (p *Player) Update() PlayerUpdate {
	return PlayerUpdate{
		Barcode:   p.Barcode,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		CellPhone: p.CellPhone,
		Email:     p.Email,
		Coach:     p.Coach,
		Products:  p.Products,
		Packages:  p.Packages,
	}
}

// PlayerUpdate carries the editable cells of a roster row. The barcode
// identifies the row and is never rewritten.
type PlayerUpdate struct {
	Barcode   string `json:"barcode"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CellPhone string `json:"cell_phone"`
	Email     string `json:"email"`
	Coach     string `json:"coach"`
	Products  string `json:"products"`
	Packages  string `json:"packages"`
}

// IsCoach reports whether the coach flag is set.
func (u *PlayerUpdate) IsCoach() bool {
	return strings.EqualFold(strings.TrimSpace(u.Coach), "Y")
}

// ApplyTo copies the editable cells onto a player record.
func (u *PlayerUpdate) ApplyTo(p *Player) {
	p.FirstName = u.FirstName
	p.LastName = u.LastName
	p.CellPhone = u.CellPhone
	p.Email = u.Email
	p.Coach = u.Coach
	p.Products = u.Products
	p.Packages = u.Packages
}
