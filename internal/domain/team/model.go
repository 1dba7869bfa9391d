package team

import (
	"fmt"
	"strings"
	"time"
)

// Team is the tenant: every player and match belongs to exactly one team.
type Team struct {
	ID           int64
	Name         string
	Description  string
	Type         string
	PasswordHash string
	LogoURL      string
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if t.PasswordHash == "" {
		return fmt.Errorf("team password hash is required")
	}

	return nil
}

// Principal is the authenticated caller identity attached to a request.
type Principal struct {
	TeamID int64
}

// Patch carries the optional fields of a team update.
type Patch struct {
	Name         *string
	Description  *string
	Type         *string
	PasswordHash *string
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Type == nil && p.PasswordHash == nil
}

func (p Patch) Apply(t Team) Team {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.PasswordHash != nil {
		t.PasswordHash = *p.PasswordHash
	}
	return t
}
