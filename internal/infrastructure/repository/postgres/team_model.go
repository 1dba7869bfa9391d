package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/club-stats/internal/domain/team"
)

type teamTableModel struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	Description  sql.NullString `db:"description"`
	Type         sql.NullString `db:"type"`
	PasswordHash string         `db:"password_hash"`
	LogoURL      sql.NullString `db:"logo_url"`
	ImageURL     sql.NullString `db:"image_url"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type teamInsertModel struct {
	Name         string         `db:"name"`
	Description  sql.NullString `db:"description"`
	Type         sql.NullString `db:"type"`
	PasswordHash string         `db:"password_hash"`
	LogoURL      sql.NullString `db:"logo_url"`
	ImageURL     sql.NullString `db:"image_url"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description.String,
		Type:         m.Type.String,
		PasswordHash: m.PasswordHash,
		LogoURL:      m.LogoURL.String,
		ImageURL:     m.ImageURL.String,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

var teamColumns = []string{
	"id", "name", "description", "type", "password_hash", "logo_url", "image_url", "created_at", "updated_at",
}
