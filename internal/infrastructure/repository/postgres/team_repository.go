package postgres

import (
	"context"
	"strings"

	"github.com/riskibarqy/club-stats/internal/domain/team"
	qb "github.com/riskibarqy/club-stats/internal/platform/querybuilder"
)

type TeamRepository struct {
	db dbtx
}

func NewTeamRepository(db dbtx) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	query, args, err := qb.InsertModel("teams", teamInsertModel{
		Name:         t.Name,
		Description:  nullableString(t.Description),
		Type:         nullableString(t.Type),
		PasswordHash: t.PasswordHash,
		LogoURL:      nullableString(t.LogoURL),
		ImageURL:     nullableString(t.ImageURL),
	}, "RETURNING "+strings.Join(teamColumns, ", "))
	if err != nil {
		return team.Team{}, translate(err, "build insert team query")
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return team.Team{}, translate(err, "insert team")
	}
	return row.toDomain(), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Eq("id", teamID))
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	return r.getOne(ctx, qb.Eq("name", name))
}

func (r *TeamRepository) getOne(ctx context.Context, cond qb.Condition) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return team.Team{}, false, translate(err, "build select team query")
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, translate(err, "select team")
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) (team.Team, error) {
	query, args, err := qb.Update("teams").
		Set("name", t.Name).
		Set("description", nullableString(t.Description)).
		Set("type", nullableString(t.Type)).
		Set("password_hash", t.PasswordHash).
		Set("logo_url", nullableString(t.LogoURL)).
		Set("image_url", nullableString(t.ImageURL)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", t.ID)).
		Suffix("RETURNING " + strings.Join(teamColumns, ", ")).
		ToSQL()
	if err != nil {
		return team.Team{}, translate(err, "build update team query")
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return team.Team{}, translate(err, "update team")
	}
	return row.toDomain(), nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID int64) error {
	query, args, err := qb.DeleteFrom("teams").Where(qb.Eq("id", teamID)).ToSQL()
	if err != nil {
		return translate(err, "build delete team query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return translate(err, "delete team")
	}
	return nil
}
