package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-stats/internal/domain/team"
	"github.com/riskibarqy/club-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

// BootstrapSeed creates the demo team and squad when the teams table is
// empty. It reports whether anything was inserted.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, passwordHash string) (bool, error) {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return false, translate(err, "count teams for bootstrap seed")
	}
	if count > 0 {
		return false, nil
	}

	err := NewUnitOfWork(db).WithinTx(ctx, func(ctx context.Context, repos usecase.Repositories) error {
		created, err := repos.Teams.Create(ctx, team.Team{
			Name:         memory.DemoTeamName,
			Description:  "Demo team",
			Type:         "football",
			PasswordHash: passwordHash,
		})
		if err != nil {
			return err
		}
		for _, p := range memory.DemoSquad {
			p.TeamID = created.ID
			if _, err := repos.Players.Create(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
