package memory

import (
	"context"

	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/domain/team"
)

const DemoTeamName = "Sunday League FC"

// DemoSquad is the squad created by SeedDemo, in id order.
var DemoSquad = []player.Player{
	{Name: "Kim Minjae", Number: 1, Position: "GK"},
	{Name: "Lee Jaesung", Number: 4, Position: "DF"},
	{Name: "Hwang Inbeom", Number: 6, Position: "MF"},
	{Name: "Son Heungmin", Number: 7, Position: "FW"},
	{Name: "Hwang Heechan", Number: 11, Position: "FW"},
}

// SeedDemo creates the demo team and its squad in one transaction.
func SeedDemo(ctx context.Context, store *Store, passwordHash string) (team.Team, []player.Player, error) {
	var (
		created team.Team
		squad   []player.Player
	)
	err := store.commit(ctx, func(st *state) error {
		repos := store.repositories(txHandle{st: st})

		var err error
		created, err = repos.Teams.Create(ctx, team.Team{
			Name:         DemoTeamName,
			Description:  "Demo team",
			Type:         "football",
			PasswordHash: passwordHash,
		})
		if err != nil {
			return err
		}

		squad = make([]player.Player, 0, len(DemoSquad))
		for _, p := range DemoSquad {
			p.TeamID = created.ID
			saved, err := repos.Players.Create(ctx, p)
			if err != nil {
				return err
			}
			squad = append(squad, saved)
		}
		return nil
	})
	if err != nil {
		return team.Team{}, nil, err
	}
	return created, squad, nil
}
