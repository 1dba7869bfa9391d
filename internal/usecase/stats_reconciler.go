package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/domain/player"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// StatsReconciler keeps goal_count, assist_count and mom_count consistent with
// the goal ledger. It must run in the same transaction as the ledger write.
type StatsReconciler struct {
	ledger  *GoalLedger
	clamped metric.Int64Counter
	logger  *logging.Logger
}

func NewStatsReconciler(meter metric.Meter, logger *logging.Logger) *StatsReconciler {
	if logger == nil {
		logger = logging.Default()
	}

	return &StatsReconciler{
		ledger:  NewGoalLedger(),
		clamped: newClampCounter(meter),
		logger:  logger,
	}
}

// Reconcile counts a freshly recorded goal and moves the Player-of-the-Match
// designation of its match: the previous holder loses one before the holder
// recomputed from the whole ledger gains one.
func (r *StatsReconciler) Reconcile(ctx context.Context, repos Repositories, m match.Match, recorded match.Goal) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsReconciler.Reconcile")
	defer span.End()

	goals, err := r.ledger.List(ctx, repos, m.ID)
	if err != nil {
		return match.Match{}, err
	}
	nextMOM, hasMOM := match.NewTally(goals).PlayerOfTheMatch()

	ids := []int64{recorded.PlayerID}
	if recorded.AssistPlayerID != nil {
		ids = append(ids, *recorded.AssistPlayerID)
	}
	if m.MOMPlayerID != nil {
		ids = append(ids, *m.MOMPlayerID)
	}
	if hasMOM {
		ids = append(ids, nextMOM)
	}

	locked, err := r.lock(ctx, repos, ids)
	if err != nil {
		return match.Match{}, err
	}

	dirty := make(map[int64]struct{}, len(locked))
	if p, ok := locked[recorded.PlayerID]; ok {
		r.adjust(ctx, p, player.CounterGoals, 1)
		dirty[p.ID] = struct{}{}
	}
	if recorded.AssistPlayerID != nil {
		if p, ok := locked[*recorded.AssistPlayerID]; ok {
			r.adjust(ctx, p, player.CounterAssists, 1)
			dirty[p.ID] = struct{}{}
		}
	}

	unchanged := m.MOMPlayerID != nil && hasMOM && *m.MOMPlayerID == nextMOM
	if !unchanged {
		if m.MOMPlayerID != nil {
			if p, ok := locked[*m.MOMPlayerID]; ok {
				r.adjust(ctx, p, player.CounterMOM, -1)
				dirty[p.ID] = struct{}{}
			}
		}
		if hasMOM {
			if p, ok := locked[nextMOM]; ok {
				r.adjust(ctx, p, player.CounterMOM, 1)
				dirty[p.ID] = struct{}{}
			}
		}
	}

	if err := r.save(ctx, repos, locked, dirty); err != nil {
		return match.Match{}, err
	}

	if !unchanged {
		var holder *int64
		if hasMOM {
			id := nextMOM
			holder = &id
		}
		if err := repos.Matches.SetPlayerOfTheMatch(ctx, m.ID, holder); err != nil {
			return match.Match{}, fmt.Errorf("set player of the match: %w", err)
		}
		r.logger.DebugContext(ctx, "player of the match moved",
			"match_id", m.ID,
			"previous_player_id", m.MOMPlayerID,
			"player_id", holder,
		)
		m.MOMPlayerID = holder
	}

	return m, nil
}

// Reverse removes every statistical effect of a match's ledger ahead of the
// match being deleted. Goal and assist decrements are recomputed from the
// ledger; the stored holder loses the Player of the Match, and nobody does
// when that holder is gone.
func (r *StatsReconciler) Reverse(ctx context.Context, repos Repositories, m match.Match) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsReconciler.Reverse")
	defer span.End()

	goals, err := r.ledger.List(ctx, repos, m.ID)
	if err != nil {
		return err
	}
	tally := match.NewTally(goals)
	if mom, ok := tally.PlayerOfTheMatch(); ok && (m.MOMPlayerID == nil || *m.MOMPlayerID != mom) {
		r.logger.WarnContext(ctx, "stored player of the match differs from ledger",
			"match_id", m.ID,
			"stored_player_id", m.MOMPlayerID,
			"ledger_player_id", mom,
		)
	}

	ids := tally.PlayerIDs()
	if m.MOMPlayerID != nil {
		ids = append(ids, *m.MOMPlayerID)
	}
	if len(ids) == 0 {
		return nil
	}
	locked, err := r.lock(ctx, repos, ids)
	if err != nil {
		return err
	}

	dirty := make(map[int64]struct{}, len(locked))
	for id, n := range tally.Goals {
		if p, ok := locked[id]; ok {
			r.adjust(ctx, p, player.CounterGoals, -n)
			dirty[id] = struct{}{}
		}
	}
	for id, n := range tally.Assists {
		if p, ok := locked[id]; ok {
			r.adjust(ctx, p, player.CounterAssists, -n)
			dirty[id] = struct{}{}
		}
	}
	if m.MOMPlayerID != nil {
		if p, ok := locked[*m.MOMPlayerID]; ok {
			r.adjust(ctx, p, player.CounterMOM, -1)
			dirty[p.ID] = struct{}{}
		}
	}

	return r.save(ctx, repos, locked, dirty)
}

func (r *StatsReconciler) lock(ctx context.Context, repos Repositories, ids []int64) (map[int64]*player.Player, error) {
	ids = dedupeIDs(ids)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	players, err := repos.Players.LockByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("lock players: %w", err)
	}

	out := make(map[int64]*player.Player, len(players))
	for i := range players {
		out[players[i].ID] = &players[i]
	}
	return out, nil
}

func (r *StatsReconciler) save(ctx context.Context, repos Repositories, locked map[int64]*player.Player, dirty map[int64]struct{}) error {
	ids := make([]int64, 0, len(dirty))
	for id := range dirty {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if err := repos.Players.UpdateCounters(ctx, *locked[id]); err != nil {
			return fmt.Errorf("update counters player=%d: %w", id, err)
		}
	}
	return nil
}

// adjust moves a counter by delta and clamps at zero. A clamp is recorded but
// never fails the operation.
func (r *StatsReconciler) adjust(ctx context.Context, p *player.Player, counter player.Counter, delta int) {
	next := p.Counter(counter) + delta
	if next < 0 {
		r.logger.WarnContext(ctx, "player counter clamped at zero",
			"player_id", p.ID,
			"counter", string(counter),
			"attempted", next,
		)
		r.clamped.Add(ctx, 1, metric.WithAttributes(attribute.String("counter", string(counter))))
		next = 0
	}
	p.SetCounter(counter, next)
}
