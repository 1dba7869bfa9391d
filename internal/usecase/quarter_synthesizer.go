package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/club-stats/internal/domain/match"
	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

// QuarterSynthesizer fills in a quarter breakdown for matches that were
// created without one. The synthesized rows are persisted so later reads see
// the same numbers.
type QuarterSynthesizer struct {
	logger *logging.Logger
}

func NewQuarterSynthesizer(logger *logging.Logger) *QuarterSynthesizer {
	if logger == nil {
		logger = logging.Default()
	}
	return &QuarterSynthesizer{logger: logger}
}

// Ensure returns the stored quarter scores of m, synthesizing and inserting
// them first when none exist.
func (s *QuarterSynthesizer) Ensure(ctx context.Context, repos Repositories, m match.Match, goals []match.Goal) ([]match.QuarterScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.QuarterSynthesizer.Ensure")
	defer span.End()

	stored, err := repos.Matches.ListQuarterScores(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("list quarter scores: %w", err)
	}
	if len(stored) > 0 {
		return stored, nil
	}

	synthesized := match.SynthesizeQuarterScores(m.Score, goals)
	for i := range synthesized {
		synthesized[i].MatchID = m.ID
	}

	inserted, err := repos.Matches.InsertQuarterScores(ctx, m.ID, synthesized)
	if err != nil {
		return nil, fmt.Errorf("insert quarter scores: %w", err)
	}
	s.logger.DebugContext(ctx, "quarter scores synthesized",
		"match_id", m.ID,
		"quarters", len(inserted),
	)
	return inserted, nil
}
