package httpapi

import (
	"context"
	"fmt"

	"github.com/riskibarqy/club-stats/internal/domain/team"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

type principalKey struct{}

func withPrincipal(ctx context.Context, p team.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func principalFromContext(ctx context.Context) (team.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(team.Principal)
	return p, ok
}

// requirePrincipal fails with ErrUnauthorized when RequireAuth did not run.
func requirePrincipal(ctx context.Context) (team.Principal, error) {
	p, ok := principalFromContext(ctx)
	if !ok || p.TeamID <= 0 {
		return team.Principal{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}
	return p, nil
}
