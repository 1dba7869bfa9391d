package postgres

import (
	"context"
	stderrors "errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-stats/internal/platform/resilience"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

// UnitOfWork binds repositories to the pool or to one transaction.
type UnitOfWork struct {
	db      *sqlx.DB
	breaker *resilience.Breaker
}

type UnitOfWorkOption func(*UnitOfWork)

// WithBreaker guards transaction begin with b. While b is open WithinTx
// fails fast with usecase.ErrDependencyUnavailable.
func WithBreaker(b *resilience.Breaker) UnitOfWorkOption {
	return func(u *UnitOfWork) {
		u.breaker = b
	}
}

func NewUnitOfWork(db *sqlx.DB, opts ...UnitOfWorkOption) *UnitOfWork {
	u := &UnitOfWork{db: db}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *UnitOfWork) Repos() usecase.Repositories {
	return repositories(u.db)
}

// WithinTx runs fn in a transaction bound to ctx. The driver rolls back when
// ctx is cancelled before Commit.
func (u *UnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, repos usecase.Repositories) error) error {
	tx, err := u.begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, repositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return translate(err, "commit tx")
	}
	return nil
}

func (u *UnitOfWork) begin(ctx context.Context) (*sqlx.Tx, error) {
	if u.breaker == nil {
		tx, err := u.db.BeginTxx(ctx, nil)
		return tx, translate(err, "begin tx")
	}

	var tx *sqlx.Tx
	err := u.breaker.Do(func() error {
		var err error
		tx, err = u.db.BeginTxx(ctx, nil)
		return err
	})
	if stderrors.Is(err, resilience.ErrOpen) {
		return nil, crerr.Wrap(usecase.ErrDependencyUnavailable, "postgres circuit open")
	}
	return tx, translate(err, "begin tx")
}

func repositories(db dbtx) usecase.Repositories {
	return usecase.Repositories{
		Teams:   NewTeamRepository(db),
		Players: NewPlayerRepository(db),
		Matches: NewMatchRepository(db),
		Goals:   NewGoalRepository(db),
	}
}
