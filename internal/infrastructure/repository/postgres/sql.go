package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/club-stats/internal/usecase"
)

const uniqueViolation pq.ErrorCode = "23505"

// dbtx is satisfied by both *sqlx.DB and *sqlx.Tx, so a repository works the
// same inside and outside a transaction.
type dbtx interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

func isNotFound(err error) bool {
	return stderrors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if !stderrors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == uniqueViolation
}

// translate maps driver errors onto usecase sentinels and wraps the rest.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return crerr.Wrapf(usecase.ErrConflict, "%s: %v", op, err)
	}
	return crerr.Wrap(err, op)
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func idFromNull(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}

func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
