// Package store implements catasto.Store on PostgreSQL through database/sql.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Begin(ctx context.Context, opts catasto.TxOptions) (catasto.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: opts.ReadOnly})
	if err != nil {
		return nil, classify(err, "beginning transaction")
	}

	return &tx{tx: dbTx}, nil
}

type tx struct {
	tx *sql.Tx
}

func (t *tx) Commit() error   { return t.tx.Commit() }
func (t *tx) Rollback() error { return t.tx.Rollback() }

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// PostgreSQL error codes mapped onto ledger error kinds.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	classDataException      = "22"
)

// classify turns a driver error into a *catasto.Error with the matching kind.
func classify(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)

	if errors.Is(err, sql.ErrNoRows) {
		return catasto.Wrap(catasto.KindNotFound, err, "%s", msg)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == codeUniqueViolation:
			return &catasto.Error{
				Kind:       catasto.KindUniqueConstraint,
				Msg:        msg,
				Constraint: pgErr.ConstraintName,
				Err:        err,
			}
		case pgErr.Code == codeForeignKeyViolation:
			return catasto.Wrap(catasto.KindNotFound, err, "%s: referenced row missing", msg)
		case pgErr.Code == codeCheckViolation,
			pgErr.Code == codeNotNullViolation,
			strings.HasPrefix(pgErr.Code, classDataException):
			return catasto.Wrap(catasto.KindDataError, err, "%s", msg)
		}
	}

	// Some pgx paths only surface the SQLSTATE in the message.
	if strings.Contains(strings.ToLower(err.Error()), "sqlstate "+codeUniqueViolation) {
		return catasto.Wrap(catasto.KindUniqueConstraint, err, "%s", msg)
	}

	return catasto.StoreError(err, "%s", msg)
}

// expectOne reports NotFound when an UPDATE or DELETE touched no row.
func expectOne(res sql.Result, format string, args ...any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return classify(err, "reading affected rows")
	}

	if n == 0 {
		return catasto.NotFound(format, args...)
	}

	return nil
}

// scopeClause appends "AND <column> = $n" when comuneID is set.
func scopeClause(query string, args []any, column string, comuneID *int64) (string, []any) {
	if comuneID == nil {
		return query, args
	}

	args = append(args, *comuneID)

	return query + fmt.Sprintf(" AND %s = $%d", column, len(args)), args
}

var (
	_ catasto.Store = (*Store)(nil)
	_ catasto.Tx    = (*tx)(nil)
)
