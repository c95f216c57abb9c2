package infra

import (
	"errors"

	cerrors "github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"clinic-booking/internal/pkg/errs"
)

type RepositoryErrorKind string

const (
	KindNotFound            RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure           RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey        RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated  RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindSerializationFailed RepositoryErrorKind = "SERIALIZATION_FAILED"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	Err  error
}

func (e *RepositoryError) Error() string {
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// WrapRepoErr normalizes driver errors into RepositoryError. The kind is
// inferred from pg error codes unless an explicit kind is given.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	if err == nil {
		return nil
	}
	kind := classify(err)
	if len(kinds) > 0 {
		kind = kinds[0]
	}
	return &RepositoryError{Kind: kind, Err: errs.Wrap(err, msg)}
}

func classify(err error) RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return KindDuplicateKey
		case "23503":
			return KindForeignKeyViolated
		case "40001", "40P01":
			return KindSerializationFailed
		}
	}
	return KindDBFailure
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var repoErr *RepositoryError
	if cerrors.As(err, &repoErr) {
		return repoErr.Kind == kind
	}
	return false
}
