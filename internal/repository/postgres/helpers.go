package postgres

import (
	"context"
	"database/sql"

	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/postgres"
)

// namedCount runs a COUNT(*) query with named parameters.
func namedCount(ctx context.Context, db *postgres.DB, query string, args map[string]interface{}) (int, error) {
	rows, err := db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count rows").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan row count").
				Mark(ierr.ErrDatabase)
		}
	}
	return count, nil
}

// requireRowAffected converts a zero-row write into a not-found error so
// updates and deletes against missing ids fail the same way everywhere.
func requireRowAffected(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to read affected rows").
			Mark(ierr.ErrDatabase)
	}
	if affected == 0 {
		return ierr.NewErrorf("record %s not found", id).
			WithHint("The specified record does not exist").
			Mark(ierr.ErrNotFound)
	}
	return nil
}
