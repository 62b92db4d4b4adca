package postgres

import (
	"context"
	"database/sql"

	"github.com/visahub/visahub/internal/domain/application"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/logger"
	"github.com/visahub/visahub/internal/postgres"
	"github.com/visahub/visahub/internal/types"
)

type applicationRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewApplicationRepository(db *postgres.DB, logger *logger.Logger) application.Repository {
	return &applicationRepository{db: db, logger: logger}
}

func (r *applicationRepository) Create(ctx context.Context, app *application.Application) error {
	query := `
		INSERT INTO applications (
			id, reference_number, first_name, last_name, email, phone,
			nationality, passport_number, date_of_birth, country, visa_type,
			purpose_of_travel, intended_travel_date, documents, notes, status,
			created_at, updated_at
		) VALUES (
			:id, :reference_number, :first_name, :last_name, :email, :phone,
			:nationality, :passport_number, :date_of_birth, :country, :visa_type,
			:purpose_of_travel, :intended_travel_date, :documents, :notes, :status,
			:created_at, :updated_at
		)`

	r.logger.Debugw("creating application", "application_id", app.ID)

	if _, err := r.db.NamedExecContext(ctx, query, app); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to save the application").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *applicationRepository) Get(ctx context.Context, id string) (*application.Application, error) {
	var app application.Application
	err := r.db.GetContext(ctx, &app, "SELECT * FROM applications WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewErrorf("application %s not found", id).
				WithHint("The specified application does not exist").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch the application").
			Mark(ierr.ErrDatabase)
	}
	return &app, nil
}

func (r *applicationRepository) List(ctx context.Context, filter *types.ApplicationFilter) ([]*application.Application, error) {
	query := `SELECT * FROM applications WHERE 1=1`
	args := map[string]interface{}{
		"limit":  filter.GetLimit(),
		"offset": filter.GetOffset(),
	}

	if filter.Status != "" {
		query += ` AND status = :status`
		args["status"] = filter.Status
	}
	if filter.Country != "" {
		query += ` AND country = :country`
		args["country"] = filter.Country
	}

	query += ` ORDER BY created_at DESC, id DESC`
	if !filter.IsUnlimited() {
		query += ` LIMIT :limit OFFSET :offset`
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list applications").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var apps []*application.Application
	for rows.Next() {
		var app application.Application
		if err := rows.StructScan(&app); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan application row").
				Mark(ierr.ErrDatabase)
		}
		apps = append(apps, &app)
	}
	return apps, nil
}

func (r *applicationRepository) Count(ctx context.Context, filter *types.ApplicationFilter) (int, error) {
	query := `SELECT COUNT(*) FROM applications WHERE 1=1`
	args := map[string]interface{}{}

	if filter.Status != "" {
		query += ` AND status = :status`
		args["status"] = filter.Status
	}
	if filter.Country != "" {
		query += ` AND country = :country`
		args["country"] = filter.Country
	}

	return namedCount(ctx, r.db, query, args)
}

func (r *applicationRepository) Update(ctx context.Context, app *application.Application) error {
	query := `
		UPDATE applications SET
			documents = :documents,
			notes = :notes,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id`

	r.logger.Debugw("updating application", "application_id", app.ID, "status", app.Status)

	result, err := r.db.NamedExecContext(ctx, query, app)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update the application").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, app.ID)
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM applications WHERE id = $1", id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete the application").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, id)
}
