package postgres

import (
	"context"
	"database/sql"

	"github.com/visahub/visahub/internal/domain/country"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/logger"
	"github.com/visahub/visahub/internal/postgres"
	"github.com/visahub/visahub/internal/types"
)

type countryRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewCountryRepository(db *postgres.DB, logger *logger.Logger) country.Repository {
	return &countryRepository{db: db, logger: logger}
}

func (r *countryRepository) Create(ctx context.Context, c *country.Country) error {
	query := `
		INSERT INTO countries (
			id, name, code, flag_emoji, summary, processing_time, is_popular,
			is_active, created_at, updated_at
		) VALUES (
			:id, :name, :code, :flag_emoji, :summary, :processing_time, :is_popular,
			:is_active, :created_at, :updated_at
		)`

	r.logger.Debugw("creating country", "country_id", c.ID, "code", c.Code)

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to save the country").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *countryRepository) Get(ctx context.Context, id string) (*country.Country, error) {
	var c country.Country
	err := r.db.GetContext(ctx, &c, "SELECT * FROM countries WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewErrorf("country %s not found", id).
				WithHint("The specified country does not exist").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch the country").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func countryWhere(filter *types.CountryFilter, args map[string]interface{}) string {
	query := ""
	if !filter.IncludeInactive {
		query += ` AND is_active = true`
	}
	if filter.Popular != nil {
		query += ` AND is_popular = :is_popular`
		args["is_popular"] = *filter.Popular
	}
	return query
}

func (r *countryRepository) List(ctx context.Context, filter *types.CountryFilter) ([]*country.Country, error) {
	args := map[string]interface{}{
		"limit":  filter.GetLimit(),
		"offset": filter.GetOffset(),
	}
	query := `SELECT * FROM countries WHERE 1=1` + countryWhere(filter, args)

	query += ` ORDER BY created_at DESC, id DESC`
	if !filter.IsUnlimited() {
		query += ` LIMIT :limit OFFSET :offset`
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list countries").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var countries []*country.Country
	for rows.Next() {
		var c country.Country
		if err := rows.StructScan(&c); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan country row").
				Mark(ierr.ErrDatabase)
		}
		countries = append(countries, &c)
	}
	return countries, nil
}

func (r *countryRepository) Count(ctx context.Context, filter *types.CountryFilter) (int, error) {
	args := map[string]interface{}{}
	query := `SELECT COUNT(*) FROM countries WHERE 1=1` + countryWhere(filter, args)
	return namedCount(ctx, r.db, query, args)
}

func (r *countryRepository) Update(ctx context.Context, c *country.Country) error {
	query := `
		UPDATE countries SET
			name = :name,
			code = :code,
			flag_emoji = :flag_emoji,
			summary = :summary,
			processing_time = :processing_time,
			is_popular = :is_popular,
			is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id`

	r.logger.Debugw("updating country", "country_id", c.ID, "is_active", c.IsActive)

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update the country").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, c.ID)
}
