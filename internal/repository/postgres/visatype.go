package postgres

import (
	"context"
	"database/sql"

	"github.com/visahub/visahub/internal/domain/visatype"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/logger"
	"github.com/visahub/visahub/internal/postgres"
	"github.com/visahub/visahub/internal/types"
)

type visaTypeRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewVisaTypeRepository(db *postgres.DB, logger *logger.Logger) visatype.Repository {
	return &visaTypeRepository{db: db, logger: logger}
}

func (r *visaTypeRepository) Create(ctx context.Context, vt *visatype.VisaType) error {
	query := `
		INSERT INTO visa_types (
			id, name, country_id, category, description, requirements,
			processing_time, government_fee, service_fee, is_active,
			created_at, updated_at
		) VALUES (
			:id, :name, :country_id, :category, :description, :requirements,
			:processing_time, :government_fee, :service_fee, :is_active,
			:created_at, :updated_at
		)`

	r.logger.Debugw("creating visa type", "visa_type_id", vt.ID, "name", vt.Name)

	if _, err := r.db.NamedExecContext(ctx, query, vt); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to save the visa type").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *visaTypeRepository) Get(ctx context.Context, id string) (*visatype.VisaType, error) {
	var vt visatype.VisaType
	err := r.db.GetContext(ctx, &vt, "SELECT * FROM visa_types WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewErrorf("visa type %s not found", id).
				WithHint("The specified visa type does not exist").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch the visa type").
			Mark(ierr.ErrDatabase)
	}
	return &vt, nil
}

func visaTypeWhere(filter *types.VisaTypeFilter, args map[string]interface{}) string {
	query := ""
	if !filter.IncludeInactive {
		query += ` AND is_active = true`
	}
	if filter.CountryID != "" {
		query += ` AND country_id = :country_id`
		args["country_id"] = filter.CountryID
	}
	if filter.Category != "" {
		query += ` AND category = :category`
		args["category"] = filter.Category
	}
	return query
}

func (r *visaTypeRepository) List(ctx context.Context, filter *types.VisaTypeFilter) ([]*visatype.VisaType, error) {
	args := map[string]interface{}{
		"limit":  filter.GetLimit(),
		"offset": filter.GetOffset(),
	}
	query := `SELECT * FROM visa_types WHERE 1=1` + visaTypeWhere(filter, args)

	query += ` ORDER BY created_at DESC, id DESC`
	if !filter.IsUnlimited() {
		query += ` LIMIT :limit OFFSET :offset`
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list visa types").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var visaTypes []*visatype.VisaType
	for rows.Next() {
		var vt visatype.VisaType
		if err := rows.StructScan(&vt); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan visa type row").
				Mark(ierr.ErrDatabase)
		}
		visaTypes = append(visaTypes, &vt)
	}
	return visaTypes, nil
}

func (r *visaTypeRepository) Count(ctx context.Context, filter *types.VisaTypeFilter) (int, error) {
	args := map[string]interface{}{}
	query := `SELECT COUNT(*) FROM visa_types WHERE 1=1` + visaTypeWhere(filter, args)
	return namedCount(ctx, r.db, query, args)
}

func (r *visaTypeRepository) Update(ctx context.Context, vt *visatype.VisaType) error {
	query := `
		UPDATE visa_types SET
			name = :name,
			country_id = :country_id,
			category = :category,
			description = :description,
			requirements = :requirements,
			processing_time = :processing_time,
			government_fee = :government_fee,
			service_fee = :service_fee,
			is_active = :is_active,
			updated_at = :updated_at
		WHERE id = :id`

	r.logger.Debugw("updating visa type", "visa_type_id", vt.ID, "is_active", vt.IsActive)

	result, err := r.db.NamedExecContext(ctx, query, vt)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update the visa type").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, vt.ID)
}
