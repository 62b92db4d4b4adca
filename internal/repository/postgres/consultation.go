package postgres

import (
	"context"
	"database/sql"

	"github.com/visahub/visahub/internal/domain/consultation"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/logger"
	"github.com/visahub/visahub/internal/postgres"
	"github.com/visahub/visahub/internal/types"
)

type consultationRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewConsultationRepository(db *postgres.DB, logger *logger.Logger) consultation.Repository {
	return &consultationRepository{db: db, logger: logger}
}

func (r *consultationRepository) Create(ctx context.Context, c *consultation.Consultation) error {
	query := `
		INSERT INTO consultations (
			id, client_name, client_email, client_phone, visa_type, country,
			preferred_date, preferred_time, message, admin_notes, scheduled_at,
			status, created_at, updated_at
		) VALUES (
			:id, :client_name, :client_email, :client_phone, :visa_type, :country,
			:preferred_date, :preferred_time, :message, :admin_notes, :scheduled_at,
			:status, :created_at, :updated_at
		)`

	r.logger.Debugw("creating consultation", "consultation_id", c.ID)

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to save the consultation").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *consultationRepository) Get(ctx context.Context, id string) (*consultation.Consultation, error) {
	var c consultation.Consultation
	err := r.db.GetContext(ctx, &c, "SELECT * FROM consultations WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewErrorf("consultation %s not found", id).
				WithHint("The specified consultation does not exist").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch the consultation").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

func (r *consultationRepository) List(ctx context.Context, filter *types.ConsultationFilter) ([]*consultation.Consultation, error) {
	query := `SELECT * FROM consultations WHERE 1=1`
	args := map[string]interface{}{
		"limit":  filter.GetLimit(),
		"offset": filter.GetOffset(),
	}

	if filter.Status != "" {
		query += ` AND status = :status`
		args["status"] = filter.Status
	}

	query += ` ORDER BY created_at DESC, id DESC`
	if !filter.IsUnlimited() {
		query += ` LIMIT :limit OFFSET :offset`
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list consultations").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var consultations []*consultation.Consultation
	for rows.Next() {
		var c consultation.Consultation
		if err := rows.StructScan(&c); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan consultation row").
				Mark(ierr.ErrDatabase)
		}
		consultations = append(consultations, &c)
	}
	return consultations, nil
}

func (r *consultationRepository) Count(ctx context.Context, filter *types.ConsultationFilter) (int, error) {
	query := `SELECT COUNT(*) FROM consultations WHERE 1=1`
	args := map[string]interface{}{}

	if filter.Status != "" {
		query += ` AND status = :status`
		args["status"] = filter.Status
	}

	return namedCount(ctx, r.db, query, args)
}

func (r *consultationRepository) Update(ctx context.Context, c *consultation.Consultation) error {
	query := `
		UPDATE consultations SET
			admin_notes = :admin_notes,
			scheduled_at = :scheduled_at,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id`

	r.logger.Debugw("updating consultation", "consultation_id", c.ID, "status", c.Status)

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update the consultation").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, c.ID)
}

func (r *consultationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM consultations WHERE id = $1", id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete the consultation").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, id)
}
