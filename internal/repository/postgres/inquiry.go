package postgres

import (
	"context"
	"database/sql"

	"github.com/visahub/visahub/internal/domain/inquiry"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/logger"
	"github.com/visahub/visahub/internal/postgres"
	"github.com/visahub/visahub/internal/types"
)

type inquiryRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewInquiryRepository(db *postgres.DB, logger *logger.Logger) inquiry.Repository {
	return &inquiryRepository{db: db, logger: logger}
}

func (r *inquiryRepository) Create(ctx context.Context, inq *inquiry.Inquiry) error {
	query := `
		INSERT INTO inquiries (
			id, name, email, subject, message, admin_reply, status,
			created_at, updated_at
		) VALUES (
			:id, :name, :email, :subject, :message, :admin_reply, :status,
			:created_at, :updated_at
		)`

	r.logger.Debugw("creating inquiry", "inquiry_id", inq.ID)

	if _, err := r.db.NamedExecContext(ctx, query, inq); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to save the inquiry").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *inquiryRepository) Get(ctx context.Context, id string) (*inquiry.Inquiry, error) {
	var inq inquiry.Inquiry
	err := r.db.GetContext(ctx, &inq, "SELECT * FROM inquiries WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewErrorf("inquiry %s not found", id).
				WithHint("The specified inquiry does not exist").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch the inquiry").
			Mark(ierr.ErrDatabase)
	}
	return &inq, nil
}

func (r *inquiryRepository) List(ctx context.Context, filter *types.InquiryFilter) ([]*inquiry.Inquiry, error) {
	query := `SELECT * FROM inquiries WHERE 1=1`
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
			WithHint("Failed to list inquiries").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var inquiries []*inquiry.Inquiry
	for rows.Next() {
		var inq inquiry.Inquiry
		if err := rows.StructScan(&inq); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan inquiry row").
				Mark(ierr.ErrDatabase)
		}
		inquiries = append(inquiries, &inq)
	}
	return inquiries, nil
}

func (r *inquiryRepository) Count(ctx context.Context, filter *types.InquiryFilter) (int, error) {
	query := `SELECT COUNT(*) FROM inquiries WHERE 1=1`
	args := map[string]interface{}{}

	if filter.Status != "" {
		query += ` AND status = :status`
		args["status"] = filter.Status
	}

	return namedCount(ctx, r.db, query, args)
}

func (r *inquiryRepository) Update(ctx context.Context, inq *inquiry.Inquiry) error {
	query := `
		UPDATE inquiries SET
			admin_reply = :admin_reply,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id`

	r.logger.Debugw("updating inquiry", "inquiry_id", inq.ID, "status", inq.Status)

	result, err := r.db.NamedExecContext(ctx, query, inq)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update the inquiry").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, inq.ID)
}

func (r *inquiryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM inquiries WHERE id = $1", id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete the inquiry").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, id)
}
