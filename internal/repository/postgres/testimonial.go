package postgres

import (
	"context"
	"database/sql"

	"github.com/visahub/visahub/internal/domain/testimonial"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/logger"
	"github.com/visahub/visahub/internal/postgres"
	"github.com/visahub/visahub/internal/types"
)

type testimonialRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewTestimonialRepository(db *postgres.DB, logger *logger.Logger) testimonial.Repository {
	return &testimonialRepository{db: db, logger: logger}
}

func (r *testimonialRepository) Create(ctx context.Context, t *testimonial.Testimonial) error {
	query := `
		INSERT INTO testimonials (
			id, client_name, client_email, client_country, visa_type, rating,
			text, is_approved, is_featured, created_at, updated_at
		) VALUES (
			:id, :client_name, :client_email, :client_country, :visa_type, :rating,
			:text, :is_approved, :is_featured, :created_at, :updated_at
		)`

	r.logger.Debugw("creating testimonial", "testimonial_id", t.ID)

	if _, err := r.db.NamedExecContext(ctx, query, t); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to save the testimonial").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *testimonialRepository) Get(ctx context.Context, id string) (*testimonial.Testimonial, error) {
	var t testimonial.Testimonial
	err := r.db.GetContext(ctx, &t, "SELECT * FROM testimonials WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewErrorf("testimonial %s not found", id).
				WithHint("The specified testimonial does not exist").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch the testimonial").
			Mark(ierr.ErrDatabase)
	}
	return &t, nil
}

func testimonialWhere(filter *types.TestimonialFilter, args map[string]interface{}) string {
	query := ""
	if filter.IsApproved != nil {
		query += ` AND is_approved = :is_approved`
		args["is_approved"] = *filter.IsApproved
	}
	if filter.IsFeatured != nil {
		query += ` AND is_featured = :is_featured`
		args["is_featured"] = *filter.IsFeatured
	}
	if filter.MinRating != nil {
		query += ` AND rating >= :min_rating`
		args["min_rating"] = *filter.MinRating
	}
	return query
}

func (r *testimonialRepository) List(ctx context.Context, filter *types.TestimonialFilter) ([]*testimonial.Testimonial, error) {
	args := map[string]interface{}{
		"limit":  filter.GetLimit(),
		"offset": filter.GetOffset(),
	}
	query := `SELECT * FROM testimonials WHERE 1=1` + testimonialWhere(filter, args)

	query += ` ORDER BY created_at DESC, id DESC`
	if !filter.IsUnlimited() {
		query += ` LIMIT :limit OFFSET :offset`
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list testimonials").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var testimonials []*testimonial.Testimonial
	for rows.Next() {
		var t testimonial.Testimonial
		if err := rows.StructScan(&t); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan testimonial row").
				Mark(ierr.ErrDatabase)
		}
		testimonials = append(testimonials, &t)
	}
	return testimonials, nil
}

func (r *testimonialRepository) Count(ctx context.Context, filter *types.TestimonialFilter) (int, error) {
	args := map[string]interface{}{}
	query := `SELECT COUNT(*) FROM testimonials WHERE 1=1` + testimonialWhere(filter, args)
	return namedCount(ctx, r.db, query, args)
}

func (r *testimonialRepository) Update(ctx context.Context, t *testimonial.Testimonial) error {
	query := `
		UPDATE testimonials SET
			is_approved = :is_approved,
			is_featured = :is_featured,
			updated_at = :updated_at
		WHERE id = :id`

	r.logger.Debugw("updating testimonial",
		"testimonial_id", t.ID,
		"is_approved", t.IsApproved,
		"is_featured", t.IsFeatured,
	)

	result, err := r.db.NamedExecContext(ctx, query, t)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update the testimonial").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, t.ID)
}

func (r *testimonialRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM testimonials WHERE id = $1", id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete the testimonial").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, id)
}
