package postgres

import (
	"context"
	"database/sql"

	"stereos/internal/model"
	"stereos/internal/repository"
)

// PartnerPostgres is a PostgreSQL implementation of repository.PartnerRepository.
type PartnerPostgres struct {
	db *sql.DB
}

// NewPartnerPostgres creates a new PartnerPostgres repository.
func NewPartnerPostgres(db *sql.DB) *PartnerPostgres {
	return &PartnerPostgres{db: db}
}

var _ repository.PartnerRepository = (*PartnerPostgres)(nil)

// Create inserts a new partner application row and returns the stored record.
func (r *PartnerPostgres) Create(ctx context.Context, app *model.PartnerApplication) (*model.PartnerApplication, error) {
	const q = `
		INSERT INTO partner_applications (id, name, email, company, website, partner_type, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, email, company, website, partner_type, message, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		app.ID,
		app.Name,
		app.Email,
		app.Company,
		app.Website,
		string(app.PartnerType),
		app.Message,
		app.CreatedAt,
	)
	var (
		out         model.PartnerApplication
		partnerType string
	)
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.Company,
		&out.Website,
		&partnerType,
		&out.Message,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	out.PartnerType = model.PartnerType(partnerType)
	return &out, nil
}
