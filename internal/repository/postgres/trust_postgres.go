package postgres

import (
	"context"
	"database/sql"

	"stereos/internal/model"
	"stereos/internal/repository"
)

// TrustDownloadPostgres is a PostgreSQL implementation of repository.TrustDownloadRepository.
type TrustDownloadPostgres struct {
	db *sql.DB
}

// NewTrustDownloadPostgres creates a new TrustDownloadPostgres repository.
func NewTrustDownloadPostgres(db *sql.DB) *TrustDownloadPostgres {
	return &TrustDownloadPostgres{db: db}
}

var _ repository.TrustDownloadRepository = (*TrustDownloadPostgres)(nil)

// Create inserts a download request row and returns the stored record.
func (r *TrustDownloadPostgres) Create(ctx context.Context, dl *model.TrustDownload) (*model.TrustDownload, error) {
	const q = `
		INSERT INTO trust_downloads (id, name, email, company, document, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, company, document, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		dl.ID,
		dl.Name,
		dl.Email,
		dl.Company,
		dl.Document,
		dl.CreatedAt,
	)
	var out model.TrustDownload
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.Company,
		&out.Document,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}
