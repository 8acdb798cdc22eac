// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) inside this directory.
package repository

import (
	"context"

	"stereos/internal/model"
)

// PartnerRepository persists partner program applications.
// No business logic here, strictly persistence operations.
type PartnerRepository interface {
	// Create inserts an application and returns the stored row, including DB defaults.
	Create(ctx context.Context, app *model.PartnerApplication) (*model.PartnerApplication, error)
}

// TrustDownloadRepository records gated trust-center document requests.
type TrustDownloadRepository interface {
	// Create inserts a download request and returns the stored row.
	Create(ctx context.Context, dl *model.TrustDownload) (*model.TrustDownload, error)
}
