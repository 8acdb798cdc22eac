package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stereos/internal/model"
	"stereos/internal/repository"
)

type MockPartnerRepository struct {
	mock.Mock
}

var _ repository.PartnerRepository = (*MockPartnerRepository)(nil)

func (m *MockPartnerRepository) Create(ctx context.Context, app *model.PartnerApplication) (*model.PartnerApplication, error) {
	args := m.Called(ctx, app)
	if f, ok := args.Get(0).(func(context.Context, *model.PartnerApplication) *model.PartnerApplication); ok {
		return f(ctx, app), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PartnerApplication), args.Error(1)
}

type MockTrustDownloadRepository struct {
	mock.Mock
}

var _ repository.TrustDownloadRepository = (*MockTrustDownloadRepository)(nil)

func (m *MockTrustDownloadRepository) Create(ctx context.Context, dl *model.TrustDownload) (*model.TrustDownload, error) {
	args := m.Called(ctx, dl)
	if f, ok := args.Get(0).(func(context.Context, *model.TrustDownload) *model.TrustDownload); ok {
		return f(ctx, dl), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrustDownload), args.Error(1)
}
