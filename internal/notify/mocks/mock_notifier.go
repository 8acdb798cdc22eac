package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stereos/internal/notify"
)

type MockNotifier struct {
	mock.Mock
}

var _ notify.Notifier = (*MockNotifier)(nil)

func (m *MockNotifier) CreateSharedChannel(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockNotifier) InviteOwner(ctx context.Context, channelID string) error {
	return m.Called(ctx, channelID).Error(0)
}

func (m *MockNotifier) InviteEmail(ctx context.Context, channelID, email string) error {
	return m.Called(ctx, channelID, email).Error(0)
}

func (m *MockNotifier) Post(ctx context.Context, channelID, text string) error {
	return m.Called(ctx, channelID, text).Error(0)
}
