package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stereos/internal/mail"
)

type MockSender struct {
	mock.Mock
}

var _ mail.Sender = (*MockSender)(nil)

func (m *MockSender) Send(ctx context.Context, msg mail.Message) error {
	return m.Called(ctx, msg).Error(0)
}
