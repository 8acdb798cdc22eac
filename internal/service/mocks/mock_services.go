package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"stereos/internal/model"
	"stereos/internal/service"
)

type MockContentService struct {
	mock.Mock
}

var _ service.ContentService = (*MockContentService)(nil)

func (m *MockContentService) ListGuides(ctx context.Context) ([]model.GuideSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GuideSummary), args.Error(1)
}

func (m *MockContentService) GuidesByTopic(ctx context.Context, hub string) ([]model.GuideSummary, error) {
	args := m.Called(ctx, hub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GuideSummary), args.Error(1)
}

func (m *MockContentService) GetGuide(ctx context.Context, slug string) (*model.Guide, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guide), args.Error(1)
}

func (m *MockContentService) RelatedGuides(ctx context.Context, slug string) ([]model.GuideSummary, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GuideSummary), args.Error(1)
}

func (m *MockContentService) ListIndustryGuides(ctx context.Context) ([]model.IndustryGuideSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.IndustryGuideSummary), args.Error(1)
}

func (m *MockContentService) GetIndustryGuide(ctx context.Context, slug string) (*model.IndustryGuide, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.IndustryGuide), args.Error(1)
}

func (m *MockContentService) RelatedIndustryGuides(ctx context.Context, slug string) ([]model.IndustryGuideSummary, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.IndustryGuideSummary), args.Error(1)
}

func (m *MockContentService) ListTopicHubs(ctx context.Context) ([]model.TopicHubSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TopicHubSummary), args.Error(1)
}

func (m *MockContentService) GetTopicHub(ctx context.Context, hub string) (*model.TopicHub, error) {
	args := m.Called(ctx, hub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TopicHub), args.Error(1)
}

func (m *MockContentService) GetTopicSubpage(ctx context.Context, hub, slug string) (*model.TopicSubpage, error) {
	args := m.Called(ctx, hub, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TopicSubpage), args.Error(1)
}

func (m *MockContentService) RelatedTopicSubpages(ctx context.Context, hub, slug string) ([]model.TopicSubpageSummary, error) {
	args := m.Called(ctx, hub, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TopicSubpageSummary), args.Error(1)
}

type MockOGImageService struct {
	mock.Mock
}

var _ service.OGImageService = (*MockOGImageService)(nil)

func (m *MockOGImageService) RenderTopicCard(ctx context.Context, w io.Writer, q service.TopicCardQuery) error {
	args := m.Called(ctx, w, q)
	if f, ok := args.Get(0).(func(io.Writer) error); ok {
		return f(w)
	}
	return args.Error(0)
}

type MockPartnerService struct {
	mock.Mock
}

var _ service.PartnerService = (*MockPartnerService)(nil)

func (m *MockPartnerService) Apply(ctx context.Context, app model.PartnerApplication) (*model.PartnerApplication, error) {
	args := m.Called(ctx, app)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PartnerApplication), args.Error(1)
}

type MockTrustService struct {
	mock.Mock
}

var _ service.TrustService = (*MockTrustService)(nil)

func (m *MockTrustService) RequestDownload(ctx context.Context, req model.TrustDownload) (*model.TrustDownloadLink, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrustDownloadLink), args.Error(1)
}

type MockSlackConnectService struct {
	mock.Mock
}

var _ service.SlackConnectService = (*MockSlackConnectService)(nil)

func (m *MockSlackConnectService) Connect(ctx context.Context, req model.SlackConnectRequest) (*model.SlackConnectResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SlackConnectResult), args.Error(1)
}
