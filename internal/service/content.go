package service

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"stereos/internal/content"
	"stereos/internal/model"
)

// ErrNotFound is returned for any content item that does not exist.
var ErrNotFound = errors.New("content not found")

// ContentService exposes the markdown collections to the HTTP layer.
type ContentService interface {
	ListGuides(ctx context.Context) ([]model.GuideSummary, error)
	// GuidesByTopic lists guides whose topic frontmatter names the hub.
	GuidesByTopic(ctx context.Context, hub string) ([]model.GuideSummary, error)
	GetGuide(ctx context.Context, slug string) (*model.Guide, error)
	RelatedGuides(ctx context.Context, slug string) ([]model.GuideSummary, error)

	ListIndustryGuides(ctx context.Context) ([]model.IndustryGuideSummary, error)
	// GetIndustryGuide also runs the quality checker when it is enabled.
	GetIndustryGuide(ctx context.Context, slug string) (*model.IndustryGuide, error)
	RelatedIndustryGuides(ctx context.Context, slug string) ([]model.IndustryGuideSummary, error)

	ListTopicHubs(ctx context.Context) ([]model.TopicHubSummary, error)
	GetTopicHub(ctx context.Context, hub string) (*model.TopicHub, error)
	GetTopicSubpage(ctx context.Context, hub, slug string) (*model.TopicSubpage, error)
	RelatedTopicSubpages(ctx context.Context, hub, slug string) ([]model.TopicSubpageSummary, error)
}

type contentService struct {
	src     *content.Source
	quality *content.QualityChecker
	tracer  trace.Tracer
	lookups *prometheus.CounterVec
}

// NewContentService wraps src with tracing and lookup metrics registered on reg.
// quality may be nil.
func NewContentService(src *content.Source, quality *content.QualityChecker, reg prometheus.Registerer) (ContentService, error) {
	lookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_lookups_total",
			Help: "Content lookups by collection and result.",
		},
		[]string{"collection", "result"},
	)
	if err := reg.Register(lookups); err != nil {
		return nil, err
	}
	return &contentService{
		src:     src,
		quality: quality,
		tracer:  otel.Tracer("stereos/service/content"),
		lookups: lookups,
	}, nil
}

const (
	collectionGuides     = "guides"
	collectionIndustries = "industries"
	collectionTopics     = "topics"
)

// observe finishes span and counts the lookup. Source errors are translated to ErrNotFound.
func (s *contentService) observe(span trace.Span, collection string, err error) error {
	defer span.End()
	switch {
	case err == nil:
		s.lookups.WithLabelValues(collection, "found").Inc()
		return nil
	case errors.Is(err, content.ErrNotFound):
		s.lookups.WithLabelValues(collection, "not_found").Inc()
		span.SetAttributes(attribute.Bool("content.not_found", true))
		return ErrNotFound
	default:
		s.lookups.WithLabelValues(collection, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
}

func (s *contentService) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *contentService) ListGuides(ctx context.Context) ([]model.GuideSummary, error) {
	ctx, span := s.start(ctx, "content.ListGuides")
	out, err := s.src.ListGuides(ctx)
	return out, s.observe(span, collectionGuides, err)
}

func (s *contentService) GuidesByTopic(ctx context.Context, hub string) ([]model.GuideSummary, error) {
	ctx, span := s.start(ctx, "content.GuidesByTopic", attribute.String("content.hub", hub))
	out, err := s.src.GuidesByTopic(ctx, hub)
	return out, s.observe(span, collectionGuides, err)
}

func (s *contentService) GetGuide(ctx context.Context, slug string) (*model.Guide, error) {
	ctx, span := s.start(ctx, "content.GetGuide", attribute.String("content.slug", slug))
	g, err := s.src.GetGuide(ctx, slug)
	if err = s.observe(span, collectionGuides, err); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *contentService) RelatedGuides(ctx context.Context, slug string) ([]model.GuideSummary, error) {
	ctx, span := s.start(ctx, "content.RelatedGuides", attribute.String("content.slug", slug))
	out, err := s.src.RelatedGuides(ctx, slug)
	return out, s.observe(span, collectionGuides, err)
}

func (s *contentService) ListIndustryGuides(ctx context.Context) ([]model.IndustryGuideSummary, error) {
	ctx, span := s.start(ctx, "content.ListIndustryGuides")
	out, err := s.src.ListIndustryGuides(ctx)
	return out, s.observe(span, collectionIndustries, err)
}

func (s *contentService) GetIndustryGuide(ctx context.Context, slug string) (*model.IndustryGuide, error) {
	ctx, span := s.start(ctx, "content.GetIndustryGuide", attribute.String("content.slug", slug))
	g, err := s.src.GetIndustryGuide(ctx, slug)
	if err = s.observe(span, collectionIndustries, err); err != nil {
		return nil, err
	}
	s.quality.Check(g)
	return g, nil
}

func (s *contentService) RelatedIndustryGuides(ctx context.Context, slug string) ([]model.IndustryGuideSummary, error) {
	ctx, span := s.start(ctx, "content.RelatedIndustryGuides", attribute.String("content.slug", slug))
	out, err := s.src.RelatedIndustryGuides(ctx, slug)
	return out, s.observe(span, collectionIndustries, err)
}

func (s *contentService) ListTopicHubs(ctx context.Context) ([]model.TopicHubSummary, error) {
	ctx, span := s.start(ctx, "content.ListTopicHubs")
	out, err := s.src.ListTopicHubs(ctx)
	return out, s.observe(span, collectionTopics, err)
}

func (s *contentService) GetTopicHub(ctx context.Context, hub string) (*model.TopicHub, error) {
	ctx, span := s.start(ctx, "content.GetTopicHub", attribute.String("content.hub", hub))
	h, err := s.src.GetTopicHub(ctx, hub)
	if err = s.observe(span, collectionTopics, err); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *contentService) GetTopicSubpage(ctx context.Context, hub, slug string) (*model.TopicSubpage, error) {
	ctx, span := s.start(ctx, "content.GetTopicSubpage",
		attribute.String("content.hub", hub),
		attribute.String("content.slug", slug),
	)
	p, err := s.src.GetTopicSubpage(ctx, hub, slug)
	if err = s.observe(span, collectionTopics, err); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *contentService) RelatedTopicSubpages(ctx context.Context, hub, slug string) ([]model.TopicSubpageSummary, error) {
	ctx, span := s.start(ctx, "content.RelatedTopicSubpages",
		attribute.String("content.hub", hub),
		attribute.String("content.slug", slug),
	)
	out, err := s.src.RelatedTopicSubpages(ctx, hub, slug)
	return out, s.observe(span, collectionTopics, err)
}
