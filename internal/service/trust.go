package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"stereos/internal/mail"
	"stereos/internal/model"
	"stereos/internal/repository"
	"stereos/internal/storage"
)

var (
	// ErrDocumentNotAllowed is returned for document keys outside the configured allow list.
	ErrDocumentNotAllowed = errors.New("document is not available")
	// ErrDocumentNotFound is returned when an allowed document is missing from the bucket.
	ErrDocumentNotFound = errors.New("document not found")
)

// TrustService hands out gated trust-center documents.
type TrustService interface {
	// RequestDownload records the request and returns a presigned link to the document.
	// The link is also emailed to the requester on a best-effort basis.
	RequestDownload(ctx context.Context, req model.TrustDownload) (*model.TrustDownloadLink, error)
}

// TrustOptions configures NewTrustService.
type TrustOptions struct {
	Documents  []string
	LinkExpiry time.Duration
	BaseURL    string
}

type trustService struct {
	store  storage.Storage
	repo   repository.TrustDownloadRepository
	mailer mail.Sender
	opts   TrustOptions
	log    zerolog.Logger
	now    func() time.Time
}

// NewTrustService constructs a TrustService. A zero LinkExpiry defaults to 15 minutes.
func NewTrustService(store storage.Storage, repo repository.TrustDownloadRepository, mailer mail.Sender, opts TrustOptions, log zerolog.Logger) TrustService {
	if opts.LinkExpiry <= 0 {
		opts.LinkExpiry = 15 * time.Minute
	}
	return &trustService{
		store:  store,
		repo:   repo,
		mailer: mailer,
		opts:   opts,
		log:    log.With().Str("component", "trust").Logger(),
		now:    time.Now,
	}
}

func (s *trustService) RequestDownload(ctx context.Context, req model.TrustDownload) (*model.TrustDownloadLink, error) {
	req.Document = strings.TrimSpace(req.Document)
	if !slices.Contains(s.opts.Documents, req.Document) {
		return nil, ErrDocumentNotAllowed
	}

	if _, err := s.store.Stat(ctx, req.Document); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			s.log.Error().Str("document", req.Document).Msg("allowed document missing from bucket")
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("stat document: %w", err)
	}

	now := s.now().UTC()
	req.ID = uuid.NewString()
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	req.Company = strings.TrimSpace(req.Company)
	req.CreatedAt = now

	stored, err := s.repo.Create(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("record trust download: %w", err)
	}

	url, err := s.store.PresignGet(ctx, stored.Document, s.opts.LinkExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign document: %w", err)
	}
	link := &model.TrustDownloadLink{URL: url, ExpiresAt: now.Add(s.opts.LinkExpiry)}

	msg, err := mail.TrustLink(stored.Email, mail.TrustLinkData{
		Name:      stored.Name,
		Document:  stored.Document,
		URL:       link.URL,
		ExpiresAt: link.ExpiresAt,
		BaseURL:   s.opts.BaseURL,
	})
	if err == nil {
		err = s.mailer.Send(ctx, msg)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("download_id", stored.ID).Msg("trust link email failed")
	}

	return link, nil
}
