package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stereos/internal/mail"
	mailMocks "stereos/internal/mail/mocks"
	"stereos/internal/model"
	repoMocks "stereos/internal/repository/mocks"
	"stereos/internal/storage"
	storeMocks "stereos/internal/storage/mocks"
)

func TestTrustService_RequestDownload(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 3, 4, 5, 0, 0, 0, time.UTC)
	expiry := 15 * time.Minute

	request := model.TrustDownload{
		Name:     "Grace",
		Email:    "Grace@Example.com",
		Company:  "Navy",
		Document: "soc2-type2.pdf",
	}

	tests := []struct {
		name       string
		req        model.TrustDownload
		setupMocks func(st *storeMocks.MockStorage, repo *repoMocks.MockTrustDownloadRepository, m *mailMocks.MockSender)
		want       *model.TrustDownloadLink
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			req:  request,
			setupMocks: func(st *storeMocks.MockStorage, repo *repoMocks.MockTrustDownloadRepository, m *mailMocks.MockSender) {
				st.On("Stat", ctx, "soc2-type2.pdf").Return(storage.ObjectInfo{Key: "soc2-type2.pdf"}, nil)
				repo.On("Create", ctx, mock.MatchedBy(func(dl *model.TrustDownload) bool {
					return dl.ID != "" && dl.Email == "grace@example.com" && dl.CreatedAt.Equal(fixed)
				})).Return(func(_ context.Context, dl *model.TrustDownload) *model.TrustDownload {
					return dl
				}, nil)
				st.On("PresignGet", ctx, "soc2-type2.pdf", expiry).Return("https://minio/soc2?sig=1", nil)
				m.On("Send", ctx, mock.MatchedBy(func(msg mail.Message) bool {
					return msg.To[0] == "grace@example.com"
				})).Return(nil)
			},
			want: &model.TrustDownloadLink{URL: "https://minio/soc2?sig=1", ExpiresAt: fixed.Add(expiry)},
		},
		{
			name: "email failure still returns link",
			req:  request,
			setupMocks: func(st *storeMocks.MockStorage, repo *repoMocks.MockTrustDownloadRepository, m *mailMocks.MockSender) {
				st.On("Stat", ctx, "soc2-type2.pdf").Return(storage.ObjectInfo{}, nil)
				repo.On("Create", ctx, mock.Anything).Return(&model.TrustDownload{ID: "d1", Email: "grace@example.com", Document: "soc2-type2.pdf"}, nil)
				st.On("PresignGet", ctx, "soc2-type2.pdf", expiry).Return("https://minio/soc2", nil)
				m.On("Send", ctx, mock.Anything).Return(mail.ErrDisabled)
			},
			want: &model.TrustDownloadLink{URL: "https://minio/soc2", ExpiresAt: fixed.Add(expiry)},
		},
		{
			name: "document outside allow list",
			req:  model.TrustDownload{Document: "../secrets.txt"},
			setupMocks: func(st *storeMocks.MockStorage, repo *repoMocks.MockTrustDownloadRepository, m *mailMocks.MockSender) {
			},
			wantErr: ErrDocumentNotAllowed,
		},
		{
			name: "document missing from bucket",
			req:  request,
			setupMocks: func(st *storeMocks.MockStorage, repo *repoMocks.MockTrustDownloadRepository, m *mailMocks.MockSender) {
				st.On("Stat", ctx, "soc2-type2.pdf").Return(storage.ObjectInfo{}, storage.ErrObjectNotFound)
			},
			wantErr: ErrDocumentNotFound,
		},
		{
			name: "repository error",
			req:  request,
			setupMocks: func(st *storeMocks.MockStorage, repo *repoMocks.MockTrustDownloadRepository, m *mailMocks.MockSender) {
				st.On("Stat", ctx, "soc2-type2.pdf").Return(storage.ObjectInfo{}, nil)
				repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down"))
			},
			wantErrMsg: "record trust download: db down",
		},
		{
			name: "presign error",
			req:  request,
			setupMocks: func(st *storeMocks.MockStorage, repo *repoMocks.MockTrustDownloadRepository, m *mailMocks.MockSender) {
				st.On("Stat", ctx, "soc2-type2.pdf").Return(storage.ObjectInfo{}, nil)
				repo.On("Create", ctx, mock.Anything).Return(&model.TrustDownload{ID: "d1", Document: "soc2-type2.pdf"}, nil)
				st.On("PresignGet", ctx, "soc2-type2.pdf", expiry).Return("", errors.New("signature"))
			},
			wantErrMsg: "presign document: signature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := new(storeMocks.MockStorage)
			repo := new(repoMocks.MockTrustDownloadRepository)
			m := new(mailMocks.MockSender)
			tt.setupMocks(st, repo, m)

			svc := NewTrustService(st, repo, m, TrustOptions{Documents: []string{"soc2-type2.pdf"}}, zerolog.Nop())
			svc.(*trustService).now = func() time.Time { return fixed }

			got, err := svc.RequestDownload(ctx, tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			st.AssertExpectations(t)
			repo.AssertExpectations(t)
			m.AssertExpectations(t)
		})
	}
}
