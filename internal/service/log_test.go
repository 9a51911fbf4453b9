package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/jtclarkjr/logboard/internal/domain"
	"github.com/jtclarkjr/logboard/internal/metrics"
	repository_mock "github.com/jtclarkjr/logboard/internal/mocks/repository"
	"github.com/jtclarkjr/logboard/internal/repo/repoerrs"
	"github.com/jtclarkjr/logboard/internal/repo/repotypes"
	"github.com/jtclarkjr/logboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeTrManager struct{}

func (fakeTrManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTrManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newLogService(t *testing.T, authRequired bool) (*service.LogService, *repository_mock.MockLog) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := repository_mock.NewMockLog(ctrl)
	cnt := metrics.NewTestCounters()

	return service.NewLogService(mockRepo, cnt, nil, fakeTrManager{}, authRequired), mockRepo
}

func TestLogService_CreateLog(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults are filled in", func(t *testing.T) {
		svc, mockRepo := newLogService(t, false)

		var captured domain.LogEntry
		mockRepo.EXPECT().
			CreateLog(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *domain.LogEntry) error {
				captured = *entry
				return nil
			})

		before := time.Now().UTC()
		entry, err := svc.CreateLog(ctx, service.CreateLogInput{
			Severity: "ERROR",
			Source:   "auth",
			Message:  "login failed",
		}, "")
		require.NoError(t, err)

		_, err = uuid.Parse(entry.ID)
		assert.NoError(t, err, "id must be a generated uuid")
		assert.Equal(t, domain.SeverityError, entry.Severity)
		assert.Equal(t, "auth", entry.Source)
		assert.Equal(t, "login failed", entry.Message)
		assert.True(t, entry.UpdatedAt.Equal(entry.CreatedAt), "updatedAt must equal createdAt on insert")
		assert.False(t, entry.Timestamp.Before(before), "timestamp defaults to now")
		assert.Nil(t, entry.CreatedBy)
		assert.Nil(t, entry.UpdatedBy)
		assert.Equal(t, entry, captured)
	})

	t.Run("explicit timestamp and actor are kept", func(t *testing.T) {
		svc, mockRepo := newLogService(t, true)

		mockRepo.EXPECT().CreateLog(ctx, gomock.Any()).Return(nil)

		ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		entry, err := svc.CreateLog(ctx, service.CreateLogInput{
			Timestamp: &ts,
			Severity:  "INFO",
			Source:    "billing",
			Message:   "invoice sent",
		}, "user-7")
		require.NoError(t, err)

		assert.True(t, entry.Timestamp.Equal(ts))
		require.NotNil(t, entry.CreatedBy)
		assert.Equal(t, "user-7", *entry.CreatedBy)
		require.NotNil(t, entry.UpdatedBy)
		assert.Equal(t, "user-7", *entry.UpdatedBy)
	})

	t.Run("multibyte text is measured in characters", func(t *testing.T) {
		svc, mockRepo := newLogService(t, false)

		mockRepo.EXPECT().CreateLog(ctx, gomock.Any()).Return(nil)

		// 600 characters but 1200 bytes; the limit counts characters
		message := strings.Repeat("ж", 600)
		entry, err := svc.CreateLog(ctx, service.CreateLogInput{
			Severity: "INFO",
			Source:   strings.Repeat("é", domain.MaxSourceLen),
			Message:  message,
		}, "")
		require.NoError(t, err)
		assert.Equal(t, message, entry.Message)
	})

	t.Run("validation failures never reach the repo", func(t *testing.T) {
		testCases := []struct {
			name      string
			input     service.CreateLogInput
			wantField string
		}{
			{"unknown severity", service.CreateLogInput{Severity: "FATAL", Source: "api", Message: "x"}, "severity"},
			{"blank source", service.CreateLogInput{Severity: "INFO", Source: "   ", Message: "x"}, "source"},
			{"blank message", service.CreateLogInput{Severity: "INFO", Source: "api", Message: ""}, "message"},
			{"source over the character limit", service.CreateLogInput{Severity: "INFO", Source: strings.Repeat("a", domain.MaxSourceLen+1), Message: "x"}, "source"},
			{"message over the character limit", service.CreateLogInput{Severity: "INFO", Source: "api", Message: strings.Repeat("ж", domain.MaxMessageLen+1)}, "message"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				svc, _ := newLogService(t, false)

				_, err := svc.CreateLog(ctx, tc.input, "")

				var validationErr *service.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tc.wantField, validationErr.Field)
			})
		}
	})

	t.Run("unauthorized without actor when auth required", func(t *testing.T) {
		svc, _ := newLogService(t, true)

		_, err := svc.CreateLog(ctx, service.CreateLogInput{
			Severity: "INFO",
			Source:   "api",
			Message:  "x",
		}, "")
		assert.ErrorIs(t, err, service.ErrUnauthorized)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo := newLogService(t, false)

		mockRepo.EXPECT().CreateLog(ctx, gomock.Any()).Return(errors.New("db error"))

		_, err := svc.CreateLog(ctx, service.CreateLogInput{
			Severity: "INFO",
			Source:   "api",
			Message:  "x",
		}, "")
		assert.ErrorIs(t, err, service.ErrInternal)
	})
}

func TestLogService_UpdateLog(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("empty patch still refreshes the audit stamp", func(t *testing.T) {
		svc, mockRepo := newLogService(t, false)

		prior := domain.LogEntry{ID: id, Severity: domain.SeverityInfo, Source: "api", Message: "hello"}
		mockRepo.EXPECT().GetLog(ctx, id).Return(prior, nil)

		before := time.Now().UTC()
		mockRepo.EXPECT().
			UpdateLog(ctx, id, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, patch repotypes.UpdateLog, updatedAt time.Time, updatedBy *string) (domain.LogEntry, error) {
				assert.True(t, patch.Empty(), "no content fields in an empty patch")
				assert.False(t, updatedAt.Before(before))
				assert.Nil(t, updatedBy)
				updated := prior
				updated.UpdatedAt = updatedAt
				return updated, nil
			})

		updated, err := svc.UpdateLog(ctx, id, service.UpdateLogInput{}, "")
		require.NoError(t, err)
		assert.Equal(t, prior.Message, updated.Message)
		assert.Equal(t, prior.Severity, updated.Severity)
	})

	t.Run("missing record", func(t *testing.T) {
		svc, mockRepo := newLogService(t, false)

		mockRepo.EXPECT().GetLog(ctx, id).Return(domain.LogEntry{}, repoerrs.ErrNotFound)

		_, err := svc.UpdateLog(ctx, id, service.UpdateLogInput{}, "")
		assert.ErrorIs(t, err, service.ErrLogNotFound)
	})

	t.Run("invalid severity in patch", func(t *testing.T) {
		svc, _ := newLogService(t, false)

		bad := "LOUD"
		_, err := svc.UpdateLog(ctx, id, service.UpdateLogInput{Severity: &bad}, "")

		var validationErr *service.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "severity", validationErr.Field)
	})
}

func TestLogService_GetLog(t *testing.T) {
	type args struct {
		ctx context.Context
		id  string
	}

	type mockBehavior func(r *repository_mock.MockLog, args args)

	id := uuid.NewString()
	entry := domain.LogEntry{
		ID:       id,
		Severity: domain.SeverityWarning,
		Source:   "auth",
		Message:  "token expired",
	}

	testCases := []struct {
		name         string
		args         args
		mockBehavior mockBehavior
		want         domain.LogEntry
		wantErr      error
	}{
		{
			name: "success",
			args: args{
				ctx: context.Background(),
				id:  id,
			},
			mockBehavior: func(r *repository_mock.MockLog, args args) {
				r.EXPECT().
					GetLog(args.ctx, args.id).
					Return(entry, nil)
			},
			want: entry,
		},
		{
			name: "missing record",
			args: args{
				ctx: context.Background(),
				id:  "no-such-id",
			},
			mockBehavior: func(r *repository_mock.MockLog, args args) {
				r.EXPECT().
					GetLog(args.ctx, args.id).
					Return(domain.LogEntry{}, repoerrs.ErrNotFound)
			},
			wantErr: service.ErrLogNotFound,
		},
		{
			name: "repository error",
			args: args{
				ctx: context.Background(),
				id:  id,
			},
			mockBehavior: func(r *repository_mock.MockLog, args args) {
				r.EXPECT().
					GetLog(args.ctx, args.id).
					Return(domain.LogEntry{}, errors.New("db error"))
			},
			wantErr: service.ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockRepo := newLogService(t, false)
			tc.mockBehavior(mockRepo, tc.args)

			got, err := svc.GetLog(tc.args.ctx, tc.args.id)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLogService_DeleteLog(t *testing.T) {
	type args struct {
		ctx   context.Context
		id    string
		actor string
	}

	type mockBehavior func(r *repository_mock.MockLog, args args)

	id := uuid.NewString()
	testCases := []struct {
		name         string
		args         args
		authRequired bool
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name: "success",
			args: args{
				ctx: context.Background(),
				id:  id,
			},
			mockBehavior: func(r *repository_mock.MockLog, args args) {
				r.EXPECT().
					DeleteLog(args.ctx, args.id).
					Return(nil)
			},
		},
		{
			name: "missing record",
			args: args{
				ctx: context.Background(),
				id:  id,
			},
			mockBehavior: func(r *repository_mock.MockLog, args args) {
				r.EXPECT().
					DeleteLog(args.ctx, args.id).
					Return(repoerrs.ErrNotFound)
			},
			wantErr: service.ErrLogNotFound,
		},
		{
			name: "unauthorized without actor when auth required",
			args: args{
				ctx: context.Background(),
				id:  id,
			},
			authRequired: true,
			mockBehavior: func(r *repository_mock.MockLog, args args) {},
			wantErr:      service.ErrUnauthorized,
		},
		{
			name: "actor satisfies the auth gate",
			args: args{
				ctx:   context.Background(),
				id:    id,
				actor: "user-3",
			},
			authRequired: true,
			mockBehavior: func(r *repository_mock.MockLog, args args) {
				r.EXPECT().
					DeleteLog(args.ctx, args.id).
					Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockRepo := newLogService(t, tc.authRequired)
			tc.mockBehavior(mockRepo, tc.args)

			err := svc.DeleteLog(tc.args.ctx, tc.args.id, tc.args.actor)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestLogService_ListLogs(t *testing.T) {
	ctx := context.Background()

	t.Run("last partial page", func(t *testing.T) {
		svc, mockRepo := newLogService(t, false)

		rows := make([]domain.LogEntry, 5)
		mockRepo.EXPECT().
			ListLogs(ctx, repotypes.ListParams{Page: 3, PageSize: 10}).
			Return(rows, 25, nil)

		page, err := svc.ListLogs(ctx, repotypes.ListParams{Page: 3, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, 25, page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Len(t, page.Logs, 5)
	})

	t.Run("page past the end is empty but not an error", func(t *testing.T) {
		svc, mockRepo := newLogService(t, false)

		mockRepo.EXPECT().
			ListLogs(ctx, repotypes.ListParams{Page: 8, PageSize: 10}).
			Return(nil, 25, nil)

		page, err := svc.ListLogs(ctx, repotypes.ListParams{Page: 8, PageSize: 10})
		require.NoError(t, err)
		assert.NotNil(t, page.Logs)
		assert.Empty(t, page.Logs)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("zero params are normalized before hitting the repo", func(t *testing.T) {
		svc, mockRepo := newLogService(t, false)

		mockRepo.EXPECT().
			ListLogs(ctx, repotypes.ListParams{Page: 1, PageSize: repotypes.DefaultPageSize}).
			Return([]domain.LogEntry{}, 0, nil)

		page, err := svc.ListLogs(ctx, repotypes.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, repotypes.DefaultPageSize, page.PageSize)
	})
}
