package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/jtclarkjr/logboard/internal/broker"
	"github.com/jtclarkjr/logboard/internal/domain"
	"github.com/jtclarkjr/logboard/internal/metrics"
	"github.com/jtclarkjr/logboard/internal/repo"
	"github.com/jtclarkjr/logboard/internal/repo/repoerrs"
	"github.com/jtclarkjr/logboard/internal/repo/repotypes"
	log "github.com/sirupsen/logrus"
)

// CreateLogInput is the client-submitted shape of a new entry. A nil
// Timestamp defaults to now.
type CreateLogInput struct {
	Timestamp *time.Time
	Severity  string
	Source    string
	Message   string
}

// UpdateLogInput is a partial patch, nil fields are left unchanged.
type UpdateLogInput struct {
	Timestamp *time.Time
	Severity  *string
	Source    *string
	Message   *string
}

type auditEvent struct {
	Action string    `json:"action"`
	LogID  string    `json:"logId"`
	Actor  string    `json:"actor,omitempty"`
	At     time.Time `json:"at"`
}

type LogService struct {
	logRepo      repo.Log
	counters     *metrics.Counters
	producer     broker.Producer
	trManager    trm.Manager
	authRequired bool
}

func NewLogService(lr repo.Log, cnt *metrics.Counters, p broker.Producer, tr trm.Manager, authRequired bool) *LogService {
	return &LogService{
		logRepo:      lr,
		counters:     cnt,
		producer:     p,
		trManager:    tr,
		authRequired: authRequired,
	}
}

func (s *LogService) ListLogs(ctx context.Context, params repotypes.ListParams) (domain.LogPage, error) {
	params.Normalize(repotypes.DefaultPageSize, repotypes.MaxPageSize)

	logs, total, err := s.logRepo.ListLogs(ctx, params)
	if err != nil {
		return domain.LogPage{}, internalErr(err)
	}
	if logs == nil {
		logs = []domain.LogEntry{}
	}

	return domain.LogPage{
		Logs:       logs,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: repotypes.TotalPages(total, params.PageSize),
	}, nil
}

func (s *LogService) GetLog(ctx context.Context, id string) (domain.LogEntry, error) {
	entry, err := s.logRepo.GetLog(ctx, id)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.LogEntry{}, ErrLogNotFound
		}
		return domain.LogEntry{}, internalErr(err)
	}
	return entry, nil
}

func (s *LogService) CreateLog(ctx context.Context, in CreateLogInput, actor string) (domain.LogEntry, error) {
	if err := s.requireActor(actor); err != nil {
		return domain.LogEntry{}, err
	}

	sev, err := domain.ParseSeverity(in.Severity)
	if err != nil {
		return domain.LogEntry{}, invalidField("severity", err.Error())
	}
	source, err := validateText("source", in.Source, domain.MaxSourceLen)
	if err != nil {
		return domain.LogEntry{}, err
	}
	message, err := validateText("message", in.Message, domain.MaxMessageLen)
	if err != nil {
		return domain.LogEntry{}, err
	}

	now := time.Now().UTC()
	ts := now
	if in.Timestamp != nil {
		ts = in.Timestamp.UTC()
	}

	entry := domain.LogEntry{
		ID:        uuid.NewString(),
		Timestamp: ts,
		Severity:  sev,
		Source:    source,
		Message:   message,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: actorPtr(actor),
		UpdatedBy: actorPtr(actor),
	}

	if err := s.logRepo.CreateLog(ctx, &entry); err != nil {
		return domain.LogEntry{}, internalErr(err)
	}

	s.counters.LogsCreated.Inc(entry.Source, entry.Severity.String())
	s.publishAudit(ctx, "created", entry.ID, actor)

	return entry, nil
}

func (s *LogService) UpdateLog(ctx context.Context, id string, in UpdateLogInput, actor string) (domain.LogEntry, error) {
	if err := s.requireActor(actor); err != nil {
		return domain.LogEntry{}, err
	}

	patch, err := buildPatch(in)
	if err != nil {
		return domain.LogEntry{}, err
	}

	var updated domain.LogEntry
	err = s.trManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.logRepo.GetLog(ctx, id); err != nil {
			return err
		}
		var err error
		updated, err = s.logRepo.UpdateLog(ctx, id, patch, time.Now().UTC(), actorPtr(actor))
		return err
	})
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.LogEntry{}, ErrLogNotFound
		}
		return domain.LogEntry{}, internalErr(err)
	}

	s.publishAudit(ctx, "updated", id, actor)

	return updated, nil
}

func (s *LogService) DeleteLog(ctx context.Context, id string, actor string) error {
	if err := s.requireActor(actor); err != nil {
		return err
	}

	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		return s.logRepo.DeleteLog(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return ErrLogNotFound
		}
		return internalErr(err)
	}

	s.counters.LogsDeleted.Inc()
	s.publishAudit(ctx, "deleted", id, actor)

	return nil
}

func (s *LogService) requireActor(actor string) error {
	if s.authRequired && actor == "" {
		return ErrUnauthorized
	}
	return nil
}

// publishAudit is fire-and-forget: a broker outage never fails the mutation.
func (s *LogService) publishAudit(ctx context.Context, action, id, actor string) {
	if s.producer == nil {
		return
	}

	payload, err := json.Marshal(auditEvent{
		Action: action,
		LogID:  id,
		Actor:  actor,
		At:     time.Now().UTC(),
	})
	if err != nil {
		return
	}

	if err := s.producer.SendMessage(ctx, payload); err != nil {
		log.WithFields(log.Fields{
			"action": action,
			"log_id": id,
		}).Warnf("audit event not published: %v", err)
	}
}

func buildPatch(in UpdateLogInput) (repotypes.UpdateLog, error) {
	var patch repotypes.UpdateLog

	if in.Timestamp != nil {
		ts := in.Timestamp.UTC()
		patch.Timestamp = &ts
	}
	if in.Severity != nil {
		sev, err := domain.ParseSeverity(*in.Severity)
		if err != nil {
			return repotypes.UpdateLog{}, invalidField("severity", err.Error())
		}
		patch.Severity = &sev
	}
	if in.Source != nil {
		source, err := validateText("source", *in.Source, domain.MaxSourceLen)
		if err != nil {
			return repotypes.UpdateLog{}, err
		}
		patch.Source = &source
	}
	if in.Message != nil {
		message, err := validateText("message", *in.Message, domain.MaxMessageLen)
		if err != nil {
			return repotypes.UpdateLog{}, err
		}
		patch.Message = &message
	}

	return patch, nil
}

// validateText trims and bounds a text field. Limits are in characters,
// matching the column types, not bytes.
func validateText(field, value string, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", invalidField(field, "must not be empty")
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return "", invalidField(field, "too long")
	}
	return trimmed, nil
}

func actorPtr(actor string) *string {
	if actor == "" {
		return nil
	}
	return &actor
}
