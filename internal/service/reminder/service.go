package reminder

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mahbubulalom/voice-reminder/internal/metrics"
	"github.com/mahbubulalom/voice-reminder/internal/model"
	"github.com/mahbubulalom/voice-reminder/internal/rabbitmq/queue"
)

// ErrValidation means the creation input was rejected before anything was
// persisted.
var ErrValidation = errors.New("invalid reminder input")

//go:generate mockgen -source=service.go -destination=../../mocks/service/reminder/mock.go -package=mocks

type reminderRepository interface {
	CreateReminder(context.Context, model.Reminder) (uuid.UUID, error)
	GetReminderByID(context.Context, uuid.UUID) (model.Reminder, error)
	GetReminderStatusByID(context.Context, uuid.UUID) (model.Status, error)
	MarkSent(ctx context.Context, id uuid.UUID, callRef string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.Status) error
	GetUpcomingReminders(ctx context.Context, limit int) ([]model.Reminder, error)
}

type callPublisher interface {
	Publish(job queue.CallJob, strategy retry.Strategy) error
}

// callGateway places outbound calls with the telephony provider.
type callGateway interface {
	PlaceCall(ctx context.Context, to, answerURL, statusURL string) (string, error)
}

// scriptGenerator phrases the reminder text read at the start of a call.
type scriptGenerator interface {
	ReminderScript(ctx context.Context, patientName string, appointmentAt time.Time, customMessage string) (string, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Decision is the scheduling-eligibility verdict for one reminder.
type Decision struct {
	PlaceNow bool
	RetryAt  time.Time // when to re-evaluate, zero if PlaceNow
}

// Service owns the reminder lifecycle: creation, call-eligibility policy and
// call placement.
type Service struct {
	repo      reminderRepository
	queue     callPublisher
	gateway   callGateway
	generator scriptGenerator
	cache     cache
	metrics   *metrics.Metrics

	baseURL    string        // public base URL for provider callbacks
	leadTime   time.Duration // how long before the appointment to call
	genTimeout time.Duration // bound on one script generation
}

// NewService creates a new Service instance.
func NewService(
	repo reminderRepository,
	q callPublisher,
	gateway callGateway,
	generator scriptGenerator,
	cache cache,
	m *metrics.Metrics,
	baseURL string,
	leadTime, genTimeout time.Duration,
) *Service {
	return &Service{
		repo:       repo,
		queue:      q,
		gateway:    gateway,
		generator:  generator,
		cache:      cache,
		metrics:    m,
		baseURL:    baseURL,
		leadTime:   leadTime,
		genTimeout: genTimeout,
	}
}

var phoneJunk = regexp.MustCompile(`[\s().-]`)
var phoneE164 = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// NormalizePhone strips formatting characters and validates the result
// against E.164. A bare national number cannot be normalized without a
// region, so the input must already carry its country code.
func NormalizePhone(raw string) (string, error) {
	cleaned := phoneJunk.ReplaceAllString(raw, "")
	if !phoneE164.MatchString(cleaned) {
		return "", fmt.Errorf("phone number %q is not E.164-normalizable", raw)
	}

	return cleaned, nil
}

// CreateReminder validates the input, persists a scheduled reminder and
// enqueues its call job. Validation failures reject the whole request;
// nothing is partially applied.
func (s *Service) CreateReminder(ctx context.Context, strategy retry.Strategy, rem model.Reminder) (uuid.UUID, error) {
	phone, err := NormalizePhone(rem.PhoneNumber)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	rem.PhoneNumber = phone

	if rem.PatientName == "" {
		return uuid.Nil, fmt.Errorf("%w: patient name is required", ErrValidation)
	}

	if !rem.AppointmentAt.After(time.Now()) {
		return uuid.Nil, fmt.Errorf("%w: appointment instant must be in the future", ErrValidation)
	}

	rem.Status = model.StatusScheduled

	id, err := s.repo.CreateReminder(ctx, rem)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create reminder: %w", err)
	}

	err = s.cache.SetWithRetry(ctx, strategy, id.String(), string(rem.Status))
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache reminder status")
	}

	job := queue.CallJob{
		ReminderID:    id,
		AppointmentAt: rem.AppointmentAt,
	}

	err = s.queue.Publish(job, strategy)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to publish call job")
	}

	return id, nil
}

// Eligibility decides whether a reminder's call should be placed now. The
// policy is to call one lead time before the appointment; if that window has
// already opened, call immediately. Pure decision logic: whoever holds the
// job is responsible for re-delivering it at RetryAt.
func (s *Service) Eligibility(rem model.Reminder, now time.Time) Decision {
	callAt := rem.AppointmentAt.Add(-s.leadTime)
	if !callAt.After(now) {
		return Decision{PlaceNow: true}
	}

	return Decision{RetryAt: callAt}
}

// AttemptCall places the reminder's call: generates the script, asks the
// gateway to dial, and moves scheduled -> sent with the provider reference,
// or scheduled -> failed when placement is refused or times out. A reminder
// that is no longer scheduled is skipped without error.
func (s *Service) AttemptCall(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error {
	rem, err := s.repo.GetReminderByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load reminder: %w", err)
	}

	if rem.Status != model.StatusScheduled {
		zlog.Logger.Info().
			Str("id", id.String()).
			Str("status", string(rem.Status)).
			Msg("reminder no longer scheduled, skipping call")
		return nil
	}

	script := s.buildScript(ctx, rem)

	callRef, err := s.gateway.PlaceCall(
		ctx,
		rem.PhoneNumber,
		s.baseURL+"/webhooks/voice/answer",
		s.baseURL+"/webhooks/voice/status",
	)
	if err != nil {
		s.metrics.PlacementFailures.Inc()
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("call placement failed")

		if updErr := s.repo.UpdateStatus(ctx, id, model.StatusScheduled, model.StatusFailed); updErr != nil {
			zlog.Logger.Error().Err(updErr).Str("id", id.String()).Msg("failed to mark reminder failed")
		} else if cacheErr := s.cache.SetWithRetry(ctx, strategy, id.String(), string(model.StatusFailed)); cacheErr != nil {
			zlog.Logger.Error().Err(cacheErr).Str("id", id.String()).Msg("failed to cache reminder status")
		}

		return fmt.Errorf("place call: %w", err)
	}

	// Logged before the persist so an orphan call is traceable if we crash
	// between placing and recording it.
	zlog.Logger.Info().Str("id", id.String()).Str("call_ref", callRef).Msg("call placed")

	if err := s.cache.SetWithRetry(ctx, strategy, scriptKey(callRef), script); err != nil {
		zlog.Logger.Error().Err(err).Str("call_ref", callRef).Msg("failed to cache call script")
	}

	if err := s.repo.MarkSent(ctx, id, callRef); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Str("call_ref", callRef).Msg("failed to mark reminder sent")
		return fmt.Errorf("mark sent: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), string(model.StatusSent)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache reminder status")
	}

	s.metrics.CallsPlaced.Inc()

	return nil
}

// buildScript asks the generation service for the reminder text, falling back
// to a static script so a generation outage never blocks the call.
func (s *Service) buildScript(ctx context.Context, rem model.Reminder) string {
	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	script, err := s.generator.ReminderScript(genCtx, rem.PatientName, rem.AppointmentAt, rem.Message)
	if err != nil {
		s.metrics.GenerationFallbacks.Inc()
		zlog.Logger.Warn().Err(err).Str("id", rem.ID.String()).Msg("script generation unavailable, using fallback")
		return FallbackScript(rem)
	}

	return script
}

// FallbackScript is the static reminder read when generation is unavailable.
func FallbackScript(rem model.Reminder) string {
	script := fmt.Sprintf(
		"Hello %s. This is a courtesy call from My Dentist. You have an appointment scheduled for %s.",
		rem.PatientName, rem.AppointmentAt.Format("Monday, January 2 at 3:04 PM"),
	)
	if rem.Message != "" {
		script += " " + rem.Message
	}

	return script
}

func scriptKey(callRef string) string { return "script:" + callRef }

// ScriptByCallRef returns the reminder script cached when the call was
// placed. A miss returns redis.Nil.
func (s *Service) ScriptByCallRef(ctx context.Context, strategy retry.Strategy, callRef string) (string, error) {
	return s.cache.GetWithRetry(ctx, strategy, scriptKey(callRef))
}

// GetReminderStatusByID returns the reminder's status, reading through the
// cache first.
func (s *Service) GetReminderStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get reminder status from cache")
	}

	if err != nil {
		fresh, repoErr := s.repo.GetReminderStatusByID(ctx, id)
		if repoErr != nil {
			return "", fmt.Errorf("get reminder status: %w", repoErr)
		}

		if cacheErr := s.cache.SetWithRetry(ctx, strategy, id.String(), string(fresh)); cacheErr != nil {
			zlog.Logger.Error().Err(cacheErr).Str("id", id.String()).Msg("failed to cache reminder status")
		}

		return fresh, nil
	}

	return model.Status(status), nil
}

// GetReminderByID returns the full reminder record.
func (s *Service) GetReminderByID(ctx context.Context, id uuid.UUID) (model.Reminder, error) {
	rem, err := s.repo.GetReminderByID(ctx, id)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("get reminder: %w", err)
	}

	return rem, nil
}

// GetUpcomingReminders lists reminders with a future appointment.
func (s *Service) GetUpcomingReminders(ctx context.Context, limit int) ([]model.Reminder, error) {
	reminders, err := s.repo.GetUpcomingReminders(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get upcoming reminders: %w", err)
	}

	return reminders, nil
}

// EnqueueCall republishes the reminder's call job for immediate evaluation.
// This is the entry point external triggers hit.
func (s *Service) EnqueueCall(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error {
	rem, err := s.repo.GetReminderByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load reminder: %w", err)
	}

	if rem.Status != model.StatusScheduled {
		return fmt.Errorf("reminder is %s, only scheduled reminders can be called", rem.Status)
	}

	job := queue.CallJob{ReminderID: rem.ID, AppointmentAt: rem.AppointmentAt}
	if err := s.queue.Publish(job, strategy); err != nil {
		return fmt.Errorf("publish call job: %w", err)
	}

	return nil
}
