package call

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mahbubulalom/voice-reminder/internal/model"
	"github.com/mahbubulalom/voice-reminder/internal/rabbitmq/queue"
	"github.com/mahbubulalom/voice-reminder/internal/repository/reminder"
	remindersvc "github.com/mahbubulalom/voice-reminder/internal/service/reminder"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/call/mock.go -package=mocks
type reminderService interface {
	GetReminderByID(ctx context.Context, id uuid.UUID) (model.Reminder, error)
	Eligibility(rem model.Reminder, now time.Time) remindersvc.Decision
	AttemptCall(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error
}

type delayPublisher interface {
	PublishDelayed(job queue.CallJob, strategy retry.Strategy) error
}

type Handler struct {
	service reminderService
	delayed delayPublisher
}

func NewHandler(svc reminderService, delayed delayPublisher) *Handler {
	return &Handler{
		service: svc,
		delayed: delayed,
	}
}

// HandleJob processes one delivered call job: reminders whose call window has
// not opened yet go back through the delay queue, the rest are dialed. Retries
// cover transient placement failures; a job that keeps failing ends up marked
// failed by AttemptCall itself.
func (h *Handler) HandleJob(ctx context.Context, job queue.CallJob, strategy retry.Strategy) {
	zlog.Logger.Info().Msgf("Handle Job: Got reminder %s, appointment at %v", job.ReminderID, job.AppointmentAt)

	rem, err := h.service.GetReminderByID(ctx, job.ReminderID)
	if err != nil {
		if errors.Is(err, reminder.ErrReminderNotFound) {
			zlog.Logger.Warn().Interface("id", job.ReminderID).Err(err).Msg("reminder not found, dropping job")
			return
		}

		zlog.Logger.Error().Err(err).Msgf("failed to load reminder %s", job.ReminderID)
		return
	}

	decision := h.service.Eligibility(rem, time.Now())
	if !decision.PlaceNow {
		zlog.Logger.Info().Msgf("Handle Job: Reminder %s not due until %v, deferring", job.ReminderID, decision.RetryAt)

		if err := h.delayed.PublishDelayed(job, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msgf("failed to defer reminder %s", job.ReminderID)
		}
		return
	}

	select {
	case <-ctx.Done():
		zlog.Logger.Warn().Msgf("Handle Job: Shutting down, reminder %s not dialed", job.ReminderID)
		return
	default:
	}

	// AttemptCall settles the outcome itself: a refused placement moves the
	// reminder to failed, so the job is not retried here.
	zlog.Logger.Printf("Handle Job: Placing call for reminder %s", job.ReminderID)
	if err := h.service.AttemptCall(ctx, strategy, job.ReminderID); err != nil {
		zlog.Logger.Printf("Handle Job: Reminder %s call failed: %v", job.ReminderID, err)
		return
	}

	zlog.Logger.Info().Msgf("Handle Job: Reminder %s call placed successfully", job.ReminderID)
}
