// Package reconcile folds asynchronous delivery events from the telephony
// provider into persisted reminder state. The provider delivers at least
// once and in no guaranteed order; every entry point here is a no-op for
// duplicate, stale or unknown events, never an error.
package reconcile

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mahbubulalom/voice-reminder/internal/dialog"
	"github.com/mahbubulalom/voice-reminder/internal/metrics"
	"github.com/mahbubulalom/voice-reminder/internal/model"
	"github.com/mahbubulalom/voice-reminder/internal/repository/reminder"
)

//go:generate mockgen -source=reconciler.go -destination=../mocks/reconcile/mock.go -package=mocks

type reminderRepository interface {
	GetReminderByCallRef(ctx context.Context, callRef string) (model.Reminder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.Status) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Reconciler applies delivery-status events and in-call outcomes to reminders.
type Reconciler struct {
	repo    reminderRepository
	cache   cache
	metrics *metrics.Metrics
}

// NewReconciler creates a new Reconciler instance.
func NewReconciler(repo reminderRepository, cache cache, m *metrics.Metrics) *Reconciler {
	return &Reconciler{repo: repo, cache: cache, metrics: m}
}

func outcomeKey(callRef string) string { return "outcome:" + callRef }

// RecordOutcome stores the in-call outcome the dialog reached and applies it
// to the reminder. Confirmed and transfer outcomes resolve the reminder
// immediately; no-response leaves it at sent, so only delivery failures can
// move it further.
func (r *Reconciler) RecordOutcome(ctx context.Context, strategy retry.Strategy, callRef string, outcome dialog.Outcome) {
	r.metrics.OutcomesRecorded.WithLabelValues(string(outcome)).Inc()

	if err := r.cache.SetWithRetry(ctx, strategy, outcomeKey(callRef), string(outcome)); err != nil {
		zlog.Logger.Error().Err(err).Str("call_ref", callRef).Msg("failed to cache call outcome")
	}

	switch outcome {
	case dialog.OutcomeConfirmed:
		r.apply(ctx, callRef, model.StatusConfirmed)
	case dialog.OutcomeTransfer:
		r.apply(ctx, callRef, model.StatusRescheduled)
	}
}

// Reconcile folds one provider status event into the reminder correlated with
// callRef. Applying the same event twice, or applying any event to an
// already-resolved reminder, changes nothing.
func (r *Reconciler) Reconcile(ctx context.Context, strategy retry.Strategy, callRef string, kind model.EventKind) {
	switch {
	case kind == model.EventCompleted:
		outcome, err := r.cache.GetWithRetry(ctx, strategy, outcomeKey(callRef))
		if err != nil && !errors.Is(err, redis.Nil) {
			zlog.Logger.Error().Err(err).Str("call_ref", callRef).Msg("failed to read call outcome")
		}

		switch dialog.Outcome(outcome) {
		case dialog.OutcomeConfirmed:
			r.apply(ctx, callRef, model.StatusConfirmed)
		case dialog.OutcomeTransfer:
			r.apply(ctx, callRef, model.StatusRescheduled)
		default:
			// Call connected but no choice was recorded: the reminder
			// stays at sent.
			zlog.Logger.Info().Str("call_ref", callRef).Msg("call completed without a recorded outcome")
		}

	case kind.DeliveryFailure():
		r.apply(ctx, callRef, model.StatusFailed)

	default:
		zlog.Logger.Debug().Str("call_ref", callRef).Str("kind", string(kind)).Msg("ignoring call progress event")
	}
}

// apply moves the reminder behind callRef from sent to the given terminal
// status. Unknown references and stale transitions are logged and dropped.
func (r *Reconciler) apply(ctx context.Context, callRef string, to model.Status) {
	rem, err := r.repo.GetReminderByCallRef(ctx, callRef)
	if err != nil {
		if errors.Is(err, reminder.ErrReminderNotFound) {
			r.metrics.UnknownReferences.Inc()
			zlog.Logger.Warn().Str("call_ref", callRef).Msg("no reminder for call reference, dropping event")
			return
		}

		zlog.Logger.Error().Err(err).Str("call_ref", callRef).Msg("failed to load reminder for reconciliation")
		return
	}

	err = r.repo.UpdateStatus(ctx, rem.ID, model.StatusSent, to)
	if err != nil {
		if errors.Is(err, reminder.ErrStaleTransition) {
			r.metrics.StaleTransitions.Inc()
			zlog.Logger.Info().
				Str("call_ref", callRef).
				Str("status", string(rem.Status)).
				Str("to", string(to)).
				Msg("reminder already resolved, dropping event")
			return
		}

		zlog.Logger.Error().Err(err).Str("call_ref", callRef).Msg("failed to update reminder status")
		return
	}

	zlog.Logger.Info().
		Str("call_ref", callRef).
		Str("reminder_id", rem.ID.String()).
		Str("status", string(to)).
		Msg("reminder status reconciled")
}
