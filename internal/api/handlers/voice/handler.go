package voice

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mahbubulalom/voice-reminder/internal/api/respond"
	"github.com/mahbubulalom/voice-reminder/internal/config"
	"github.com/mahbubulalom/voice-reminder/internal/metrics"
	"github.com/mahbubulalom/voice-reminder/internal/model"
)

// callEngine drives the in-call conversation and returns TwiML for each
// webhook delivery.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/voice/mock.go -package=mocks
type callEngine interface {
	HandleEvent(ctx context.Context, strategy retry.Strategy, ev model.CallEvent) string
}

// statusReconciler folds lifecycle webhooks into reminder statuses.
type statusReconciler interface {
	Reconcile(ctx context.Context, strategy retry.Strategy, callRef string, kind model.EventKind)
}

// Handler handles telephony provider webhooks.
type Handler struct {
	engine     callEngine
	reconciler statusReconciler
	metrics    *metrics.Metrics
	cfg        *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(
	e callEngine,
	r statusReconciler,
	m *metrics.Metrics,
	cfg *config.Config,
) *Handler {
	return &Handler{engine: e, reconciler: r, metrics: m, cfg: cfg}
}

// Answer handles the voice webhook Twilio posts for every turn of an
// outbound call: the initial answer, each gather result, and gather
// timeouts. It always responds with TwiML.
func (h *Handler) Answer(c *ginext.Context) {
	ev, ok := h.parseEvent(c)
	if !ok {
		return
	}

	h.metrics.WebhooksReceived.WithLabelValues(string(ev.Kind)).Inc()

	twiml := h.engine.HandleEvent(c.Request.Context(), h.cfg.Retry, ev)
	respond.XML(c.Writer, http.StatusOK, twiml)
}

// Inbound handles calls placed by patients to the practice number. The
// call ref is never a known reminder ref, so the engine runs the open
// inquiry conversation.
func (h *Handler) Inbound(c *ginext.Context) {
	ev, ok := h.parseEvent(c)
	if !ok {
		return
	}

	h.metrics.WebhooksReceived.WithLabelValues(string(ev.Kind)).Inc()

	twiml := h.engine.HandleEvent(c.Request.Context(), h.cfg.Retry, ev)
	respond.XML(c.Writer, http.StatusOK, twiml)
}

// Status handles the status callback webhook. Deliveries may arrive out of
// order and more than once; the reconciler absorbs both, so the handler
// acknowledges every recognizable delivery with 2xx to stop provider
// retries.
func (h *Handler) Status(c *ginext.Context) {
	callRef := c.Request.PostFormValue("CallSid")
	if callRef == "" {
		zlog.Logger.Warn().Msg("status callback without CallSid")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing CallSid"))
		return
	}

	kind := lifecycleKind(c.Request.PostFormValue("CallStatus"))
	h.metrics.WebhooksReceived.WithLabelValues(string(kind)).Inc()

	h.reconciler.Reconcile(c.Request.Context(), h.cfg.Retry, callRef, kind)
	respond.OK(c.Writer, "accepted")
}

// parseEvent builds a CallEvent out of the webhook form payload.
func (h *Handler) parseEvent(c *ginext.Context) (model.CallEvent, bool) {
	callRef := c.Request.PostFormValue("CallSid")
	if callRef == "" {
		zlog.Logger.Warn().Msg("voice webhook without CallSid")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing CallSid"))
		return model.CallEvent{}, false
	}

	ev := model.CallEvent{
		CallRef: callRef,
		From:    c.Request.PostFormValue("From"),
	}

	switch {
	case c.Query("timeout") == "1":
		ev.Kind = model.EventTimeout
	case c.Request.PostFormValue("Digits") != "":
		ev.Kind = model.EventDigits
		ev.Digits = c.Request.PostFormValue("Digits")
	case c.Request.PostFormValue("SpeechResult") != "":
		ev.Kind = model.EventSpeech
		ev.Utterance = c.Request.PostFormValue("SpeechResult")
	default:
		ev.Kind = model.EventAnswered
	}

	return ev, true
}

// lifecycleKind maps a Twilio CallStatus value onto an event kind. Unknown
// values are treated as in-flight progress and ignored downstream.
func lifecycleKind(status string) model.EventKind {
	switch status {
	case "initiated", "queued":
		return model.EventInitiated
	case "ringing":
		return model.EventRinging
	case "answered", "in-progress":
		return model.EventAnswered
	case "completed":
		return model.EventCompleted
	case "busy":
		return model.EventBusy
	case "no-answer":
		return model.EventNoAnswer
	case "failed", "canceled":
		return model.EventFailed
	default:
		return model.EventKind(status)
	}
}
