package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mahbubulalom/voice-reminder/internal/api/respond"
	"github.com/mahbubulalom/voice-reminder/internal/config"
	"github.com/mahbubulalom/voice-reminder/internal/model"
	reminderrepo "github.com/mahbubulalom/voice-reminder/internal/repository/reminder"
	remindersvc "github.com/mahbubulalom/voice-reminder/internal/service/reminder"
)

const upcomingLimit = 10

// reminderService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reminder/mock.go -package=mocks
type reminderService interface {
	CreateReminder(context.Context, retry.Strategy, model.Reminder) (uuid.UUID, error)
	GetReminderStatusByID(context.Context, retry.Strategy, uuid.UUID) (model.Status, error)
	GetReminderByID(ctx context.Context, id uuid.UUID) (model.Reminder, error)
	GetUpcomingReminders(ctx context.Context, limit int) ([]model.Reminder, error)
	EnqueueCall(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error
}

// Handler handles HTTP requests related to reminders.
type Handler struct {
	service   reminderService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(
	s reminderService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// CreateRequest represents the JSON body expected in a reminder creation request.
type CreateRequest struct {
	PatientName   string `json:"patient_name" validate:"required"`
	PhoneNumber   string `json:"phone_number" validate:"required"`
	AppointmentAt string `json:"appointment_at" validate:"required"` // RFC 3339
	Message       string `json:"message"`
}

// Create handles HTTP POST requests to create a new reminder.
func (h *Handler) Create(c *ginext.Context) {
	var req CreateRequest

	// Decode JSON request body into CreateRequest struct.
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	// Validate request fields using go-playground/validator.
	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	appointmentAt, err := time.Parse(time.RFC3339, req.AppointmentAt)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to parse appointment_at")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid appointment_at format, want RFC 3339"))
		return
	}

	rem := model.Reminder{
		PatientName:   req.PatientName,
		PhoneNumber:   req.PhoneNumber,
		AppointmentAt: appointmentAt,
		Message:       req.Message,
	}

	id, err := h.service.CreateReminder(c.Request.Context(), h.cfg.Retry, rem)
	if err != nil {
		if errors.Is(err, remindersvc.ErrValidation) {
			zlog.Logger.Warn().Err(err).Msg("reminder creation rejected")
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("patient", req.PatientName).Msg("failed to create reminder")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// GetStatus handles HTTP GET requests to retrieve the status of a reminder.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	status, err := h.service.GetReminderStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, reminderrepo.ErrReminderNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Err(err).Msg("reminder not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("reminder not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get reminder status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

// Get handles HTTP GET requests to retrieve one reminder.
func (h *Handler) Get(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	rem, err := h.service.GetReminderByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, reminderrepo.ErrReminderNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Err(err).Msg("reminder not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("reminder not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get reminder")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, rem)
}

// GetUpcoming handles HTTP GET requests to list reminders with a future
// appointment.
func (h *Handler) GetUpcoming(c *ginext.Context) {
	reminders, err := h.service.GetUpcomingReminders(c.Request.Context(), upcomingLimit)
	if err != nil {
		if errors.Is(err, reminderrepo.ErrNoRemindersFound) {
			zlog.Logger.Warn().Err(err).Msg("no reminders found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("no reminders found"))
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to get reminders")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, reminders)
}

// TriggerCall handles HTTP POST requests asking for a reminder's call to be
// placed now. This is the entry point for external trigger infrastructure.
func (h *Handler) TriggerCall(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	err := h.service.EnqueueCall(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, reminderrepo.ErrReminderNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Err(err).Msg("reminder not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("reminder not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to enqueue call")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "call enqueued")
}

// parseID extracts and validates the reminder ID URL parameter.
func (h *Handler) parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return uuid.Nil, false
	}

	return id, true
}
