package reminder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/mahbubulalom/voice-reminder/internal/model"
)

var (
	ErrReminderNotFound = errors.New("reminder not found")
	ErrNoRemindersFound = errors.New("no reminders found")

	// ErrStaleTransition means the guarded update matched no row: the reminder
	// either no longer holds the expected status or does not exist. Callers
	// absorb it as a no-op; duplicate and out-of-order webhooks land here.
	ErrStaleTransition = errors.New("stale status transition")
)

// Repository provides methods to interact with the reminders table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new reminder repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateReminder inserts a new reminder into the database and returns its ID.
func (r *Repository) CreateReminder(ctx context.Context, reminder model.Reminder) (uuid.UUID, error) {
	query := `
		INSERT INTO reminders (
		    patient_name, phone_number, appointment_at, message, status
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query,
		reminder.PatientName, reminder.PhoneNumber, reminder.AppointmentAt, reminder.Message, reminder.Status,
	).Scan(&reminder.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return reminder.ID, nil
}

// GetReminderByID retrieves a reminder by its ID.
func (r *Repository) GetReminderByID(ctx context.Context, id uuid.UUID) (model.Reminder, error) {
	query := `
		SELECT id, patient_name, phone_number, appointment_at, message,
		       COALESCE(call_ref, ''), status, created_at, updated_at
		FROM reminders
		WHERE id = $1;
    `

	var rem model.Reminder
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rem.ID, &rem.PatientName, &rem.PhoneNumber, &rem.AppointmentAt, &rem.Message,
		&rem.CallRef, &rem.Status, &rem.CreatedAt, &rem.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reminder{}, ErrReminderNotFound
		}

		return model.Reminder{}, fmt.Errorf("failed to get reminder: %w", err)
	}

	return rem, nil
}

// GetReminderByCallRef retrieves the reminder correlated with a provider call
// reference. Webhooks know nothing but this reference.
func (r *Repository) GetReminderByCallRef(ctx context.Context, callRef string) (model.Reminder, error) {
	query := `
		SELECT id, patient_name, phone_number, appointment_at, message,
		       COALESCE(call_ref, ''), status, created_at, updated_at
		FROM reminders
		WHERE call_ref = $1;
    `

	var rem model.Reminder
	err := r.db.QueryRowContext(ctx, query, callRef).Scan(
		&rem.ID, &rem.PatientName, &rem.PhoneNumber, &rem.AppointmentAt, &rem.Message,
		&rem.CallRef, &rem.Status, &rem.CreatedAt, &rem.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reminder{}, ErrReminderNotFound
		}

		return model.Reminder{}, fmt.Errorf("failed to get reminder by call ref: %w", err)
	}

	return rem, nil
}

// GetReminderStatusByID retrieves the status of a reminder by its ID.
func (r *Repository) GetReminderStatusByID(ctx context.Context, id uuid.UUID) (model.Status, error) {
	query := `
		SELECT status
		FROM reminders
		WHERE id = $1;
    `

	var status model.Status
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrReminderNotFound
		}

		return "", fmt.Errorf("failed to get reminder status: %w", err)
	}

	return status, nil
}

// UpdateStatus moves a reminder from one status to another. The WHERE clause
// on the current status makes concurrent writers to the same row serialize:
// whichever lands second matches nothing and gets ErrStaleTransition.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.Status) error {
	query := `
		UPDATE reminders
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3;
    `

	res, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("failed to update reminder status: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrStaleTransition
	}

	return nil
}

// MarkSent transitions scheduled -> sent and stores the provider call
// reference in the same guarded update. A scheduled reminder never carries a
// reference, so the guard also enforces that invariant.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, callRef string) error {
	query := `
		UPDATE reminders
		SET status = $1, call_ref = $2, updated_at = now()
		WHERE id = $3 AND status = $4 AND call_ref IS NULL;
    `

	res, err := r.db.ExecContext(ctx, query, model.StatusSent, callRef, id, model.StatusScheduled)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrStaleTransition
	}

	return nil
}

// GetUpcomingReminders retrieves reminders whose appointment is still in the
// future, soonest first.
func (r *Repository) GetUpcomingReminders(ctx context.Context, limit int) ([]model.Reminder, error) {
	query := `
		SELECT id, patient_name, phone_number, appointment_at, message,
		       COALESCE(call_ref, ''), status, created_at, updated_at
		FROM reminders
		WHERE appointment_at > now()
		ORDER BY appointment_at
		LIMIT $1;
    `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming reminders: %w", err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		var rem model.Reminder
		if err := rows.Scan(
			&rem.ID, &rem.PatientName, &rem.PhoneNumber, &rem.AppointmentAt, &rem.Message,
			&rem.CallRef, &rem.Status, &rem.CreatedAt, &rem.UpdatedAt,
		); err != nil {
			return nil, err
		}

		reminders = append(reminders, rem)
	}

	if len(reminders) == 0 {
		return nil, ErrNoRemindersFound
	}

	return reminders, nil
}
