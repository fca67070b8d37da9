package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a reminder.
type Status string

const (
	StatusScheduled   Status = "scheduled"   // created, call not yet attempted
	StatusSent        Status = "sent"        // call placed, waiting for an outcome
	StatusConfirmed   Status = "confirmed"   // patient confirmed the appointment in-call
	StatusRescheduled Status = "rescheduled" // patient asked for staff / rescheduling
	StatusFailed      Status = "failed"      // placement or delivery failed
)

// Terminal reports whether no further automatic transition leaves s.
// Sent is the one intermediate state: it resolves through delivery events.
func (s Status) Terminal() bool {
	switch s {
	case StatusConfirmed, StatusRescheduled, StatusFailed:
		return true
	}
	return false
}

// CanTransition reports whether the from -> to edge exists in the lifecycle
// graph. Nothing ever re-enters scheduled.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusScheduled:
		return to == StatusSent || to == StatusFailed
	case StatusSent:
		return to == StatusConfirmed || to == StatusRescheduled || to == StatusFailed
	}
	return false
}

// Reminder represents one scheduled appointment reminder call.
type Reminder struct {
	ID            uuid.UUID `json:"id"`             // unique identifier for the reminder
	PatientName   string    `json:"patient_name"`   // who the call addresses
	PhoneNumber   string    `json:"phone_number"`   // destination number, E.164
	AppointmentAt time.Time `json:"appointment_at"` // appointment instant, must be in the future at creation
	Message       string    `json:"message"`        // optional custom message included in the script
	CallRef       string    `json:"call_ref"`       // provider call reference; empty until a call is attempted
	Status        Status    `json:"status"`         // current lifecycle state
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
