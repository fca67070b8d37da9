package model

// EventKind names one webhook delivery from the telephony provider. The set
// mirrors Twilio's call lifecycle plus the two gather payload kinds.
type EventKind string

const (
	EventInitiated EventKind = "initiated"
	EventRinging   EventKind = "ringing"
	EventAnswered  EventKind = "answered"
	EventCompleted EventKind = "completed"
	EventBusy      EventKind = "busy"
	EventNoAnswer  EventKind = "no-answer"
	EventFailed    EventKind = "failed"

	EventDigits  EventKind = "digits"  // gather returned a pressed digit
	EventSpeech  EventKind = "speech"  // gather returned a transcribed utterance
	EventTimeout EventKind = "timeout" // gather window elapsed with no input
)

// DeliveryFailure reports whether k is a terminal delivery failure.
func (k EventKind) DeliveryFailure() bool {
	switch k {
	case EventBusy, EventNoAnswer, EventFailed:
		return true
	}
	return false
}

// CallEvent is one webhook delivery. It is never persisted; the call ref is
// the only correlation back to a reminder.
type CallEvent struct {
	CallRef   string    `json:"call_ref"`
	Kind      EventKind `json:"kind"`
	Digits    string    `json:"digits,omitempty"`
	Utterance string    `json:"utterance,omitempty"`
	From      string    `json:"from,omitempty"`
}
