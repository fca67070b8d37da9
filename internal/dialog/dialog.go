// Package dialog builds voice-menu scripts as pure state transitions. A flow
// maps (state, event) to the next turn to render; it performs no I/O, so the
// whole conversation shape is testable as a table.
package dialog

// State names one node of a flow's state machine.
type State string

const (
	// Confirmation flow states.
	StateGreeting  State = "greeting"
	StateAwaiting  State = "awaiting_confirmation"
	StateRepeating State = "repeating"
	StateTerminal  State = "terminal"

	// Inquiry flow states.
	StateConversing State = "conversing"
	StateLingering  State = "lingering" // one timeout already happened
)

// InputMode tells the renderer what kind of gather, if any, follows the prompt.
type InputMode string

const (
	InputNone   InputMode = "none"
	InputDigits InputMode = "digits"
	InputSpeech InputMode = "speech"
)

// Outcome is the in-call result a flow reports when it reaches Terminal.
type Outcome string

const (
	OutcomeNone       Outcome = ""
	OutcomeConfirmed  Outcome = "confirmed"
	OutcomeTransfer   Outcome = "transfer"
	OutcomeNoResponse Outcome = "no-response"
	OutcomeDone       Outcome = "done" // inquiry call ended normally
)

// EventKind is the input class a flow advances on.
type EventKind string

const (
	EventAnswered EventKind = "answered" // call connected, render the opening turn
	EventDigit    EventKind = "digit"
	EventSpeech   EventKind = "speech"
	EventTimeout  EventKind = "timeout" // gather window elapsed with no input
)

// Event is one input delivered to a flow.
type Event struct {
	Kind  EventKind
	Digit string
	// Utterance is the transcribed speech for EventSpeech.
	Utterance string
	// Reply is the generated response to Utterance. The engine resolves it
	// before advancing the flow so the flow itself stays pure.
	Reply string
}

// Turn is one prompt-and-gather unit of the conversation.
type Turn struct {
	Say     string
	Mode    InputMode
	Next    State   // state entered after this turn (also the timeout target)
	Outcome Outcome // set only when Next == StateTerminal
	// Transfer asks the renderer to dial the staff number after Say.
	Transfer bool
	Hangup   bool
}

// Flow is the shared contract of both flows: advance one step.
type Flow interface {
	Build(state State, ev Event) Turn
	// Start is the state a fresh call enters before its first event.
	Start() State
}
