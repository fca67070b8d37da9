package dialog

const (
	confirmPrompt = "Press 1 to confirm your appointment, or press 2 to speak with our staff."
	repeatLeadIn  = "I didn't receive your input. Let me repeat."

	confirmedSay = "Thank you for confirming your appointment. We look forward to seeing you. Goodbye!"
	transferSay  = "I'll connect you with our office staff. Please hold."
	noInputSay   = "Thank you for your time. If you need to make any changes to your appointment, please call our office during business hours. Goodbye!"
)

// ConfirmFlow drives the appointment reminder conversation: read the reminder,
// gather one digit, repeat the prompt exactly once, then give up.
type ConfirmFlow struct {
	// Script is the reminder text read to the patient before the gather.
	Script string
}

func (f ConfirmFlow) Start() State { return StateGreeting }

// Build advances the confirmation state machine by one event.
func (f ConfirmFlow) Build(state State, ev Event) Turn {
	switch state {
	case StateGreeting:
		return Turn{
			Say:  f.Script + " " + confirmPrompt,
			Mode: InputDigits,
			Next: StateAwaiting,
		}

	case StateAwaiting:
		switch choice(ev) {
		case "1":
			return Turn{Say: confirmedSay, Mode: InputNone, Next: StateTerminal, Outcome: OutcomeConfirmed, Hangup: true}
		case "2":
			return Turn{Say: transferSay, Mode: InputNone, Next: StateTerminal, Outcome: OutcomeTransfer, Transfer: true}
		}

		// Unrecognized digit or timeout: re-render the prompt once.
		return Turn{
			Say:  repeatLeadIn + " " + confirmPrompt,
			Mode: InputDigits,
			Next: StateRepeating,
		}

	case StateRepeating:
		switch choice(ev) {
		case "1":
			return Turn{Say: confirmedSay, Mode: InputNone, Next: StateTerminal, Outcome: OutcomeConfirmed, Hangup: true}
		case "2":
			return Turn{Say: transferSay, Mode: InputNone, Next: StateTerminal, Outcome: OutcomeTransfer, Transfer: true}
		}

		// Second miss ends the call.
		return Turn{Say: noInputSay, Mode: InputNone, Next: StateTerminal, Outcome: OutcomeNoResponse, Hangup: true}
	}

	// Terminal is a sink: nothing left to say.
	return Turn{Mode: InputNone, Next: StateTerminal, Hangup: true}
}

func choice(ev Event) string {
	if ev.Kind != EventDigit {
		return ""
	}
	return ev.Digit
}
