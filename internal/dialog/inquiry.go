package dialog

const (
	inquiryGreeting = "Thank you for calling My Dentist. I'm the automated assistant. How can I help you today?"
	inquiryFollowUp = "Is there anything else I can help you with?"
	inquiryNudge    = "I didn't hear anything. Are you still there?"
	inquiryGoodbye  = "Thank you for calling My Dentist. Goodbye!"
)

// InquiryFlow drives incoming general-inquiry calls: a single looping state
// that relays each utterance's generated reply and gathers the next one. Two
// consecutive timeouts end the call.
//
// The flow never calls the generation service itself; Event.Reply arrives
// already resolved.
type InquiryFlow struct{}

func (InquiryFlow) Start() State { return StateConversing }

// Build advances the inquiry state machine by one event.
func (InquiryFlow) Build(state State, ev Event) Turn {
	switch state {
	case StateConversing, StateLingering:
		switch ev.Kind {
		case EventAnswered:
			return Turn{Say: inquiryGreeting, Mode: InputSpeech, Next: StateConversing}

		case EventSpeech:
			// A real utterance resets the timeout streak.
			return Turn{
				Say:  ev.Reply + " " + inquiryFollowUp,
				Mode: InputSpeech,
				Next: StateConversing,
			}

		case EventTimeout:
			if state == StateLingering {
				return Turn{Say: inquiryGoodbye, Mode: InputNone, Next: StateTerminal, Outcome: OutcomeDone, Hangup: true}
			}
			return Turn{Say: inquiryNudge, Mode: InputSpeech, Next: StateLingering}
		}

		// Digits on an inquiry call are treated like silence.
		return Turn{Say: inquiryNudge, Mode: InputSpeech, Next: StateLingering}
	}

	return Turn{Mode: InputNone, Next: StateTerminal, Hangup: true}
}
