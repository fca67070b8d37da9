package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmFlow_ConfirmOnFirstPrompt(t *testing.T) {
	f := ConfirmFlow{Script: "You have an appointment tomorrow at 3 PM."}

	turn := f.Build(f.Start(), Event{Kind: EventAnswered})
	assert.Contains(t, turn.Say, "You have an appointment tomorrow at 3 PM.")
	assert.Contains(t, turn.Say, "Press 1 to confirm")
	assert.Equal(t, InputDigits, turn.Mode)
	assert.Equal(t, StateAwaiting, turn.Next)
	assert.Empty(t, turn.Outcome)

	turn = f.Build(turn.Next, Event{Kind: EventDigit, Digit: "1"})
	assert.Equal(t, OutcomeConfirmed, turn.Outcome)
	assert.Equal(t, StateTerminal, turn.Next)
	assert.True(t, turn.Hangup)
	assert.False(t, turn.Transfer)
}

func TestConfirmFlow_TransferOnFirstPrompt(t *testing.T) {
	f := ConfirmFlow{Script: "Reminder script."}

	turn := f.Build(f.Start(), Event{Kind: EventAnswered})
	turn = f.Build(turn.Next, Event{Kind: EventDigit, Digit: "2"})

	assert.Equal(t, OutcomeTransfer, turn.Outcome)
	assert.Equal(t, StateTerminal, turn.Next)
	assert.True(t, turn.Transfer)
	assert.False(t, turn.Hangup)
}

func TestConfirmFlow_RepeatsPromptExactlyOnce(t *testing.T) {
	f := ConfirmFlow{Script: "Reminder script."}

	turn := f.Build(f.Start(), Event{Kind: EventAnswered})

	// First miss: the prompt is repeated, the call stays open.
	turn = f.Build(turn.Next, Event{Kind: EventTimeout})
	assert.Contains(t, turn.Say, "Let me repeat")
	assert.Contains(t, turn.Say, "Press 1 to confirm")
	assert.Equal(t, InputDigits, turn.Mode)
	assert.Equal(t, StateRepeating, turn.Next)
	assert.Empty(t, turn.Outcome)

	// Second miss ends the call without an answer.
	turn = f.Build(turn.Next, Event{Kind: EventTimeout})
	assert.Equal(t, OutcomeNoResponse, turn.Outcome)
	assert.Equal(t, StateTerminal, turn.Next)
	assert.True(t, turn.Hangup)
}

func TestConfirmFlow_UnrecognizedDigitTreatedAsMiss(t *testing.T) {
	f := ConfirmFlow{Script: "Reminder script."}

	turn := f.Build(f.Start(), Event{Kind: EventAnswered})

	turn = f.Build(turn.Next, Event{Kind: EventDigit, Digit: "9"})
	assert.Equal(t, StateRepeating, turn.Next)
	assert.Empty(t, turn.Outcome)

	// A valid choice on the repeat still resolves the call.
	turn = f.Build(turn.Next, Event{Kind: EventDigit, Digit: "1"})
	assert.Equal(t, OutcomeConfirmed, turn.Outcome)
}

func TestConfirmFlow_TerminalIsSink(t *testing.T) {
	f := ConfirmFlow{Script: "Reminder script."}

	turn := f.Build(StateTerminal, Event{Kind: EventDigit, Digit: "1"})
	assert.Equal(t, StateTerminal, turn.Next)
	assert.Empty(t, turn.Outcome)
	assert.True(t, turn.Hangup)
}

func TestInquiryFlow_GreetsAndLoops(t *testing.T) {
	f := InquiryFlow{}

	turn := f.Build(f.Start(), Event{Kind: EventAnswered})
	assert.Contains(t, turn.Say, "How can I help you")
	assert.Equal(t, InputSpeech, turn.Mode)
	assert.Equal(t, StateConversing, turn.Next)

	turn = f.Build(turn.Next, Event{Kind: EventSpeech, Utterance: "What are your hours?", Reply: "We are open 9 to 5."})
	assert.Contains(t, turn.Say, "We are open 9 to 5.")
	assert.Contains(t, turn.Say, "anything else")
	assert.Equal(t, InputSpeech, turn.Mode)
	assert.Equal(t, StateConversing, turn.Next)
	assert.Empty(t, turn.Outcome)
}

func TestInquiryFlow_TwoTimeoutsEndCall(t *testing.T) {
	f := InquiryFlow{}

	turn := f.Build(f.Start(), Event{Kind: EventAnswered})

	turn = f.Build(turn.Next, Event{Kind: EventTimeout})
	assert.Contains(t, turn.Say, "still there")
	assert.Equal(t, StateLingering, turn.Next)
	assert.Empty(t, turn.Outcome)

	turn = f.Build(turn.Next, Event{Kind: EventTimeout})
	assert.Contains(t, turn.Say, "Goodbye")
	assert.Equal(t, OutcomeDone, turn.Outcome)
	assert.Equal(t, StateTerminal, turn.Next)
	assert.True(t, turn.Hangup)
}

func TestInquiryFlow_SpeechResetsTimeoutStreak(t *testing.T) {
	f := InquiryFlow{}

	turn := f.Build(f.Start(), Event{Kind: EventAnswered})
	turn = f.Build(turn.Next, Event{Kind: EventTimeout})
	assert.Equal(t, StateLingering, turn.Next)

	// Speaking after one timeout puts the caller back into the loop.
	turn = f.Build(turn.Next, Event{Kind: EventSpeech, Utterance: "Hello?", Reply: "Hello, how can I help?"})
	assert.Equal(t, StateConversing, turn.Next)

	turn = f.Build(turn.Next, Event{Kind: EventTimeout})
	assert.Equal(t, StateLingering, turn.Next)
	assert.Empty(t, turn.Outcome)
}

func TestInquiryFlow_DigitsTreatedAsSilence(t *testing.T) {
	f := InquiryFlow{}

	turn := f.Build(f.Start(), Event{Kind: EventDigit, Digit: "5"})
	assert.Equal(t, StateLingering, turn.Next)
	assert.Equal(t, InputSpeech, turn.Mode)
}
