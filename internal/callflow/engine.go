// Package callflow binds the dialog script builder to the webhook stream: it
// keeps the per-call conversation state, selects which flow a call runs, and
// renders each turn as TwiML for the provider.
package callflow

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mahbubulalom/voice-reminder/internal/dialog"
	"github.com/mahbubulalom/voice-reminder/internal/model"
	"github.com/mahbubulalom/voice-reminder/internal/repository/reminder"
	remsvc "github.com/mahbubulalom/voice-reminder/internal/service/reminder"
	"github.com/mahbubulalom/voice-reminder/pkg/twilio"
)

const (
	apologySay      = "I'm sorry, there was an error processing your request. Please try again later."
	transferFailSay = "The call could not be completed. Please try calling our main office number directly. Goodbye!"

	gatherTimeoutSeconds = 5
)

type reminderLookup interface {
	GetReminderByCallRef(ctx context.Context, callRef string) (model.Reminder, error)
}

// scriptSource returns the reminder script cached at call placement.
type scriptSource interface {
	ScriptByCallRef(ctx context.Context, strategy retry.Strategy, callRef string) (string, error)
}

// replyGenerator produces free-form replies for general-inquiry calls.
type replyGenerator interface {
	FreeformReply(ctx context.Context, utterance string) (string, error)
}

// outcomeRecorder receives the in-call outcome when a flow reaches Terminal.
type outcomeRecorder interface {
	RecordOutcome(ctx context.Context, strategy retry.Strategy, callRef string, outcome dialog.Outcome)
}

// callState is the ephemeral per-call conversation state. It lives only for
// the duration of one call and is keyed by the provider call reference.
type callState struct {
	mu    sync.Mutex
	flow  dialog.Flow
	state dialog.State
}

// Engine advances one dialog flow per active call.
type Engine struct {
	mu    sync.Mutex
	calls map[string]*callState

	repo      reminderLookup
	scripts   scriptSource
	generator replyGenerator
	recorder  outcomeRecorder

	answerURL   string // gather action and timeout redirect target
	staffNumber string
	genTimeout  time.Duration
}

// NewEngine creates a new Engine instance.
func NewEngine(
	repo reminderLookup,
	scripts scriptSource,
	generator replyGenerator,
	recorder outcomeRecorder,
	answerURL, staffNumber string,
	genTimeout time.Duration,
) *Engine {
	return &Engine{
		calls:       make(map[string]*callState),
		repo:        repo,
		scripts:     scripts,
		generator:   generator,
		recorder:    recorder,
		answerURL:   answerURL,
		staffNumber: staffNumber,
		genTimeout:  genTimeout,
	}
}

// HandleEvent advances the call's flow by one webhook event and returns the
// TwiML to render. It never fails toward the provider: any internal error
// produces the apology-and-hangup script.
func (e *Engine) HandleEvent(ctx context.Context, strategy retry.Strategy, ev model.CallEvent) string {
	cs := e.lookup(ev.CallRef)
	if cs == nil {
		cs = e.admit(ctx, strategy, ev.CallRef)
	}

	dev, ok := e.translate(ctx, ev, cs)
	if !ok {
		e.drop(ev.CallRef)
		return apologyTwiML()
	}

	cs.mu.Lock()
	turn := cs.flow.Build(cs.state, dev)
	cs.state = turn.Next
	cs.mu.Unlock()

	if turn.Next == dialog.StateTerminal {
		if turn.Outcome != dialog.OutcomeNone {
			e.recorder.RecordOutcome(ctx, strategy, ev.CallRef, turn.Outcome)
		}
		e.drop(ev.CallRef)
	}

	return e.render(turn)
}

// lookup returns the existing state for a call, if any.
func (e *Engine) lookup(callRef string) *callState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls[callRef]
}

// admit decides which flow a new call runs. A reference matching a known
// reminder gets the confirmation flow with that reminder's script; anything
// else is treated as a general-inquiry call.
func (e *Engine) admit(ctx context.Context, strategy retry.Strategy, callRef string) *callState {
	var flow dialog.Flow = dialog.InquiryFlow{}

	rem, err := e.repo.GetReminderByCallRef(ctx, callRef)
	switch {
	case err == nil:
		script, scriptErr := e.scripts.ScriptByCallRef(ctx, strategy, callRef)
		if scriptErr != nil || script == "" {
			zlog.Logger.Warn().Str("call_ref", callRef).Msg("no cached script for call, using fallback")
			script = remsvc.FallbackScript(rem)
		}
		flow = dialog.ConfirmFlow{Script: script}

	case errors.Is(err, reminder.ErrReminderNotFound):
		zlog.Logger.Info().Str("call_ref", callRef).Msg("unmatched call reference, running inquiry flow")

	default:
		zlog.Logger.Error().Err(err).Str("call_ref", callRef).Msg("failed to look up reminder for call, running inquiry flow")
	}

	cs := &callState{flow: flow, state: flow.Start()}

	e.mu.Lock()
	defer e.mu.Unlock()
	if existing, ok := e.calls[callRef]; ok {
		// Another webhook for the same call admitted it first.
		return existing
	}
	e.calls[callRef] = cs

	return cs
}

func (e *Engine) drop(callRef string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.calls, callRef)
}

// translate maps a webhook event onto a dialog event, resolving the free-form
// reply for inquiry speech before the flow advances. Returns ok=false when
// reply generation is unavailable; the call then gets the apology script.
func (e *Engine) translate(ctx context.Context, ev model.CallEvent, cs *callState) (dialog.Event, bool) {
	switch ev.Kind {
	case model.EventDigits:
		return dialog.Event{Kind: dialog.EventDigit, Digit: ev.Digits}, true

	case model.EventSpeech:
		dev := dialog.Event{Kind: dialog.EventSpeech, Utterance: ev.Utterance}

		if _, confirm := cs.flow.(dialog.ConfirmFlow); confirm {
			// The confirmation flow gathers digits only; stray speech
			// advances it like an unrecognized input.
			return dev, true
		}

		genCtx, cancel := context.WithTimeout(ctx, e.genTimeout)
		defer cancel()

		reply, err := e.generator.FreeformReply(genCtx, ev.Utterance)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("call_ref", ev.CallRef).Msg("reply generation unavailable")
			return dialog.Event{}, false
		}
		dev.Reply = reply

		return dev, true

	case model.EventTimeout:
		return dialog.Event{Kind: dialog.EventTimeout}, true
	}

	// First contact for this call: answered, or the initial TwiML fetch.
	return dialog.Event{Kind: dialog.EventAnswered}, true
}

// render maps one dialog turn onto a TwiML document. Prompts that expect
// input go inside the Gather so digits pressed mid-prompt are captured; the
// Redirect after the Gather is the timeout path back into this engine.
func (e *Engine) render(turn dialog.Turn) string {
	doc := &twilio.TwiML{}

	switch turn.Mode {
	case dialog.InputDigits:
		doc.Append(twilio.Gather{
			Input:     "dtmf",
			NumDigits: 1,
			Timeout:   gatherTimeoutSeconds,
			Action:    e.answerURL,
			Method:    "POST",
			Say:       &twilio.Say{Text: turn.Say},
		})
		doc.Append(twilio.Redirect{Method: "POST", URL: e.answerURL + "?timeout=1"})

	case dialog.InputSpeech:
		doc.Append(twilio.Gather{
			Input:         "speech",
			SpeechTimeout: "auto",
			Action:        e.answerURL,
			Method:        "POST",
			Say:           &twilio.Say{Text: turn.Say},
		})
		doc.Append(twilio.Redirect{Method: "POST", URL: e.answerURL + "?timeout=1"})

	default:
		if turn.Say != "" {
			doc.Append(twilio.Say{Text: turn.Say})
		}
		if turn.Transfer {
			doc.Append(twilio.Dial{Number: e.staffNumber})
			doc.Append(twilio.Say{Text: transferFailSay})
		}
		if turn.Hangup || turn.Transfer {
			doc.Append(twilio.Hangup{})
		}
	}

	out, err := doc.Render()
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to render twiml")
		return apologyTwiML()
	}

	return out
}

func apologyTwiML() string {
	doc := &twilio.TwiML{}
	doc.Append(twilio.Say{Text: apologySay})
	doc.Append(twilio.Hangup{})

	out, err := doc.Render()
	if err != nil {
		// Say and Hangup cannot fail to marshal; keep the provider happy anyway.
		return "<?xml version=\"1.0\" encoding=\"UTF-8\"?><Response><Hangup/></Response>"
	}

	return out
}
