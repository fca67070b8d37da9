package twilio

import (
	"encoding/xml"
	"fmt"
)

// TwiML is the declarative voice script Twilio executes verb by verb. Verbs
// run in document order; a Gather that times out falls through to the verb
// after it, which is how timeout routing works.
type TwiML struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []any
}

// Say reads text to the callee.
type Say struct {
	XMLName xml.Name `xml:"Say"`
	Text    string   `xml:",chardata"`
}

// Gather collects digits or speech and posts the result to Action.
type Gather struct {
	XMLName       xml.Name `xml:"Gather"`
	Input         string   `xml:"input,attr,omitempty"` // "dtmf" or "speech"
	NumDigits     int      `xml:"numDigits,attr,omitempty"`
	Timeout       int      `xml:"timeout,attr,omitempty"`
	SpeechTimeout string   `xml:"speechTimeout,attr,omitempty"`
	Action        string   `xml:"action,attr"`
	Method        string   `xml:"method,attr"`
	Say           *Say     `xml:"Say,omitempty"`
}

// Dial connects the call to another number.
type Dial struct {
	XMLName xml.Name `xml:"Dial"`
	Number  string   `xml:",chardata"`
}

// Redirect transfers TwiML control to another URL.
type Redirect struct {
	XMLName xml.Name `xml:"Redirect"`
	Method  string   `xml:"method,attr"`
	URL     string   `xml:",chardata"`
}

// Hangup ends the call.
type Hangup struct {
	XMLName xml.Name `xml:"Hangup"`
}

// Append adds a verb to the document.
func (t *TwiML) Append(verb any) {
	t.Verbs = append(t.Verbs, verb)
}

// Render serializes the document with the XML declaration Twilio expects.
func (t *TwiML) Render() (string, error) {
	body, err := xml.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("marshal twiml: %w", err)
	}

	return xml.Header + string(body), nil
}
