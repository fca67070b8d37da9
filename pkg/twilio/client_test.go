package twilio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceCall(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotURL string
	var gotEvents []string
	var gotUser, gotPass string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()

		require.NoError(t, r.ParseForm())
		gotTo = r.PostForm.Get("To")
		gotFrom = r.PostForm.Get("From")
		gotURL = r.PostForm.Get("Url")
		gotEvents = r.PostForm["StatusCallbackEvent"]

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid": "CA1234567890"}`))
	}))
	defer srv.Close()

	c := NewClient("ACtest", "secret", "+15550100000", time.Second)
	c.SetAPIBase(srv.URL)

	sid, err := c.PlaceCall(context.Background(), "+15551234567", "http://example.com/answer", "http://example.com/status")
	assert.NoError(t, err)
	assert.Equal(t, "CA1234567890", sid)

	assert.Equal(t, "/Accounts/ACtest/Calls.json", gotPath)
	assert.Equal(t, "ACtest", gotUser)
	assert.Equal(t, "secret", gotPass)
	assert.Equal(t, "+15551234567", gotTo)
	assert.Equal(t, "+15550100000", gotFrom)
	assert.Equal(t, "http://example.com/answer", gotURL)
	assert.Equal(t, []string{"initiated", "ringing", "answered", "completed"}, gotEvents)
}

func TestPlaceCall_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("ACtest", "wrong", "+15550100000", time.Second)
	c.SetAPIBase(srv.URL)

	_, err := c.PlaceCall(context.Background(), "+15551234567", "http://example.com/answer", "http://example.com/status")
	assert.Error(t, err)
}

func TestPlaceCall_MissingSID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient("ACtest", "secret", "+15550100000", time.Second)
	c.SetAPIBase(srv.URL)

	_, err := c.PlaceCall(context.Background(), "+15551234567", "http://example.com/answer", "http://example.com/status")
	assert.Error(t, err)
}

func TestTwiMLRender(t *testing.T) {
	doc := &TwiML{}
	doc.Append(Gather{
		Input:     "dtmf",
		NumDigits: 1,
		Timeout:   5,
		Action:    "http://example.com/answer",
		Method:    "POST",
		Say:       &Say{Text: "Press 1 to confirm."},
	})
	doc.Append(Redirect{Method: "POST", URL: "http://example.com/answer?timeout=1"})

	out, err := doc.Render()
	assert.NoError(t, err)

	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `<Gather input="dtmf" numDigits="1" timeout="5" action="http://example.com/answer" method="POST">`)
	assert.Contains(t, out, "<Say>Press 1 to confirm.</Say>")
	assert.Contains(t, out, "<Redirect method=\"POST\">http://example.com/answer?timeout=1</Redirect>")
	assert.Contains(t, out, "</Response>")
}

func TestTwiMLRender_HangupAndDial(t *testing.T) {
	doc := &TwiML{}
	doc.Append(Say{Text: "Connecting you now."})
	doc.Append(Dial{Number: "+15550100001"})
	doc.Append(Hangup{})

	out, err := doc.Render()
	assert.NoError(t, err)

	assert.Contains(t, out, "<Say>Connecting you now.</Say>")
	assert.Contains(t, out, "<Dial>+15550100001</Dial>")
	assert.Contains(t, out, "<Hangup></Hangup>")
}
