package voice

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/mahbubulalom/voice-reminder/internal/config"
	"github.com/mahbubulalom/voice-reminder/internal/metrics"
	mocks "github.com/mahbubulalom/voice-reminder/internal/mocks/api/handlers/voice"
	"github.com/mahbubulalom/voice-reminder/internal/model"
)

var testMetrics = metrics.New()

func setupHandler(t *testing.T) (*Handler, *mocks.MockcallEngine, *mocks.MockstatusReconciler, *config.Config) {
	ctrl := gomock.NewController(t)
	engineMock := mocks.NewMockcallEngine(ctrl)
	reconcilerMock := mocks.NewMockstatusReconciler(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{}}
	handler := NewHandler(engineMock, reconcilerMock, testMetrics, cfg)
	return handler, engineMock, reconcilerMock, cfg
}

func postForm(target string, form url.Values) (*httptest.ResponseRecorder, *gin.Context) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return w, c
}

func TestHandler_Answer_InitialFetch(t *testing.T) {
	handler, engineMock, _, cfg := setupHandler(t)

	form := url.Values{"CallSid": {"CA123"}, "From": {"+15551234567"}}
	w, c := postForm("/webhooks/voice/answer", form)

	engineMock.EXPECT().
		HandleEvent(gomock.Any(), cfg.Retry, model.CallEvent{CallRef: "CA123", Kind: model.EventAnswered, From: "+15551234567"}).
		Return("<Response></Response>")

	handler.Answer(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<Response>")
}

func TestHandler_Answer_Digits(t *testing.T) {
	handler, engineMock, _, cfg := setupHandler(t)

	form := url.Values{"CallSid": {"CA123"}, "Digits": {"1"}}
	w, c := postForm("/webhooks/voice/answer", form)

	engineMock.EXPECT().
		HandleEvent(gomock.Any(), cfg.Retry, model.CallEvent{CallRef: "CA123", Kind: model.EventDigits, Digits: "1"}).
		Return("<Response></Response>")

	handler.Answer(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Answer_SpeechResult(t *testing.T) {
	handler, engineMock, _, cfg := setupHandler(t)

	form := url.Values{"CallSid": {"CA123"}, "SpeechResult": {"what are your hours"}}
	w, c := postForm("/webhooks/voice/inbound", form)

	engineMock.EXPECT().
		HandleEvent(gomock.Any(), cfg.Retry, model.CallEvent{CallRef: "CA123", Kind: model.EventSpeech, Utterance: "what are your hours"}).
		Return("<Response></Response>")

	handler.Inbound(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Answer_Timeout(t *testing.T) {
	handler, engineMock, _, cfg := setupHandler(t)

	form := url.Values{"CallSid": {"CA123"}}
	w, c := postForm("/webhooks/voice/answer?timeout=1", form)

	engineMock.EXPECT().
		HandleEvent(gomock.Any(), cfg.Retry, model.CallEvent{CallRef: "CA123", Kind: model.EventTimeout}).
		Return("<Response></Response>")

	handler.Answer(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Answer_MissingCallSid(t *testing.T) {
	handler, _, _, _ := setupHandler(t)

	w, c := postForm("/webhooks/voice/answer", url.Values{})

	handler.Answer(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Status_Completed(t *testing.T) {
	handler, _, reconcilerMock, cfg := setupHandler(t)

	form := url.Values{"CallSid": {"CA123"}, "CallStatus": {"completed"}}
	w, c := postForm("/webhooks/voice/status", form)

	reconcilerMock.EXPECT().
		Reconcile(gomock.Any(), cfg.Retry, "CA123", model.EventCompleted)

	handler.Status(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Status_NoAnswer(t *testing.T) {
	handler, _, reconcilerMock, cfg := setupHandler(t)

	form := url.Values{"CallSid": {"CA123"}, "CallStatus": {"no-answer"}}
	w, c := postForm("/webhooks/voice/status", form)

	reconcilerMock.EXPECT().
		Reconcile(gomock.Any(), cfg.Retry, "CA123", model.EventNoAnswer)

	handler.Status(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Status_CanceledMapsToFailed(t *testing.T) {
	handler, _, reconcilerMock, cfg := setupHandler(t)

	form := url.Values{"CallSid": {"CA123"}, "CallStatus": {"canceled"}}
	w, c := postForm("/webhooks/voice/status", form)

	reconcilerMock.EXPECT().
		Reconcile(gomock.Any(), cfg.Retry, "CA123", model.EventFailed)

	handler.Status(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Status_MissingCallSid(t *testing.T) {
	handler, _, _, _ := setupHandler(t)

	w, c := postForm("/webhooks/voice/status", url.Values{})

	handler.Status(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
