// Package openai provides a client for the chat-completions API used to
// phrase reminder scripts and free-form replies for voice calls.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.openai.com/v1"

// ErrGenerationUnavailable means the generation service failed or timed out.
// Callers recover locally by substituting a static script.
var ErrGenerationUnavailable = errors.New("generation service unavailable")

const reminderSystemPrompt = `You are calling to remind a patient about their upcoming dental appointment.
Be professional, friendly, and concise.
Identify yourself as calling from 'My Dentist' office, mention the patient's name,
state the appointment date and time, and ask them to confirm if they'll attend.
Keep the message brief and natural, as if you're having a phone conversation.`

const assistantSystemPrompt = `You are a helpful dental assistant for 'My Dentist' practice.
You help patients by answering their questions about dental procedures, office
policies, and appointment information. Be professional, friendly, and concise.
If you don't know an answer, politely say so and offer to connect them with a
human staff member. Always speak as if you're having a voice conversation.`

// Client represents an OpenAI client used to generate call scripts.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client // HTTP client used to make requests
}

// NewClient creates a new OpenAI Client instance. The timeout bounds every
// generation request.
func NewClient(apiKey, model, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// completionRequest represents the payload for the chat-completions API.
type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"` // keep responses concise for voice
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// ReminderScript generates the reminder text read at the start of a call.
func (c *Client) ReminderScript(ctx context.Context, patientName string, appointmentAt time.Time, customMessage string) (string, error) {
	prompt := fmt.Sprintf(
		"You're calling to remind %s about their dental appointment on %s.",
		patientName, appointmentAt.Format("Monday, January 2 at 3:04 PM"),
	)
	if customMessage != "" {
		prompt += "\nAdditional information: " + customMessage
	}

	return c.complete(ctx, reminderSystemPrompt, prompt)
}

// FreeformReply generates a reply to a caller's transcribed utterance.
func (c *Client) FreeformReply(ctx context.Context, utterance string) (string, error) {
	return c.complete(ctx, assistantSystemPrompt, utterance)
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	reqBody := completionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.7,
		MaxTokens:   200,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: openai API error: %s", ErrGenerationUnavailable, resp.Status)
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrGenerationUnavailable, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrGenerationUnavailable)
	}

	return completion.Choices[0].Message.Content, nil
}
