// Package planner turns onboarding answers into a structured daily
// plan by calling an OpenAI-compatible chat completion endpoint and
// extracting the JSON plan from the reply.
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fixyourlife/fixyourlife/internal/model"
)

const (
	defaultBaseURL = "https://openrouter.ai/api"
	defaultModel   = "deepseek/deepseek-r1-zero"
)

// ErrInvalidResponse means the model replied but no usable plan could
// be extracted from it.
var ErrInvalidResponse = errors.New("planner: invalid plan response")

const systemPrompt = `You are an AI life coach assistant. You help users improve their daily routines, habits, and productivity.

When asked to create a personalized plan, respond with a valid JSON object containing:
1. dailySchedule: An array of schedule items with time, task, and completed (boolean) fields
2. recoverySteps: An array of string steps to follow for improving life quality
3. motivationalMessage: A personalized motivational message

Format your response as a proper JSON object without markdown formatting, explanations or any other text.`

// Models wrap JSON in prose or code fences; grab the outermost object.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

type Client struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// GeneratePlan asks the model for a plan built from the onboarding
// answers. The returned plan is validated; on any extraction or
// validation failure the error wraps ErrInvalidResponse.
func (c *Client) GeneratePlan(ctx context.Context, inputs map[string]string) (model.PlanData, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return model.PlanData{}, fmt.Errorf("planner: missing API key")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	modelName := strings.TrimSpace(c.Model)
	if modelName == "" {
		modelName = defaultModel
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}

	reqBody := chatRequest{
		Model: modelName,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildPrompt(inputs)},
		},
		MaxTokens:   1500,
		Temperature: 0.7,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return model.PlanData{}, fmt.Errorf("marshal chat payload: %w", err)
	}

	url := baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return model.PlanData{}, fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return model.PlanData{}, fmt.Errorf("execute chat request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.PlanData{}, fmt.Errorf("read chat response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.PlanData{}, fmt.Errorf("chat request failed with status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return model.PlanData{}, fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return model.PlanData{}, fmt.Errorf("%w: empty completion", ErrInvalidResponse)
	}

	plan, err := ExtractPlan(parsed.Choices[0].Message.Content)
	if err != nil {
		log.Printf("planner: unusable completion: %.200s", parsed.Choices[0].Message.Content)
		return model.PlanData{}, err
	}
	return plan, nil
}

// BuildPrompt renders the user prompt from the onboarding answers.
// Missing answers are marked rather than omitted so the model sees a
// stable shape.
func BuildPrompt(inputs map[string]string) string {
	answer := func(key string) string {
		if v := strings.TrimSpace(inputs[key]); v != "" {
			return v
		}
		return "Not provided"
	}
	var b strings.Builder
	b.WriteString("Based on the following information about a person, create a detailed daily schedule and personalized recovery plan:\n\n")
	fmt.Fprintf(&b, "Daily Routine: %s\n", answer("routine"))
	fmt.Fprintf(&b, "Goals: %s\n", answer("goals"))
	fmt.Fprintf(&b, "Challenges: %s\n", answer("challenges"))
	fmt.Fprintf(&b, "Habits: %s\n", answer("habits"))
	b.WriteString(`
Response Format (JSON):
{
  "dailySchedule": [
    {"time": "HH:MM AM/PM", "task": "Task description", "completed": false}
  ],
  "recoverySteps": [
    "Step 1 description"
  ],
  "motivationalMessage": "A personalized motivational message"
}
`)
	return b.String()
}

// ExtractPlan pulls the JSON object out of a completion and decodes it
// into a validated plan.
func ExtractPlan(completion string) (model.PlanData, error) {
	raw := jsonObjectPattern.FindString(completion)
	if raw == "" {
		raw = completion
	}

	var plan model.PlanData
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return model.PlanData{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if plan.MotivationalMessage == "" {
		plan.MotivationalMessage = "Stay consistent with your plan!"
	}
	if err := plan.Validate(); err != nil {
		return model.PlanData{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return plan, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}
