// Package ai implements the diary annotator against the Anthropic messages
// API. The annotator is an optional collaborator: the service runs fine
// without credentials, diaries simply stay unannotated.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"construtora_obraprima/internal/domain/entities"
	"construtora_obraprima/internal/usecase/interfaces"

	"golang.org/x/time/rate"
)

const (
	defaultAPIURL  = "https://api.anthropic.com/v1/messages"
	defaultModel   = "claude-3-haiku-20240307"
	apiVersion     = "2023-06-01"
	maxTokens      = 1024
	requestTimeout = 30 * time.Second

	// Conservative client-side ceiling to stay clear of API quotas.
	requestsPerSecond = 2
	burstSize         = 4
)

var ErrMissingAnthropicAPIKey = errors.New("missing ANTHROPIC_API_KEY")

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// annotation is the JSON shape we ask the model to produce.
type annotation struct {
	Summary  string `json:"summary"`
	Insights string `json:"insights"`
}

// AnthropicAnnotator summarizes work diary entries through the Anthropic API.
type AnthropicAnnotator struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	limiter *rate.Limiter
}

var _ interfaces.IDiaryAnnotator = (*AnthropicAnnotator)(nil)

func NewAnthropicAnnotator(apiKey, model string) (*AnthropicAnnotator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAnthropicAPIKey
	}
	if model == "" {
		model = defaultModel
	}
	return &AnthropicAnnotator{
		apiKey:  apiKey,
		baseURL: defaultAPIURL,
		model:   model,
		client:  &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}, nil
}

func (a *AnthropicAnnotator) Annotate(ctx context.Context, d entities.WorkDiary) (string, string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return "", "", err
	}

	body, err := json.Marshal(anthropicRequest{
		Model:     a.model,
		MaxTokens: maxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: buildPrompt(d)},
		},
	})
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", err
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", "", fmt.Errorf("decoding annotator response: %w", err)
	}
	if parsed.Error != nil {
		return "", "", fmt.Errorf("annotator api error: %s: %s", parsed.Error.Type, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("annotator api status %d", resp.StatusCode)
	}
	if len(parsed.Content) == 0 {
		return "", "", errors.New("annotator returned empty content")
	}

	summary, insights := parseAnnotation(parsed.Content[0].Text)
	log.Printf("[diary][annotator] annotated diary_id=%s summary_len=%d", d.ID, len(summary))
	return summary, insights, nil
}

func buildPrompt(d entities.WorkDiary) string {
	var sb strings.Builder
	sb.WriteString("Você é um engenheiro de obras. Resuma o diário de obra abaixo e aponte riscos ou pendências.\n")
	sb.WriteString("Responda somente com JSON no formato {\"summary\": \"...\", \"insights\": \"...\"}.\n\n")
	fmt.Fprintf(&sb, "Data: %s\n", d.Date.Format("2006-01-02"))
	fmt.Fprintf(&sb, "Atividades: %s\n", d.Activities)
	if d.Materials != "" {
		fmt.Fprintf(&sb, "Materiais: %s\n", d.Materials)
	}
	if d.Equipment != "" {
		fmt.Fprintf(&sb, "Equipamentos: %s\n", d.Equipment)
	}
	return sb.String()
}

// parseAnnotation tolerates models that wrap the JSON in prose: it falls back
// to using the whole text as the summary.
func parseAnnotation(text string) (summary, insights string) {
	text = strings.TrimSpace(text)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		var ann annotation
		if err := json.Unmarshal([]byte(text[start:end+1]), &ann); err == nil && ann.Summary != "" {
			return ann.Summary, ann.Insights
		}
	}
	return text, ""
}
