package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"concept-explainer/config"
)

// GenerateRequest is the payload for Ollama's /api/generate endpoint.
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// GenerateResponse is the subset of Ollama's reply the service consumes.
type GenerateResponse struct {
	Response string `json:"response"`
}

// Client handles communication with a local Ollama instance
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a new Ollama client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.OllamaURL,
		model:   cfg.OllamaModel,
		httpClient: &http.Client{
			Timeout: cfg.OllamaTimeout,
		},
	}
}

// Generate sends the prompt to Ollama and returns the trimmed generated
// text. A single attempt is made; there are no retries. Failures are *Error
// values whose Kind callers can match on exhaustively.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", &Error{Kind: KindInternal, Message: "Internal server error",
			cause: fmt.Errorf("failed to marshal generate request: %w", err)}
	}

	url := c.baseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &Error{Kind: KindInternal, Message: "Internal server error",
			cause: fmt.Errorf("failed to create generate request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Kind: KindUpstream, Message: "Error communicating with Ollama",
			cause: fmt.Errorf("failed to read generator response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Error{Kind: KindUpstream, Message: "Error communicating with Ollama",
			cause: fmt.Errorf("generator returned status %d: %s", resp.StatusCode, string(body))}
	}

	var genResp GenerateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", &Error{Kind: KindUpstream, Message: "Error communicating with Ollama",
			cause: fmt.Errorf("malformed generator response: %w", err)}
	}

	explanation := strings.TrimSpace(genResp.Response)
	if explanation == "" {
		return "", &Error{Kind: KindUpstream, Message: "Received empty response from Ollama"}
	}

	return explanation, nil
}

// transportError classifies a failed round trip. Timeouts are checked before
// dial failures so a connect that hangs until the bound counts as a timeout.
func transportError(err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Kind: KindTimeout, Message: "Request to Ollama timed out", cause: err}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return &Error{Kind: KindUnavailable,
			Message: "Ollama service unavailable. Make sure Ollama is running on port 11434", cause: err}
	}

	return &Error{Kind: KindUpstream, Message: "Error communicating with Ollama", cause: err}
}
