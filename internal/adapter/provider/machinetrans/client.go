// Package machinetrans adapts a LibreTranslate-compatible HTTP machine
// translation API to the translation.Backend interface.
package machinetrans

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/manesha63/electNepal-sub000/internal/translation"
)

// Client calls an external MT engine over HTTP.
type Client struct {
	engine     string
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client. engine names the remote service for cache keys and
// logs; baseURL points at the API root (the /translate path is appended).
func New(engine, baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		engine:     engine,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "machinetrans", "engine", engine),
	}
}

// Engine implements translation.Backend.
func (c *Client) Engine() string { return c.engine }

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// Translate implements translation.Backend. Failures are classified so the
// orchestrator knows whether a retry can help: timeouts, network errors, 429
// and 5xx are transient; other statuses and malformed responses are permanent.
func (c *Client) Translate(ctx context.Context, text, src, dst string) (string, error) {
	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Source: src,
		Target: dst,
		Format: "text",
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", &translation.BackendError{Op: "encode request", Err: err}
	}

	c.log.DebugContext(ctx, "translate request", slog.Int("chars", len(text)))

	resp, err := c.doWithRetry(ctx, payload)
	if err != nil {
		return "", &translation.BackendError{Op: "http request", Transient: true, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &translation.BackendError{Op: "read response", Transient: true, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", &translation.BackendError{
			Op:        "translate",
			Transient: true,
			Err:       fmt.Errorf("status %d: %s", resp.StatusCode, firstLine(body)),
		}
	default:
		return "", &translation.BackendError{
			Op:  "translate",
			Err: fmt.Errorf("status %d: %s", resp.StatusCode, firstLine(body)),
		}
	}

	var decoded translateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", &translation.BackendError{Op: "decode response", Err: err}
	}
	if decoded.Error != "" {
		return "", &translation.BackendError{Op: "translate", Err: fmt.Errorf("engine error: %s", decoded.Error)}
	}

	return decoded.TranslatedText, nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. The body is rebuilt per attempt since POST bodies are consumed.
func (c *Client) doWithRetry(ctx context.Context, payload []byte) (*http.Response, error) {
	resp, err := c.do(ctx, payload)

	shouldRetry := err != nil || resp.StatusCode >= 500
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "translate retry", slog.String("reason", reason))

	time.Sleep(500 * time.Millisecond)

	return c.do(ctx, payload)
}

func (c *Client) do(ctx context.Context, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

func firstLine(body []byte) string {
	s := strings.TrimSpace(string(body))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
