// Package function invokes the remote analysis function that turns a prompt into an
// analysis payload.
package function

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultName    = "analyze-prompt"
	defaultMessage = "Failed to analyze prompt"
)

// Error is a failure reported by the function or its gateway.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	name    string
	apiKey  string
	client  *http.Client
}

// NewClient creates a client for the function name hosted under baseURL
// (for example https://<project>.supabase.co).
func NewClient(baseURL, name, apiKey string, timeout time.Duration) *Client {
	if name == "" {
		name = DefaultName
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		name:    name,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// URL returns the invocation endpoint.
func (c *Client) URL() string {
	return fmt.Sprintf("%s/functions/v1/%s", c.baseURL, c.name)
}

// Invoke sends {"prompt": prompt} and returns the raw response body.
func (c *Client) Invoke(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{StatusCode: resp.StatusCode, Message: errorMessage(respBytes)}
	}
	return string(respBytes), nil
}

func errorMessage(body []byte) string {
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if json.Unmarshal(body, &e) == nil {
		for _, m := range []string{e.Error, e.Message, e.Msg} {
			if m != "" {
				return m
			}
		}
	}
	return defaultMessage
}
