// Package webhook delivers notification messages to a chat webhook.
package webhook

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// Default notifier configuration constants.
const (
	defaultTimeout = 30 * time.Second
	defaultName    = "CTFtime-vakta"
	defaultAvatar  = "https://ctftime.org/static/images/ctftime-logo-avatar.png"
)

// Notifier delivers one message per run.
type Notifier interface {
	// Send posts a message. Returns ErrNotify on delivery failure;
	// callers treat that as non-fatal.
	Send(ctx context.Context, message string) error
}

// masquerade is the sender identity shown in the channel.
type masquerade struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// payload is the webhook request body.
type payload struct {
	Masquerade masquerade `json:"masquerade"`
	Content    string     `json:"content"`
}

// HTTPNotifier implements Notifier against a Stoat-style webhook
// endpoint.
type HTTPNotifier struct {
	url        string
	name       string
	avatar     string
	httpClient *http.Client
}

// New constructs an HTTPNotifier for the given webhook URL.
func New(url string, opts ...Option) *HTTPNotifier {
	n := &HTTPNotifier{
		url:        url,
		name:       defaultName,
		avatar:     defaultAvatar,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Send posts the message with the configured masquerade identity.
func (n *HTTPNotifier) Send(ctx context.Context, message string) error {
	body, err := json.Marshal(payload{
		Masquerade: masquerade{Name: n.name, Avatar: n.avatar},
		Content:    message,
	})
	if err != nil {
		return fmt.Errorf("%w: encode payload: %v", ErrNotify, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrNotify, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotify, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: status %d", ErrNotify, resp.StatusCode)
	}
	return nil
}
