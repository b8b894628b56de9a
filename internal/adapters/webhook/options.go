package webhook

import (
	"net/http"
	"time"
)

// Option applies a configuration option to the HTTPNotifier.
type Option func(*HTTPNotifier)

// WithName sets the masquerade sender name.
func WithName(name string) Option {
	return func(n *HTTPNotifier) {
		if name != "" {
			n.name = name
		}
	}
}

// WithAvatar sets the masquerade avatar URL.
func WithAvatar(avatar string) Option {
	return func(n *HTTPNotifier) {
		if avatar != "" {
			n.avatar = avatar
		}
	}
}

// WithTimeout bounds each delivery request.
func WithTimeout(timeout time.Duration) Option {
	return func(n *HTTPNotifier) {
		if timeout > 0 {
			n.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(n *HTTPNotifier) {
		if client != nil {
			n.httpClient = client
		}
	}
}
