// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration for one rank-watch run.
type Config struct {
	// TeamID is the tracked team's ranking-source id.
	TeamID int64 `koanf:"team_id"`

	// Country selects the per-country leaderboard. When empty the
	// country is resolved from the tracked team's info.
	Country string `koanf:"country"`

	// WebhookURL is the notification delivery target.
	WebhookURL string `koanf:"webhook_url"`

	// WebhookPrefix is the required WebhookURL prefix; delivery
	// targets outside it are rejected at load time.
	WebhookPrefix string `koanf:"webhook_prefix"`

	// WebhookName and WebhookAvatar override the masquerade identity.
	WebhookName   string `koanf:"webhook_name"`
	WebhookAvatar string `koanf:"webhook_avatar"`

	// APIBaseURL overrides the ranking-source base URL.
	APIBaseURL string `koanf:"api_base_url"`

	// SnapshotPath locates the persisted previous snapshot.
	SnapshotPath string `koanf:"snapshot_path"`

	// HTTPTimeoutMS bounds each outbound HTTP request.
	HTTPTimeoutMS int `koanf:"http_timeout_ms"`

	// UseLinks and IncludePoints control message formatting.
	UseLinks      bool `koanf:"use_links"`
	IncludePoints bool `koanf:"include_points"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsFile, when set, receives run metrics in Prometheus text
	// format for the node_exporter textfile collector.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		TeamID:        109611,
		WebhookPrefix: "https://stoat.chat/api/webhooks/",
		SnapshotPath:  "leaderboard.json",
		HTTPTimeoutMS: 30_000,
		UseLinks:      true,
		IncludePoints: false,
		LogLevel:      "info",
	}
}
