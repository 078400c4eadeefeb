package config

import "time"

// Config holds runtime settings for the StoryKeeper CLI.
//
// Fields:
//   - APIBaseURL: base URL of the story API, including the version prefix.
//   - PushEndpointBase: prefix under which subscription endpoints are minted.
//   - DataDir: directory for the embedded database and the session file;
//     empty means a per-user default.
//   - OnlineCheckInterval: how often the client probes API reachability.
type Config struct {
	APIBaseURL          string
	PushEndpointBase    string
	DataDir             string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://story-api.dicoding.dev/v1"
	c.PushEndpointBase = "https://fcm.googleapis.com/fcm/send"
	c.DataDir = ""
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
