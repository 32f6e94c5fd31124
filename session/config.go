package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aayushCywarden/animagic-space/capture"
	"github.com/aayushCywarden/animagic-space/chatlog"
	"github.com/aayushCywarden/animagic-space/credstore"
	"github.com/aayushCywarden/animagic-space/responder"
)

// Greeting defaults.
const (
	DefaultGreetingText    = "Hello! I'm ANIMA, your AI assistant. How can I help you today?"
	DefaultGreetingDelayMS = 1000
)

// Config holds initialization parameters for the session controller and
// its subsystems. Each subsystem section delegates to that subsystem's
// config-driven constructor.
type Config struct {
	GreetingText    string           `json:"greeting_text,omitempty"`
	GreetingDelayMS int              `json:"greeting_delay_ms,omitempty"`
	Log             chatlog.Config   `json:"log"`
	Capture         capture.Config   `json:"capture"`
	Responder       responder.Config `json:"responder"`
	Credentials     credstore.Config `json:"credentials"`
}

// DefaultConfig returns a Config with sensible defaults for all subsystems.
func DefaultConfig() Config {
	return Config{
		GreetingText:    DefaultGreetingText,
		GreetingDelayMS: DefaultGreetingDelayMS,
		Log:             chatlog.DefaultConfig(),
		Capture:         capture.DefaultConfig(),
		Responder:       responder.DefaultConfig(),
		Credentials:     credstore.DefaultConfig(),
	}
}

// Merge applies non-zero values from source into c, delegating to each
// subsystem's Merge method.
func (c *Config) Merge(source *Config) {
	if source.GreetingText != "" {
		c.GreetingText = source.GreetingText
	}
	if source.GreetingDelayMS != 0 {
		c.GreetingDelayMS = source.GreetingDelayMS
	}
	c.Log.Merge(&source.Log)
	c.Capture.Merge(&source.Capture)
	c.Responder.Merge(&source.Responder)
	c.Credentials.Merge(&source.Credentials)
}

// LoadConfig reads a JSON config file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
