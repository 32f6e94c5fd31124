package responder

import "fmt"

// Source names accepted by Config.
const (
	SourceCanned = "canned"
	SourceOpenAI = "openai"
)

// DefaultLatencyMS is the simulated think time before a reply lands.
const DefaultLatencyMS = 1500

// OpenAIConfig parameterizes the OpenAI-compatible source.
type OpenAIConfig struct {
	BaseURL        string `json:"base_url,omitempty"`
	APIKey         string `json:"api_key,omitempty"`
	Model          string `json:"model,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// Config selects and parameterizes a reply source.
type Config struct {
	Source    string       `json:"source,omitempty"` // "canned" or "openai"
	LatencyMS int          `json:"latency_ms,omitempty"`
	Seed      int64        `json:"seed,omitempty"`    // canned source only; 0 means time-based
	Catalog   []string     `json:"catalog,omitempty"` // canned source only; empty means stock replies
	OpenAI    OpenAIConfig `json:"openai,omitempty"`
}

// DefaultConfig returns the default responder configuration: canned
// replies with the stock catalog.
func DefaultConfig() Config {
	return Config{
		Source:    SourceCanned,
		LatencyMS: DefaultLatencyMS,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Source != "" {
		c.Source = source.Source
	}
	if source.LatencyMS != 0 {
		c.LatencyMS = source.LatencyMS
	}
	if source.Seed != 0 {
		c.Seed = source.Seed
	}
	if len(source.Catalog) != 0 {
		c.Catalog = source.Catalog
	}
	if source.OpenAI.BaseURL != "" {
		c.OpenAI.BaseURL = source.OpenAI.BaseURL
	}
	if source.OpenAI.APIKey != "" {
		c.OpenAI.APIKey = source.OpenAI.APIKey
	}
	if source.OpenAI.Model != "" {
		c.OpenAI.Model = source.OpenAI.Model
	}
	if source.OpenAI.TimeoutSeconds != 0 {
		c.OpenAI.TimeoutSeconds = source.OpenAI.TimeoutSeconds
	}
}

// NewSource creates a Source from configuration.
func NewSource(cfg *Config) (Source, error) {
	switch cfg.Source {
	case "", SourceCanned:
		return NewCannedSource(cfg.Catalog, cfg.Seed), nil
	case SourceOpenAI:
		return NewOpenAISource(cfg.OpenAI)
	default:
		return nil, fmt.Errorf("unknown reply source: %s", cfg.Source)
	}
}
