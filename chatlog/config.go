package chatlog

import "fmt"

// Backend names accepted by Config.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config selects and parameterizes a message log backend.
type Config struct {
	Backend string `json:"backend,omitempty"` // "memory" or "sqlite"
	Path    string `json:"path,omitempty"`    // sqlite backend only
}

// DefaultConfig returns the default log configuration: in-memory.
func DefaultConfig() Config {
	return Config{Backend: BackendMemory}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Backend != "" {
		c.Backend = source.Backend
	}
	if source.Path != "" {
		c.Path = source.Path
	}
}

// New creates a Log from configuration.
func New(cfg *Config) (Log, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryLog(), nil
	case BackendSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("sqlite log requires a path")
		}
		return NewSQLiteLog(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown log backend: %s", cfg.Backend)
	}
}
