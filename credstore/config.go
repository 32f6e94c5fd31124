package credstore

import "fmt"

// DefaultKey is the slot name used by keyed backends.
const DefaultKey = "anima/credential"

// Backend names accepted by Config.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Config selects and parameterizes a credential store backend.
type Config struct {
	Backend string      `json:"backend,omitempty"` // "memory", "file", or "redis"
	Path    string      `json:"path,omitempty"`    // file backend only
	Redis   RedisConfig `json:"redis,omitempty"`
}

// RedisConfig holds connection parameters for the redis backend.
type RedisConfig struct {
	Addr       string `json:"addr,omitempty"`
	Username   string `json:"username,omitempty"`
	Password   string `json:"password,omitempty"`
	DB         int    `json:"db,omitempty"`
	Key        string `json:"key,omitempty"`
	TTLSeconds int    `json:"ttl_seconds,omitempty"`
}

// DefaultConfig returns the default credential store configuration: an
// in-memory slot scoped to the process.
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
	if source.Redis.Addr != "" {
		c.Redis.Addr = source.Redis.Addr
	}
	if source.Redis.Username != "" {
		c.Redis.Username = source.Redis.Username
	}
	if source.Redis.Password != "" {
		c.Redis.Password = source.Redis.Password
	}
	if source.Redis.DB != 0 {
		c.Redis.DB = source.Redis.DB
	}
	if source.Redis.Key != "" {
		c.Redis.Key = source.Redis.Key
	}
	if source.Redis.TTLSeconds != 0 {
		c.Redis.TTLSeconds = source.Redis.TTLSeconds
	}
}

// New creates a Store from configuration.
func New(cfg *Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		if cfg.Path == "" {
			return nil, fmt.Errorf("file credential store requires a path")
		}
		return NewFileStore(cfg.Path), nil
	case BackendRedis:
		return NewRedisStore(cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown credential store backend: %s", cfg.Backend)
	}
}
