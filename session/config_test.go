package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aayushCywarden/animagic-space/chatlog"
	"github.com/aayushCywarden/animagic-space/responder"
	"github.com/aayushCywarden/animagic-space/session"
)

func TestDefaultConfig(t *testing.T) {
	cfg := session.DefaultConfig()

	if cfg.GreetingText != session.DefaultGreetingText {
		t.Errorf("GreetingText = %q", cfg.GreetingText)
	}
	if cfg.GreetingDelayMS != session.DefaultGreetingDelayMS {
		t.Errorf("GreetingDelayMS = %d, want %d", cfg.GreetingDelayMS, session.DefaultGreetingDelayMS)
	}
	if cfg.Log.Backend != chatlog.BackendMemory {
		t.Errorf("Log.Backend = %q, want memory", cfg.Log.Backend)
	}
	if cfg.Responder.Source != responder.SourceCanned {
		t.Errorf("Responder.Source = %q, want canned", cfg.Responder.Source)
	}
	if cfg.Responder.LatencyMS != responder.DefaultLatencyMS {
		t.Errorf("Responder.LatencyMS = %d, want %d", cfg.Responder.LatencyMS, responder.DefaultLatencyMS)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Merge(&session.Config{
		GreetingDelayMS: 50,
		Log:             chatlog.Config{Backend: chatlog.BackendSQLite, Path: "/tmp/t.db"},
	})

	if cfg.GreetingDelayMS != 50 {
		t.Errorf("GreetingDelayMS = %d, want 50", cfg.GreetingDelayMS)
	}
	if cfg.GreetingText != session.DefaultGreetingText {
		t.Errorf("GreetingText = %q, want default preserved", cfg.GreetingText)
	}
	if cfg.Log.Backend != chatlog.BackendSQLite || cfg.Log.Path != "/tmp/t.db" {
		t.Errorf("Log = %+v, want sqlite backend merged", cfg.Log)
	}
	if cfg.Responder.Source != responder.SourceCanned {
		t.Errorf("Responder.Source = %q, want default preserved", cfg.Responder.Source)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"greeting_delay_ms": 200,
		"responder": {"latency_ms": 300, "seed": 9}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := session.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.GreetingDelayMS != 200 {
		t.Errorf("GreetingDelayMS = %d, want 200", cfg.GreetingDelayMS)
	}
	if cfg.Responder.LatencyMS != 300 {
		t.Errorf("Responder.LatencyMS = %d, want 300", cfg.Responder.LatencyMS)
	}
	if cfg.Responder.Seed != 9 {
		t.Errorf("Responder.Seed = %d, want 9", cfg.Responder.Seed)
	}
	if cfg.GreetingText != session.DefaultGreetingText {
		t.Errorf("GreetingText = %q, want default preserved", cfg.GreetingText)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := session.LoadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadConfig succeeded on a missing file")
	}
}
