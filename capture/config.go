package capture

// Defaults for the capture controller.
const (
	DefaultTranscribeDelayMS = 1000
	DefaultTranscript        = "This is a simulated voice message transcription."
)

// Config holds the capture controller settings.
type Config struct {
	TranscribeDelayMS int    `json:"transcribe_delay_ms,omitempty"`
	Transcript        string `json:"transcript,omitempty"`
}

// DefaultConfig returns the default capture configuration.
func DefaultConfig() Config {
	return Config{
		TranscribeDelayMS: DefaultTranscribeDelayMS,
		Transcript:        DefaultTranscript,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.TranscribeDelayMS != 0 {
		c.TranscribeDelayMS = source.TranscribeDelayMS
	}
	if source.Transcript != "" {
		c.Transcript = source.Transcript
	}
}
