package config

import (
	"os"
	"strconv"
	"time"
)

// Defaults for the pipeline's operational limits. Kept as overridable
// configuration rather than literals scattered through the adapters.
const (
	DefaultMaxVideoDurationSec = 3600
	DefaultPollInterval        = 5 * time.Second
	DefaultPollMaxAttempts     = 60
)

// Config is resolved once per process from the environment and passed down.
// Presence or absence of the two API keys is the sole behavior switch:
// missing credentials degrade components to their local fallbacks instead
// of failing the run.
type Config struct {
	// AssemblyAIKey authenticates against the speech-to-text service.
	AssemblyAIKey string
	// OpenAIKey authenticates against the generative-language service.
	OpenAIKey string
	// OpenAIModel is the chat model used for summaries and copy.
	OpenAIModel string

	// DataDir is the shared directory for temporary audio artifacts.
	DataDir string
	// YtDlpPath is the yt-dlp binary used to resolve audio streams.
	YtDlpPath string

	MaxVideoDurationSec int
	PollInterval        time.Duration
	PollMaxAttempts     int
}

// FromEnv builds a Config from environment variables, applying defaults
// for everything unset.
func FromEnv() Config {
	return Config{
		AssemblyAIKey:       os.Getenv("ASSEMBLYAI_API_KEY"),
		OpenAIKey:           os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:         envString("COPYGEN_OPENAI_MODEL", "gpt-4o-mini"),
		DataDir:             envString("COPYGEN_DATA_DIR", "./data"),
		YtDlpPath:           envString("COPYGEN_YTDLP_PATH", "yt-dlp"),
		MaxVideoDurationSec: envInt("COPYGEN_MAX_VIDEO_SECONDS", DefaultMaxVideoDurationSec),
		PollInterval:        envDuration("COPYGEN_POLL_INTERVAL", DefaultPollInterval),
		PollMaxAttempts:     envInt("COPYGEN_POLL_ATTEMPTS", DefaultPollMaxAttempts),
	}
}

// HasTranscription reports whether the speech-to-text service is configured.
func (c Config) HasTranscription() bool { return c.AssemblyAIKey != "" }

// HasGeneration reports whether the generative-language service is configured.
func (c Config) HasGeneration() bool { return c.OpenAIKey != "" }

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
