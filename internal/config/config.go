// Package config resolves session tuning parameters from the environment.
// Every knob has a compiled-in default; overrides that fail to parse warn on
// stderr and fall back, so resolution never aborts the process.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variable names recognized by FromEnv.
const (
	EnvStoryTemp          = "STORY_TEMP"
	EnvJudgeTemp          = "JUDGE_TEMP"
	EnvMaxAttempts        = "MAX_STORY_ATTEMPTS"
	EnvAPIRetries         = "API_RETRIES"
	EnvAPITimeoutSeconds  = "API_TIMEOUT_SECONDS"
	EnvTokenWarnThreshold = "TOKEN_WARN_THRESHOLD"
	EnvLogPath            = "STORY_LOG_PATH"
)

// Config holds the tuning knobs for a story session. It is built once at
// startup and read-only afterwards.
type Config struct {
	// StorytellerTemp is the sampling temperature for story generation.
	StorytellerTemp float64

	// JudgeTemp is the sampling temperature for judge calls.
	JudgeTemp float64

	// MaxAttempts is the regeneration budget before manual recovery.
	MaxAttempts int

	// APIRetries bounds how many times a single model call is attempted.
	APIRetries int

	// APITimeoutSeconds is the per-request timeout for model calls.
	APITimeoutSeconds int

	// TokenWarnThreshold triggers a warning when a request's estimated
	// token count exceeds it.
	TokenWarnThreshold int

	// LogPath is where session events are appended, one JSON object per line.
	LogPath string
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		StorytellerTemp:    0.65,
		JudgeTemp:          0.2,
		MaxAttempts:        2,
		APIRetries:         3,
		APITimeoutSeconds:  30,
		TokenWarnThreshold: 3500,
		LogPath:            "story_sessions.log",
	}
}

// FromEnv resolves the configuration from environment overrides. Integer
// fields are floored at 1.
func FromEnv() Config {
	def := Default()
	return Config{
		StorytellerTemp:    floatFromEnv(EnvStoryTemp, def.StorytellerTemp),
		JudgeTemp:          floatFromEnv(EnvJudgeTemp, def.JudgeTemp),
		MaxAttempts:        intFromEnv(EnvMaxAttempts, def.MaxAttempts),
		APIRetries:         intFromEnv(EnvAPIRetries, def.APIRetries),
		APITimeoutSeconds:  intFromEnv(EnvAPITimeoutSeconds, def.APITimeoutSeconds),
		TokenWarnThreshold: intFromEnv(EnvTokenWarnThreshold, def.TokenWarnThreshold),
		LogPath:            stringFromEnv(EnvLogPath, def.LogPath),
	}
}

// Timeout returns the API timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.APITimeoutSeconds) * time.Second
}

func floatFromEnv(name string, def float64) float64 {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not parse %s, using default %v.\n", name, def)
		return def
	}
	return value
}

func intFromEnv(name string, def int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not parse %s, using default %v.\n", name, def)
		return def
	}
	if value < 1 {
		return 1
	}
	return value
}

func stringFromEnv(name, def string) string {
	if raw := os.Getenv(name); raw != "" {
		return raw
	}
	return def
}
