// Package constants defines shared constants and environment variables used
// throughout the fragula packages.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read at startup.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	ConfigEnvVar       = "FRAGULA_CONFIG" // path to the TOML config file
	DebugEnvVar        = "FRAGULA_DEBUG"  // any value enables internal debug logging
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Dev-mode window size used when WINDOW_WIDTH/WINDOW_HEIGHT are unset or invalid.
const (
	DevWindowWidth  int32 = 1024
	DevWindowHeight int32 = 768
)

// Frame timing.
const (
	FrameDelay = 16 * time.Millisecond // target frame interval without VSync
	// VelocityWindow is how far back drag samples count toward release velocity.
	VelocityWindow = 100 * time.Millisecond
)
