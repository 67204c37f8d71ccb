// Package fragula provides swipe-back screen navigation for SDL applications
// on handheld Linux devices.
//
// The package handles SDL initialization and the event loop. Screens live on
// a back-stack owned by a navigation.Navigator and are shown as horizontally
// swipeable pages: swiping the top page away pops it, and navigating forward
// animates the new page in. See the host, navigation and swipe packages for
// the pieces that can be used without SDL.
package fragula

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/fragula/pkg/fragula/constants"
	"github.com/BrandonKowalski/fragula/pkg/fragula/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Options configures the fragula initialization.
type Options struct {
	WindowTitle   string        // Window title displayed in windowed mode
	WindowOptions WindowOptions // SDL window flags (borderless, resizable, etc.)
	LogPath       string        // Full path for log file including filename (creates parent directories)
	ConfigPath    string        // TOML config file; falls back to FRAGULA_CONFIG, then defaults
}

var config = internal.DefaultConfig()

// Init loads the configuration and initializes SDL and the window.
// Must be called before NavHost.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() || os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	configPath := options.ConfigPath
	if configPath == "" {
		configPath = os.Getenv(constants.ConfigEnvVar)
	}
	cfg, err := internal.LoadConfig(configPath)
	if err != nil {
		return err
	}
	config = cfg
	internal.SetRawLogLevel(cfg.LogLevel)

	theme, err := cfg.Theme.BuildTheme()
	if err != nil {
		return err
	}
	internal.SetTheme(theme)

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return NewInfrastructureError("sdl_init", err)
	}
	openControllers()

	winOpts := options.WindowOptions
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Borderless: true, Resizable: true}
		} else {
			winOpts = WindowOptions{Resizable: true}
		}
	}

	w, err := initWindow(options.WindowTitle, winOpts)
	if err != nil {
		sdl.Quit()
		return err
	}
	window = w

	return nil
}

var controllers []*sdl.GameController

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			controllers = append(controllers, c)
		}
	}
}

// Close releases all SDL resources.
// Must be called before program exit to prevent resource leaks.
func Close() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
	sdl.Quit()
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
