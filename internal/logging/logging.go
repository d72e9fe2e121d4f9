package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// LogFileName is the name of the rotating log file inside the log directory.
	LogFileName = "planchart.log"
	// App is attached to every entry as the app field.
	App = "planchart"
)

// Init initializes the global logger with dual sinks: os.Stderr and a rotating file.
func Init(verbose bool) error {
	// Init runs before config.Load, so LOGS_FOLDER may still live in the
	// binary's .env.
	exePath, err := os.Executable()
	if err == nil {
		_ = godotenv.Load(filepath.Join(filepath.Dir(exePath), ".env"))
	}

	logDir := os.Getenv("LOGS_FOLDER")
	if logDir == "" {
		if err == nil {
			logDir = filepath.Join(filepath.Dir(exePath), "logs")
		} else {
			logDir = "logs"
		}
	}

	logger, err := New(verbose, logDir, os.Stderr)
	if err != nil {
		return err
	}
	log.Logger = logger
	return nil
}

// New builds a logger writing to console and to a rotating file in logDir.
// It also sets the global level.
func New(verbose bool, logDir string, console *os.File) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	isTerminal := isatty.IsTerminal(console.Fd()) || isatty.IsCygwinTerminal(console.Fd())
	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal,
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return zerolog.Logger{}, fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	testFile := filepath.Join(logDir, ".write-test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		return zerolog.Logger{}, fmt.Errorf("log directory %q is not writable: %w", logDir, err)
	}
	_ = os.Remove(testFile)

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, LogFileName),
		MaxSize:    16, // megabytes
		MaxBackups: 8,
		MaxAge:     90, // days
		Compress:   true,
	}

	multi := zerolog.MultiLevelWriter(io.Writer(consoleWriter), fileWriter)

	return zerolog.New(multi).
		With().
		Timestamp().
		Str("app", App).
		Logger(), nil
}

// Component returns the global logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
