package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestNew_WritesToRotatingFile(t *testing.T) {
	dir := t.TempDir()
	console, err := os.CreateTemp(dir, "console")
	if err != nil {
		t.Fatal(err)
	}
	defer console.Close()

	logger, err := New(true, filepath.Join(dir, "logs"), console)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %s", zerolog.GlobalLevel())
	}

	logger.Debug().Str("sheet", "Planning").Msg("Header written")

	data, err := os.ReadFile(filepath.Join(dir, "logs", LogFileName))
	if err != nil {
		t.Fatalf("Log file not written: %v", err)
	}
	if !strings.Contains(string(data), `"sheet":"Planning"`) {
		t.Errorf("Expected JSON entry in log file, got %s", data)
	}
	if !strings.Contains(string(data), `"app":"planchart"`) {
		t.Errorf("Expected app field in log file, got %s", data)
	}

	out, err := os.ReadFile(console.Name())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "Header written") {
		t.Errorf("Expected console entry, got %s", out)
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf).With().Str("app", App).Logger()
	defer func() { log.Logger = prev }()

	logger := Component("render")
	logger.Info().Msg("Rendered")

	out := buf.String()
	if !strings.Contains(out, `"app":"planchart"`) || !strings.Contains(out, `"component":"render"`) {
		t.Errorf("Expected app and component fields, got %s", out)
	}
}

func TestNew_UnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(false, filepath.Join(blocker, "logs"), os.Stderr); err == nil {
		t.Error("Expected error when the log directory cannot be created")
	}
}
