package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"planchart/internal/sheet"
	"planchart/internal/workbook"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath  string
	OutputDir string
	Location  *time.Location
	Weeks     int
	Workers   int
	Palette   sheet.Palette
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	return FromEnv(exeDir)
}

// FromEnv builds the configuration from the process environment only.
// exeDir is the fallback data path; "." is used when it is empty.
func FromEnv(exeDir string) (*AppConfig, error) {
	dataPath := getEnv("DATA_PATH", "")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	tz := getEnv("PLANCHART_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid PLANCHART_TIMEZONE %q: %w", tz, err)
	}

	weeks, err := getEnvInt("PLANCHART_WEEKS", workbook.DefaultWeeks)
	if err != nil {
		return nil, err
	}
	workers, err := getEnvInt("PLANCHART_WORKERS", 4)
	if err != nil {
		return nil, err
	}

	palette := sheet.Palette{
		Planned:   getEnv("COLOR_PLANNED", sheet.DefaultPalette.Planned),
		Ongoing:   getEnv("COLOR_ONGOING", sheet.DefaultPalette.Ongoing),
		Completed: getEnv("COLOR_COMPLETED", sheet.DefaultPalette.Completed),
	}
	if err := palette.Validate(); err != nil {
		return nil, err
	}

	return &AppConfig{
		DataPath:  dataPath,
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(dataPath, "output")),
		Location:  loc,
		Weeks:     weeks,
		Workers:   workers,
		Palette:   palette,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: expected a positive integer", key, value)
	}
	return n, nil
}
