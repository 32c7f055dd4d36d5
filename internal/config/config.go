package config

import (
	"os"
)

// Config represents the complete application configuration
type Config struct {
	Analysis AnalysisConfig
	Drive    DriveConfig
}

// AnalysisConfig holds output settings for analysis runs
type AnalysisConfig struct {
	OutputDir string
}

// DriveConfig holds mount step settings
type DriveConfig struct {
	MountPoint   string
	MountCommand string
}

// DefaultOutputDir is where artifacts land when nothing else is configured.
const DefaultOutputDir = "analysis_results"

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			OutputDir: getEnvOrDefault("OUTPUT_DIR", DefaultOutputDir),
		},
		Drive: DriveConfig{
			MountPoint:   getEnvOrDefault("DRIVE_MOUNT_POINT", "/mnt/drive"),
			MountCommand: os.Getenv("DRIVE_MOUNT_CMD"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
