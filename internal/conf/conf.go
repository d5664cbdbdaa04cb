package conf

import (
    "fmt"
    "log"
    "os"

    "github.com/hueward/Hue-Hound/internal/globals"
    "github.com/hueward/Hue-Hound/internal/validate"
    "gopkg.in/yaml.v3"
)

// AppConfig is a wrapper that ties the display and session yaml configs
type AppConfig struct {
    DisplayConfig DisplayConfig `yaml:"display_config"`
    SessionConfig SessionConfig `yaml:"session_config"`
}

// DisplayConfig contains the yaml configuration for output rendering
type DisplayConfig struct {
    HistorySize   int    `yaml:"history_size"`
    OutputFormat  string `yaml:"output_format"`
    ShowAliases   bool   `yaml:"show_aliases"`
    ShowDistances bool   `yaml:"show_distances"`
}

// SessionConfig contains the yaml configuration for runtime settings
type SessionConfig struct {
    LogPath         string `yaml:"log_path"`
    LogToMemory     bool   `yaml:"log_to_memory"`
    WatchIntervalMs int    `yaml:"watch_interval_ms"`
}


// Builds the configuration used when no YAML file is supplied.
//
// @Returns
// - The AppConfig struct populated with default settings
//
func DefaultConfig() *AppConfig {
    return &AppConfig{
        DisplayConfig: DisplayConfig{
            HistorySize:   globals.DEFAULT_HISTORY_SIZE,
            OutputFormat:  globals.DEFAULT_OUTPUT_FORMAT,
            ShowAliases:   true,
            ShowDistances: false,
        },
        SessionConfig: SessionConfig{
            LogPath:         globals.DEFAULT_LOG_PATH,
            LogToMemory:     false,
            WatchIntervalMs: globals.DEFAULT_WATCH_INTERVAL_MS,
        },
    }
}


// LoadConfig reads the YAML file and unmarshals it into AppConfig struct in
// memory, then validates the parsed data from display and session sections.
//
// @Returns
// - The initialized AppConfig struct loaded with validated data
//
func LoadConfig(filePath string) *AppConfig {
    // Open the YAML file
    file, err := os.Open(filePath)
    if err != nil {
        log.Fatalf("Could not open YAML file:  %v", err)
    }
    // Close file on local exit
    defer file.Close()

    // Create a new AppConfig instance
    var config AppConfig

    // Decode YAML into AppConfig struct
    decoder := yaml.NewDecoder(file)
    err = decoder.Decode(&config)
    if err != nil {
        log.Fatalf("Could not decode YAML into AppConfig:  %v", err)
    }

    // Validate display config section of YAML data
    err = ValidateDisplayConfig(&config.DisplayConfig)
    if err != nil {
        log.Fatalf("Invalid display config:  %v", err)
    }

    // Validate session config section of YAML data
    err = ValidateSessionConfig(&config.SessionConfig)
    if err != nil {
        log.Fatalf("Invalid session config:  %v", err)
    }

    return &config
}


// Takes the parsed data in DisplayConfig struct and passes each
// struct member into its corresponding validation routine.
//
// @Parameters
// - displayConfig:  The DisplayConfig section of the parsed yaml data
//
// @Returns
// - Error if it occurs, otherwise nil on success
//
func ValidateDisplayConfig(displayConfig *DisplayConfig) error {
    // Apply the default history size when unset
    if displayConfig.HistorySize == 0 {
        displayConfig.HistorySize = globals.DEFAULT_HISTORY_SIZE
    }

    // If the history size is not a positive integer
    if !validate.ValidateHistorySize(displayConfig.HistorySize) {
        return fmt.Errorf("history_size must be a positive integer")
    }

    // Apply the default output format when unset
    if displayConfig.OutputFormat == "" {
        displayConfig.OutputFormat = globals.DEFAULT_OUTPUT_FORMAT
    }

    // If the output format was not in supported formats
    if !validate.ValidateOutputFormat(displayConfig.OutputFormat) {
        return fmt.Errorf("improper output_format specified")
    }

    return nil
}


// Takes the parsed data in SessionConfig struct and passes each
// struct member into its corresponding validation routine.
//
// @Parameters
// - sessionConfig:  The SessionConfig section of the parsed yaml data
//
// @Returns
// - Error if it occurs, otherwise nil on success
//
func ValidateSessionConfig(sessionConfig *SessionConfig) error {
    var err error

    // Apply the default log path when unset
    if sessionConfig.LogPath == "" {
        sessionConfig.LogPath = globals.DEFAULT_LOG_PATH
    }

    // Ensure log path is proper format and reset it with validated
    sessionConfig.LogPath, err = validate.ValidatePath(sessionConfig.LogPath)
    if err != nil {
        return fmt.Errorf("improper log_path specified - %w", err)
    }

    // Apply the default watch interval when unset
    if sessionConfig.WatchIntervalMs == 0 {
        sessionConfig.WatchIntervalMs = globals.DEFAULT_WATCH_INTERVAL_MS
    }

    // If the watch interval sits outside the supported range
    if !validate.ValidateWatchInterval(sessionConfig.WatchIntervalMs) {
        return fmt.Errorf("watch_interval_ms must be between %d and %d",
                          globals.MIN_WATCH_INTERVAL_MS,
                          globals.MAX_WATCH_INTERVAL_MS)
    }

    return nil
}
