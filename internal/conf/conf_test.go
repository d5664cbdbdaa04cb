package conf_test

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/hueward/Hue-Hound/internal/conf"
    "github.com/hueward/Hue-Hound/internal/globals"
    "github.com/stretchr/testify/assert"
)


func TestDefaultConfig(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Build the default configuration
    appConfig := conf.DefaultConfig()

    // Ensure each member carries its documented default
    assert.Equal(globals.DEFAULT_HISTORY_SIZE,
                 appConfig.DisplayConfig.HistorySize)
    assert.Equal(globals.DEFAULT_OUTPUT_FORMAT,
                 appConfig.DisplayConfig.OutputFormat)
    assert.True(appConfig.DisplayConfig.ShowAliases)
    assert.False(appConfig.DisplayConfig.ShowDistances)
    assert.Equal(globals.DEFAULT_LOG_PATH, appConfig.SessionConfig.LogPath)
    assert.False(appConfig.SessionConfig.LogToMemory)
    assert.Equal(globals.DEFAULT_WATCH_INTERVAL_MS,
                 appConfig.SessionConfig.WatchIntervalMs)
}


func TestLoadConfig(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    yamlData := []byte(`display_config:
  history_size: 25
  output_format: "json"
  show_aliases: true
  show_distances: true
session_config:
  log_path: "logs/session.log"
  log_to_memory: true
  watch_interval_ms: 250
`)

    // Write the YAML data to a temp file for loading
    configPath := filepath.Join(t.TempDir(), "config.yml")
    err := os.WriteFile(configPath, yamlData, 0644)
    assert.Equal(nil, err)

    // Load the configuration from the YAML file
    appConfig := conf.LoadConfig(configPath)

    // Ensure each member carries its configured value
    assert.Equal(25, appConfig.DisplayConfig.HistorySize)
    assert.Equal("json", appConfig.DisplayConfig.OutputFormat)
    assert.True(appConfig.DisplayConfig.ShowAliases)
    assert.True(appConfig.DisplayConfig.ShowDistances)
    assert.Equal("logs/session.log", appConfig.SessionConfig.LogPath)
    assert.True(appConfig.SessionConfig.LogToMemory)
    assert.Equal(250, appConfig.SessionConfig.WatchIntervalMs)
}


func TestValidateDisplayConfig(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Zero members take their defaults during validation
    displayConfig := conf.DisplayConfig{}
    err := conf.ValidateDisplayConfig(&displayConfig)
    assert.Equal(nil, err)
    assert.Equal(globals.DEFAULT_HISTORY_SIZE, displayConfig.HistorySize)
    assert.Equal(globals.DEFAULT_OUTPUT_FORMAT, displayConfig.OutputFormat)

    // A negative history size is rejected
    displayConfig = conf.DisplayConfig{HistorySize: -5}
    assert.NotEqual(nil, conf.ValidateDisplayConfig(&displayConfig))

    // An unsupported output format is rejected
    displayConfig = conf.DisplayConfig{OutputFormat: "yaml"}
    assert.NotEqual(nil, conf.ValidateDisplayConfig(&displayConfig))
}


func TestValidateSessionConfig(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Zero members take their defaults during validation
    sessionConfig := conf.SessionConfig{}
    err := conf.ValidateSessionConfig(&sessionConfig)
    assert.Equal(nil, err)
    assert.Equal(globals.DEFAULT_LOG_PATH, sessionConfig.LogPath)
    assert.Equal(globals.DEFAULT_WATCH_INTERVAL_MS,
                 sessionConfig.WatchIntervalMs)

    // A log path with invalid characters is rejected
    sessionConfig = conf.SessionConfig{LogPath: "bad path.log"}
    assert.NotEqual(nil, conf.ValidateSessionConfig(&sessionConfig))

    // A watch interval outside the supported range is rejected
    sessionConfig = conf.SessionConfig{WatchIntervalMs: 50}
    assert.NotEqual(nil, conf.ValidateSessionConfig(&sessionConfig))
}
