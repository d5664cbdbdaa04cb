package validate

import (
    "fmt"
    "os"
    "path/filepath"
    "regexp"
    "strings"

    "github.com/hueward/Hue-Hound/internal/globals"
    "github.com/hueward/Hue-Hound/pkg/data"
    "github.com/hueward/Hue-Hound/pkg/display"
)

// Pattern a normalized hex color key must match
var hexColorPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Pattern a cleaned filesystem path must match
var pathPattern = regexp.MustCompile(`^[a-zA-Z0-9\._\-\/]+$`)


// In a continous loop, the input is gathered and tested to see if the path
// exists that is a yaml file with data inside it.
//
// @Parameters
// - configFilePath:  The path to the configuration to attempt to load
//
func ValidateConfigPath(configFilePath *string) {
    for {
        if *configFilePath == "" {
            fmt.Print("Enter the path of the YAML config file to use:  ")
            // Read the YAML file path from user input
            _, err := fmt.Scanln(configFilePath)
            if err != nil {
                fmt.Println("Error occurred reading user input path: ", err)
                // Sleep for a few seconds and clear screen before re-prompt
                display.ClearScreen(3)
                // Reset the config file path
                *configFilePath = ""
                continue
            }
        }

        // Check to see if the input path exists and is a file with data
        info, err := os.Stat(*configFilePath)
        if err != nil {
            fmt.Println("Error checking input path existence: ", err)
            // Sleep for a few seconds and clear screen before re-prompt
            display.ClearScreen(3)
            // Reset the config file path
            *configFilePath = ""
            continue
        }

        // If the path is a dir OR does not have data OR is not YAML file
        if info.IsDir() || info.Size() == 0 ||
           !strings.HasSuffix(*configFilePath, ".yml") {
            fmt.Println("Input path is a dir, empty, or not YAML file type: ",
                        *configFilePath)
            // Sleep for a few seconds and clear screen before re-prompt
            display.ClearScreen(3)
            // Reset the config file path
            *configFilePath = ""
            continue
        }

        break
    }
}


// Ensure the passed in hex color string is of proper 6-digit format after
// normalization.
//
// @Parameters
// - hexColor:  The hex color string to validate, with or without '#'
//
// @Returns
// - Error if it occurs, otherwise nil on success
//
func ValidateHexColor(hexColor string) error {
    trimmed := strings.TrimPrefix(strings.TrimSpace(hexColor), "#")

    // If the trimmed input is not exactly six hex digits
    if !hexColorPattern.MatchString(trimmed) {
        return fmt.Errorf("hex color %s is not a 6-digit hex string",
                          hexColor)
    }

    return nil
}


// Ensure the passed in history size is greater than zero.
//
// @Parameters
// - historySize:  The number of history entries to retain
//
// @Returns
// - true/false boolean depending on whether the history size
//   is greater than 0 or not
func ValidateHistorySize(historySize int) bool {
    return historySize > 0
}


// Ensure the passed in output format is in the supported formats.
//
// @Parameters
// - outputFormat:  The output format to validate
//
// @Returns
// - true/false boolean depending on whether the format is supported or not
//
func ValidateOutputFormat(outputFormat string) bool {
    // Check to see if arg output format is in the allowed formats
    return data.StringSliceHasItem(globals.OUTPUT_FORMATS, outputFormat)
}


// Cleans the passed in path and ensures it is of proper format.
//
// @Parameters
// - path:  The path to be validated
//
// @Returns
// - The validated path
// - Error if it occurs, otherwise nil on success
//
func ValidatePath(path string) (string, error) {
    // Ensure the path is not empty
    if path == "" {
        return "", fmt.Errorf("passed in path cannot be empty")
    }

    // Clean the path (removes redundant slashes, etc.)
    cleanedPath := filepath.Clean(path)
    // Check if the cleaned path contains any invalid characters
    if strings.Contains(cleanedPath, "//") {
        return "", fmt.Errorf("path %s contains double slashes", path)
    }

    // Validate path format with regex
    if !pathPattern.MatchString(cleanedPath) {
        return "", fmt.Errorf("path %s contains invalid characters", path)
    }

    return cleanedPath, nil
}


// Ensure the passed in watch interval sits inside the supported range.
//
// @Parameters
// - intervalMs:  The watch redraw interval in milliseconds
//
// @Returns
// - true/false boolean depending on whether the interval is in range or not
//
func ValidateWatchInterval(intervalMs int) bool {
    return intervalMs >= globals.MIN_WATCH_INTERVAL_MS &&
           intervalMs <= globals.MAX_WATCH_INTERVAL_MS
}
