package main

import (
    "bufio"
    "encoding/json"
    "flag"
    "fmt"
    "log"
    "os"
    "strings"
    "time"

    "github.com/hueward/Hue-Hound/internal/color"
    "github.com/hueward/Hue-Hound/internal/conf"
    "github.com/hueward/Hue-Hound/internal/globals"
    "github.com/hueward/Hue-Hound/internal/validate"
    "github.com/hueward/Hue-Hound/pkg/classify"
    "github.com/hueward/Hue-Hound/pkg/data"
    "github.com/hueward/Hue-Hound/pkg/display"
    "github.com/hueward/Hue-Hound/pkg/huelogs"
    "github.com/hueward/Hue-Hound/pkg/tui"
    "go.uber.org/zap"
)


// Strips the parenthetical alias off the simple label when alias display
// is disabled in the configuration.
//
// @Parameters
// - result:  The classification result holding the simple label and alias
// - showAliases:  Whether alias parentheticals should be displayed
//
// @Returns
// - The simple label honoring the alias display setting
//
func simpleLabel(result classify.Result, showAliases bool) string {
    // If aliases are disabled and one was appended, trim its suffix
    if !showAliases && result.Alias != "" {
        return strings.TrimSuffix(result.Simple, " ("+result.Alias+")")
    }

    return result.Simple
}


// Prints one classification result in the configured output format.
//
// @Parameters
// - result:  The classification result to print
// - displayConfig:  The display section of the loaded configuration
//
func printResult(result classify.Result, displayConfig *conf.DisplayConfig) {
    simple := simpleLabel(result, displayConfig.ShowAliases)

    switch displayConfig.OutputFormat {
    // Machine-readable single-line JSON
    case "json":
        payload, err := json.Marshal(result)
        if err != nil {
            log.Fatalf("Error marshaling result to JSON:  %v", err)
        }

        fmt.Println(string(payload))

    // Uncolored columns for piping
    case "plain":
        fmt.Printf("#%s  %s | %s | %s\n", result.Hex, simple,
                   result.Web, result.Extended)

    // Colored output with a leading swatch
    default:
        var r, g, b uint8
        fmt.Sscanf(result.Hex, "%02x%02x%02x", &r, &g, &b)

        swatch := display.Swatch(r, g, b, globals.SWATCH_WIDTH)
        fmt.Println(display.CtextMulti(swatch, "",
                                       color.HoundGold, " #"+result.Hex+"  ",
                                       color.BoneWhite, simple+"  ",
                                       color.KennelSlate, result.Web+"  ",
                                       color.AshGray, result.Extended))
    }

    // If configured, append the squared match distances
    if displayConfig.ShowDistances &&
       displayConfig.OutputFormat != "json" {
        fmt.Printf("    web distance %.5f, extended distance %.5f\n",
                   result.WebDistance, result.ExtendedDistance)
    }
}


// Classifies a batch of hex color args and prints each verdict.
//
// @Parameters
// - hexArgs:  The hex color strings passed on the command line
// - appConfig:  The configuration struct with loaded yaml program data
// - logMan:  The huelogs logger manager for local logging
//
func classifyArgs(hexArgs []string, appConfig *conf.AppConfig,
                  logMan *huelogs.LoggerManager) {
    // Iterate through the passed in hex color args
    for _, hexArg := range hexArgs {
        result, err := classify.ClassifyHex(hexArg)
        if err != nil {
            logMan.LogMessage("error", "Error classifying %s:  %v", hexArg,
                              err)
            fmt.Fprintf(os.Stderr, "skipping %s: %v\n", hexArg, err)
            continue
        }

        printResult(result, &appConfig.DisplayConfig)
        logMan.LogMessage("info", "Classified sample",
                          zap.String("hex", result.Hex),
                          zap.String("simple", result.Simple))
    }
}


// Runs the interactive prompt loop, classifying each entered hex color
// until an exit word is read.
//
// @Parameters
// - appConfig:  The configuration struct with loaded yaml program data
// - logMan:  The huelogs logger manager for local logging
//
func runPrompt(appConfig *conf.AppConfig, logMan *huelogs.LoggerManager) {
    scanner := bufio.NewScanner(os.Stdin)

    for {
        fmt.Print("hue-hound> ")

        // If stdin is closed, stop the prompt loop
        if !scanner.Scan() {
            break
        }

        line := strings.TrimSpace(scanner.Text())
        if line == "" {
            continue
        }

        // If an exit word was entered, stop the prompt loop
        if data.StringSliceHasItem(globals.EXIT_WORDS,
                                   strings.ToLower(line)) {
            break
        }

        // Reject malformed input with a re-prompt instead of exiting
        err := validate.ValidateHexColor(line)
        if err != nil {
            fmt.Println("Input must be a 6-digit hex color: ", line)
            continue
        }

        result, err := classify.ClassifyHex(line)
        if err != nil {
            fmt.Println("Error classifying input: ", err)
            continue
        }

        printResult(result, &appConfig.DisplayConfig)
        logMan.LogMessage("info", "Classified sample",
                          zap.String("hex", result.Hex),
                          zap.String("simple", result.Simple))
    }
}


// Runs watch mode: the two-panel TUI renders the classification history on
// the left and the latest sample detail on the right while hex colors are
// read from stdin.
//
// @Parameters
// - appConfig:  The configuration struct with loaded yaml program data
// - logMan:  The huelogs logger manager for local logging
//
func runWatch(appConfig *conf.AppConfig, logMan *huelogs.LoggerManager) {
    interval := time.Duration(appConfig.SessionConfig.WatchIntervalMs) *
                time.Millisecond

    // Setup TUI interface and ensure it closes on local exit
    t := tui.NewTUI(appConfig.DisplayConfig.HistorySize, interval)
    go t.Start(color.DuskBlue, color.BrightTeal, color.SignalMint)
    defer t.Stop()

    logMan.LogMessage("info", "Watch mode started",
                      zap.Int("history_size",
                              appConfig.DisplayConfig.HistorySize))

    scanner := bufio.NewScanner(os.Stdin)

    for scanner.Scan() {
        line := strings.TrimSpace(scanner.Text())
        if line == "" {
            continue
        }

        // If an exit word was entered, stop watch mode
        if data.StringSliceHasItem(globals.EXIT_WORDS,
                                   strings.ToLower(line)) {
            break
        }

        result, err := classify.ClassifyHex(line)
        if err != nil {
            logMan.LogMessage("warn", "Skipping malformed input %s", line)
            continue
        }

        // Queue the result into both TUI panels
        t.PushSample(result, appConfig.DisplayConfig.ShowDistances)
        logMan.LogMessage("info", "Classified sample",
                          zap.String("hex", result.Hex),
                          zap.String("simple", result.Simple))
    }

    // Sleep briefly so final output can be read before the tui is stopped
    time.Sleep(2 * time.Second)
}


// Parses command line flags and loads the YAML config when one is given,
// falling back to defaults otherwise. An invalid config path drops into a
// prompt until a valid yaml file is specified.
//
// @Returns
// - Pointer to AppConfig struct populated from yaml data or defaults
// - Boolean flagging whether watch mode was requested
// - The remaining hex color args
//
func parseArgs() (*conf.AppConfig, bool, []string) {
    configPath := flag.String("config", "", "path to YAML config file")
    watchMode := flag.Bool("watch", false, "render the two-panel watch TUI")
    formatOverride := flag.String("format", "",
                                  "output format (plain, ansi, json)")
    flag.Parse()

    var appConfig *conf.AppConfig

    // If no config file path was passed in, run on defaults
    if *configPath == "" {
        appConfig = conf.DefaultConfig()
    // If the config file path arg was passed in
    } else {
        path := *configPath

        // Check to see if the input path exists and is a yaml file with data
        info, err := os.Stat(path)
        if err != nil || info.IsDir() || info.Size() == 0 ||
           !strings.HasSuffix(path, ".yml") {
            fmt.Println("Provided YAML config file path invalid: ", path)
            // Sleep for a few seconds and clear screen
            display.ClearScreen(3)
            path = ""
            // Prompt the user until proper path is passed in
            validate.ValidateConfigPath(&path)
        }

        // Load the configuration from the YAML file
        appConfig = conf.LoadConfig(path)
    }

    // If a format override was passed in, apply it over the config
    if *formatOverride != "" {
        if !validate.ValidateOutputFormat(*formatOverride) {
            log.Fatalf("Improper output format specified:  %s",
                       *formatOverride)
        }

        appConfig.DisplayConfig.OutputFormat = *formatOverride
    }

    return appConfig, *watchMode, flag.Args()
}


// Parse command line args and load configuration, set up the logging
// manager, then dispatch to batch, watch, or prompt mode.
//
func main() {
    // Handle flag parsing and load YAML data into configuration struct
    appConfig, watchMode, hexArgs := parseArgs()

    // Initialize the LoggerManager writing to the configured log path
    logMan, err := huelogs.NewLoggerManager(appConfig.SessionConfig.LogPath,
                                            appConfig.SessionConfig.LogToMemory)
    if err != nil {
        log.Fatalf("Error initializing logger manager:  %v", err)
    }

    // If hex color args were passed in, classify the batch and exit
    if len(hexArgs) > 0 {
        classifyArgs(hexArgs, appConfig, logMan)
        return
    }

    // If watch mode was requested, run the TUI loop
    if watchMode {
        runWatch(appConfig, logMan)
        return
    }

    fmt.Println(display.CtextMulti(display.CtextPrefix(color.TwilightPlum,
                                                       color.BoneWhite, "!"), "",
                                   color.DuskBlue, "Enter hex colors to "+
                                   "classify, or an exit word to quit"))

    // Otherwise run the interactive prompt loop
    runPrompt(appConfig, logMan)

    logMan.LogMessage("info", "Prompt session ended")
}
