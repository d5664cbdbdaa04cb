package tui

import (
    "fmt"
    "slices"
    "strings"
    "sync"
    "time"

    "github.com/pterm/pterm"

    "github.com/hueward/Hue-Hound/internal/color"
    "github.com/hueward/Hue-Hound/internal/globals"
    "github.com/hueward/Hue-Hound/pkg/classify"
    "github.com/hueward/Hue-Hound/pkg/data"
    "github.com/hueward/Hue-Hound/pkg/display"
)

// Package level variables
const AnsiReset = "\033[0m"


// TUI manages the watch display: left=sample history, right=latest detail.
// History lines append and scroll; the detail panel is replaced wholesale
// for every new sample.
type TUI struct {
    area           *pterm.AreaPrinter
    detailBuffer   []string
    DetailCh       chan []string
    detailName     string
    first          bool
    historyBuffer  []string
    HistoryCh      chan string
    historyName    string
    maxHistory     int
    mutx           sync.Mutex
    redrawInterval time.Duration
    stopCh         chan struct{}
}

// Creates a new TUI instance with the given history depth.
//
// @Parameters
// - maxHistory:  The max number of history lines retained and buffered
// - redrawInterval:  The duration of time until the display panels are updated
//
func NewTUI(maxHistory int, redrawInterval time.Duration) *TUI {
    return &TUI{
        detailBuffer:   make([]string, 0, maxHistory),
        DetailCh:       make(chan []string, maxHistory),
        detailName:     "Latest Sample",
        first:          true,
        historyBuffer:  make([]string, 0, maxHistory),
        HistoryCh:      make(chan string, maxHistory),
        historyName:    "Sample History",
        maxHistory:     maxHistory,
        redrawInterval: redrawInterval,
        stopCh:         make(chan struct{}),
    }
}

// Runs the continual ticker loop that handles TUI operations.
//
// @Parameters
// - historyHeaderColor:  The color of the history panel header
// - detailHeaderColor:  The color of the detail panel header
// - dividerColor:  The color of the divider used to split header and content section
//
func (t *TUI) Start(historyHeaderColor string, detailHeaderColor string,
                    dividerColor string) {
    // Set up ticker for monitoring on intervals
    ticker := time.NewTicker(t.redrawInterval)
    // Stop ticker on local exit
    defer ticker.Stop()

    for {
        select {
        // If there is a new history line
        case msg := <-t.HistoryCh:
            t.mutx.Lock()
            // Add the line to the history buffer slice
            t.historyBuffer = append(t.historyBuffer, msg)
            // Ensure the history does not overflow its column
            t.historyBuffer = t.trimToMax(t.historyBuffer, t.maxHistory)
            t.mutx.Unlock()

        // If there is a new detail block
        case block := <-t.DetailCh:
            t.mutx.Lock()
            // Replace the detail panel content outright
            t.detailBuffer = block
            t.mutx.Unlock()

        // If the ticker interval has been reached
        case <-ticker.C:
            t.mutx.Lock()
            // Make a copy of each panels buffer for rendering output
            historyCopy := slices.Clone(t.historyBuffer)
            detailCopy := slices.Clone(t.detailBuffer)
            t.mutx.Unlock()

            // If the first ticker occurs
            if t.first {
                // Draw the TUIs static frame
                t.renderStaticFrame(historyHeaderColor, detailHeaderColor,
                                    dividerColor)
                t.first = false
            }

            // Update the content area with data received from buffers
            t.updateContent(historyCopy, detailCopy)

        // If the stop channel has been closed
        case <-t.stopCh:
            return
        }
    }
}

// Stop signals the TUI to exit its update loop.
func (t *TUI) Stop() {
    close(t.stopCh)
}

// Formats a classification result into a history line and a detail block
// and queues both for rendering.
//
// @Parameters
// - result:  The classification result to render
// - showDistances:  Whether the detail block includes match distances
//
func (t *TUI) PushSample(result classify.Result, showDistances bool) {
    red, green, blue, _ := hexChannels(result.Hex)
    swatch := display.Swatch(red, green, blue, globals.SWATCH_WIDTH)

    // Queue the one-line history summary
    t.HistoryCh <- display.CtextMulti(swatch, "",
                                      color.PaleSand, " #"+result.Hex+"  ",
                                      color.BoneWhite, result.Simple)

    detail := []string{
        display.CtextMulti(swatch, "", color.HoundGold, " #"+result.Hex),
        "",
        display.CtextMulti("", "", color.KennelSlate, "Simple:    ",
                           color.BoneWhite, result.Simple),
        display.CtextMulti("", "", color.KennelSlate, "Web:       ",
                           color.BoneWhite, result.Web),
        display.CtextMulti("", "", color.KennelSlate, "Extended:  ",
                           color.BoneWhite, result.Extended),
        "",
        display.CtextMulti("", "", color.KennelSlate, "HSV:       ",
                           color.AshGray,
                           fmt.Sprintf("%.1f  %.2f  %.2f", result.Hue,
                                       result.Saturation,
                                       result.Brightness)),
    }

    // If configured, append the squared match distances
    if showDistances {
        detail = append(detail,
            display.CtextMulti("", "", color.KennelSlate, "Distances: ",
                               color.AshGray,
                               fmt.Sprintf("web %.5f  extended %.5f",
                                           result.WebDistance,
                                           result.ExtendedDistance)))
    }

    t.DetailCh <- detail
}

// Renders the headers, divider, and dynamic static area where output
// will populate over time.
//
// @Parameters
// - historyHeaderColor:  The color of the history panel text header
// - detailHeaderColor:  The color of the detail panel text header
// - dividerColor:  The color of the line divider between headers and dynamic text area
//
func (t *TUI) renderStaticFrame(historyHeaderColor string,
                                detailHeaderColor string,
                                dividerColor string) {
    // Start with a fresh display
    fmt.Print("\033[2J")

    // Get the terminal display width
    width := pterm.GetTerminalWidth()
    // Calculate the 50-50 column split
    leftW := (width - 1) / 2
    rightW := width - leftW

    // Draw the headers for the first row
    h1 := t.padOrTrim(historyHeaderColor+t.historyName+AnsiReset, leftW)
    h2 := t.padOrTrim(detailHeaderColor+t.detailName+AnsiReset, rightW)
    // Move cursor to (row 1, col 1)
    fmt.Printf("\033[1;1H%s%s", h1, h2)

    // Draw banner on the first row
    fmt.Print(dividerColor + strings.Repeat("-", width) + AnsiReset)

    // Move cursor to row 3, col 1
    fmt.Print("\033[3;1H")
    // Start one AreaPrinter that lives at row 3, col 1
    area, _ := pterm.DefaultArea.Start()
    t.area = area
}

// Calculates the current terminal width and height, then determines the
// appropriate number of rows and column widths for each panel. It pads or
// trims each line to fit its respective column width and merges the formatted
// lines into a single output. The resulting combined view is written to the
// shared AreaPrinter (t.area).
//
// @Parameters
// - historyLines:  The most recent content for the history panel
// - detailLines:  The current content for the detail panel
//
func (t *TUI) updateContent(historyLines []string, detailLines []string) {
    // Get the terminal display height and width
    height := pterm.GetTerminalHeight()
    width := pterm.GetTerminalWidth()
    // Compute column widths
    leftW := (width - 1) / 2
    rightW := width - leftW - 1

    // Only (height-2) rows are available for content (rows 2..height-1)
    contentRows := data.Clamp(height-2, 0, height)

    // Trim each buffer to at most contentRows lines
    historyLines = t.trimToMax(historyLines, contentRows)
    detailLines = t.trimToMax(detailLines, contentRows)

    lines := make([]string, contentRows)

    // Iterate through slice of content rows
    for row := 0; row < contentRows; row++ {
        var leftLine, rightLine string

        // If there is a line from the history for this row, format it
        if row < len(historyLines) {
            leftLine = t.padOrTrim(historyLines[row], leftW)
        // Otherwise fill with spaces
        } else {
            leftLine = strings.Repeat(" ", leftW)
        }

        // If there is a line from the detail block for this row, format it
        if row < len(detailLines) {
            rightLine = t.padOrTrim(detailLines[row], rightW)
        // Otherwise fill with spaces
        } else {
            rightLine = strings.Repeat(" ", rightW)
        }

        // Combine left and right pane lines into a single full-width line
        lines[row] = leftLine + rightLine
    }

    // Update the single AreaPrinter (t.area) with the joined lines
    t.area.Update(strings.Join(lines, "\n"))
}

// Ensures a string is either padded or trimmed to fit a fixed display width,
// accounting for ANSI color codes which do not consume visible space.
//
// @Parameters
// - value:  The string to format, possibly containing ANSI escape sequences
// - width:  The target visible width for the string in terminal columns
//
// @Returns
// - A new string exactly `width` characters wide in visible length, either
//   padded with spaces or truncated, preserving ANSI formatting
//
func (t *TUI) padOrTrim(value string, width int) string {
    // Get the visible length of string (non ANSI escape codes)
    vis := t.stripAnsiLength(value)
    // If the string fits in buffer with padding space
    if vis < width {
        // Pad to width (ensuring visual width == width)
        return value + strings.Repeat(" ", width-vis)
    }

    // Truncate and ensure 1 space at the end
    return t.truncateAnsi(value, width-1) + " "
}

// Calculates the visible length of a string, ignoring ANSI escape codes
// used for terminal text formatting (e.g., colors).
//
// @Parameters
// - s:  The string to measure, potentially containing ANSI sequences
//
// @Returns
// - The number of visible characters, excluding ANSI control sequences
//
func (t *TUI) stripAnsiLength(s string) int {
    count := 0
    inAnsi := false

    // Loop over each byte in the string
    for i := 0; i < len(s); i++ {
        // Detect the beginning of an ANSI escape sequence (ESC + '[')
        if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
            inAnsi = true
            continue
        }

        // If currently inside an ANSI sequence, look for its end
        if inAnsi {
            // ANSI sequences typically end with a letter (e.g., 'm', 'K', etc.)
            if ('a' <= s[i] && s[i] <= 'z') || ('A' <= s[i] && s[i] <= 'Z') {
                inAnsi = false
            }

            continue
        }

        count++
    }

    return count
}

// Ensures the passed in buffer size is limited to its max size and
// any overflow will be discarded.
//
// @Parameters
// - buffer:  The buffer to check size to max value and trim if needed
// - maxSize:  The maximum allowed size of the buffer
//
// @Returns
// - The string buffer trimmed to the max value
//
func (t *TUI) trimToMax(buffer []string, maxSize int) []string {
    // If the buffer is above the max size, trim it
    if len(buffer) > maxSize {
        return buffer[len(buffer)-maxSize:]
    }

    return buffer
}

// Truncates a string to a maximum number of visible characters, preserving
// ANSI formatting and properly closing any open sequences to avoid rendering
// issues.
//
// @Parameters
// - s:  The original string with optional ANSI color codes
// - n:  The desired maximum visible character length
//
// @Returns
// - A new string containing at most `n` visible characters, ending with
//   an ANSI reset code to ensure consistent formatting
//
func (t *TUI) truncateAnsi(s string, n int) string {
    result := ""
    visible := 0
    inAnsi := false

    // Loop over each byte of the string
    for i := 0; i < len(s); i++ {
        // If inside an ANSI sequence, append byte and check for end ANSI sequence
        if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
            inAnsi = true
        }

        if inAnsi {
            result += string(s[i])
            // ANSI sequences typically end with a letter (e.g., 'm', 'K', etc.)
            if ('a' <= s[i] && s[i] <= 'z') || ('A' <= s[i] && s[i] <= 'Z') {
                inAnsi = false
            }

            continue
        }

        // If not inside an ANSI sequence, add to result only if limit not reached
        if visible < n {
            result += string(s[i])
            visible++
        }
    }

    return result + AnsiReset
}

// Splits a normalized hex key back into byte channels for swatch rendering.
//
// @Parameters
// - hexKey:  The normalized 6-digit uppercase hex key
//
// @Returns
// - The red, green, and blue channels in [0,255]
// - true/false boolean depending on whether the key parsed cleanly
//
func hexChannels(hexKey string) (uint8, uint8, uint8, bool) {
    var red, green, blue uint8

    // Scan the three channel byte pairs out of the key
    parsed, err := fmt.Sscanf(hexKey, "%02x%02x%02x", &red, &green, &blue)
    if err != nil || parsed != 3 {
        return 0, 0, 0, false
    }

    return red, green, blue, true
}
