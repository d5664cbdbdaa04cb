package display

import (
    "fmt"
    "strings"
    "time"

    "github.com/hueward/Hue-Hound/internal/color"
)

// Clear the terminal display with a sleep prior if specified.
//
// @Parameters
// - sleepTime:  The number of seconds to sleep before clearing the display
//
func ClearScreen(sleepTime int) {
    // If there was a positive amount of sleep time, then sleep
    if sleepTime > 0 {
        time.Sleep(time.Duration(sleepTime) * time.Second)
    }

    // ANSI escape code to clear the screen
    fmt.Print("\x1b[H\x1b[2J")
}


// Formats a colored bracketed symbol prefix for terminal output lines.
//
// @Parameters
// - bracketColor:  The ANSI color for the surrounding brackets
// - symbolColor:  The ANSI color for the symbol inside the brackets
// - symbol:  The symbol to display between the brackets
//
// @Returns
// - The formatted prefix string with color reset applied
//
func CtextPrefix(bracketColor string, symbolColor string,
                 symbol string) string {
    return bracketColor + "[" + symbolColor + symbol + bracketColor + "]" +
           color.AnsiReset
}


// Joins alternating color/text pairs into one colored line behind an
// optional prefix. A trailing unpaired string is appended uncolored.
//
// @Parameters
// - prefix:  The formatted prefix, empty string for none
// - separator:  The separator between the prefix and the line body
// - pairs:  Variadic alternating ANSI color and text values
//
// @Returns
// - The assembled line with a final color reset
//
func CtextMulti(prefix string, separator string, pairs ...string) string {
    var builder strings.Builder

    // If a prefix was passed in, lead with it
    if prefix != "" {
        builder.WriteString(prefix)
        builder.WriteString(separator)
        builder.WriteString(" ")
    }

    // Iterate through the pairs two at a time
    for index := 0; index+1 < len(pairs); index += 2 {
        builder.WriteString(pairs[index])
        builder.WriteString(pairs[index+1])
    }

    // If an odd trailing value remains, append it plain
    if len(pairs)%2 != 0 {
        builder.WriteString(pairs[len(pairs)-1])
    }

    builder.WriteString(color.AnsiReset)

    return builder.String()
}


// Renders a solid background-colored block for previewing a sampled color.
//
// @Parameters
// - red:  The red channel in [0,255]
// - green:  The green channel in [0,255]
// - blue:  The blue channel in [0,255]
// - width:  The block width in terminal columns
//
// @Returns
// - The colored block string with a final color reset
//
func Swatch(red uint8, green uint8, blue uint8, width int) string {
    if width < 1 {
        width = 1
    }

    return fmt.Sprintf("\033[48;2;%d;%d;%dm%s%s", red, green, blue,
                       strings.Repeat(" ", width), color.AnsiReset)
}
