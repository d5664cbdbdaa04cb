package palette

// Match is the outcome of a nearest-neighbor query against one palette
type Match struct {
    Entry    Entry
    Distance float64
    Exact    bool
}


// Finds the reference entry closest to a target color by squared Euclidean
// distance over normalized channels, short-circuiting on an exact hex key
// match. Ties resolve to the first entry in palette order.
//
// @Parameters
// - red:  The target red channel in [0,1]
// - green:  The target green channel in [0,1]
// - blue:  The target blue channel in [0,1]
// - hexKey:  Optional normalized hex key for the exact-match fast path,
//            empty string to skip it
//
// @Returns
// - The match with squared distance and exact flag
//
func (pal *Palette) Nearest(red float64, green float64, blue float64,
                            hexKey string) Match {
    // Check the exact-hex fast path before scanning
    if hexKey != "" {
        if entry, found := pal.Lookup(hexKey); found {
            return Match{Entry: entry, Distance: 0.0, Exact: true}
        }
    }

    best := Match{Distance: -1.0}

    // Scan the full palette keeping the first minimum encountered
    for _, entry := range pal.Entries {
        deltaRed := entry.R - red
        deltaGreen := entry.G - green
        deltaBlue := entry.B - blue
        distance := deltaRed*deltaRed + deltaGreen*deltaGreen +
                    deltaBlue*deltaBlue

        if best.Distance < 0.0 || distance < best.Distance {
            best = Match{Entry: entry, Distance: distance}
        }
    }

    return best
}


// Decides which of two palette matches supplies the display name. The
// first match wins exact ties, so callers pass the higher-precedence
// palette's match first.
//
// @Parameters
// - first:  The match from the higher-precedence palette
// - second:  The match from the lower-precedence palette
//
// @Returns
// - The winning match
//
func CloserMatch(first Match, second Match) Match {
    if second.Distance < first.Distance {
        return second
    }

    return first
}
