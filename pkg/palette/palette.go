package palette

import (
    _ "embed"
    "regexp"
    "strconv"
    "strings"

    "gopkg.in/yaml.v3"
)

//go:embed data/web.yml
var webData []byte

//go:embed data/supplementary.yml
var supplementaryData []byte

//go:embed data/extended.yml
var extendedData []byte

// Pattern an entry hex key must match after normalization
var hexPattern = regexp.MustCompile(`^[0-9A-F]{6}$`)

// Entry is one named reference color with its normalized channels
type Entry struct {
    Hex  string  `yaml:"hex"`
    Name string  `yaml:"name"`
    R    float64 `yaml:"-"`
    G    float64 `yaml:"-"`
    B    float64 `yaml:"-"`
}

// Palette is an immutable ordered collection of reference entries with a
// hex index for exact-match lookups
type Palette struct {
    Name    string
    Entries []Entry
    index   map[string]int
}

// The three reference palettes, built once from embedded data before any
// classification call can read them
var (
    Web           = mustLoad("web", webData)
    Supplementary = mustLoad("supplementary", supplementaryData)
    Extended      = mustLoad("extended", extendedData)
)


// Normalizes a hex key to the canonical uppercase 6-digit form with no
// leading marker.
//
// @Parameters
// - hexStr:  The raw hex string, with or without a leading '#'
//
// @Returns
// - The normalized hex key
//
func NormalizeHex(hexStr string) string {
    return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(hexStr),
                                              "#"))
}


// Parses a normalized hex key into three channel values in [0,1].
//
// @Parameters
// - hexKey:  The normalized 6-digit uppercase hex key
//
// @Returns
// - The red, green, and blue channels in [0,1]
// - true/false boolean depending on whether the key parsed cleanly
//
func parseChannels(hexKey string) (float64, float64, float64, bool) {
    // Reject keys that are not exactly six hex digits
    if !hexPattern.MatchString(hexKey) {
        return 0, 0, 0, false
    }

    red, errRed := strconv.ParseUint(hexKey[0:2], 16, 8)
    green, errGreen := strconv.ParseUint(hexKey[2:4], 16, 8)
    blue, errBlue := strconv.ParseUint(hexKey[4:6], 16, 8)
    if errRed != nil || errGreen != nil || errBlue != nil {
        return 0, 0, 0, false
    }

    return float64(red) / 255.0, float64(green) / 255.0,
           float64(blue) / 255.0, true
}


// Parses a normalized hex key into three channel values in [0,1], the
// exported form of the loader's channel parser.
//
// @Parameters
// - hexKey:  The normalized 6-digit uppercase hex key
//
// @Returns
// - The red, green, and blue channels in [0,1]
// - true/false boolean depending on whether the key parsed cleanly
//
func ParseHex(hexKey string) (float64, float64, float64, bool) {
    return parseChannels(hexKey)
}


// Builds a palette from raw YAML rows. Rows whose hex key cannot be parsed
// into three valid byte channels are dropped rather than failing startup.
//
// @Parameters
// - name:  The palette's identifying name used in logs and tests
// - rawData:  The YAML document of hex/name rows
//
// @Returns
// - The initialized palette
// - Error if the YAML document itself cannot be decoded, otherwise nil
//
func Load(name string, rawData []byte) (*Palette, error) {
    var rows []Entry

    // Decode the YAML rows into entry structs
    err := yaml.Unmarshal(rawData, &rows)
    if err != nil {
        return nil, err
    }

    built := &Palette{
        Name:    name,
        Entries: make([]Entry, 0, len(rows)),
        index:   make(map[string]int, len(rows)),
    }

    // Iterate through the decoded rows validating each hex key
    for _, row := range rows {
        hexKey := NormalizeHex(row.Hex)

        red, green, blue, ok := parseChannels(hexKey)
        // Malformed rows are skipped, never fatal
        if !ok || row.Name == "" {
            continue
        }

        row.Hex = hexKey
        row.R = red
        row.G = green
        row.B = blue
        built.Entries = append(built.Entries, row)

        // First entry wins for duplicated hex keys
        if _, exists := built.index[hexKey]; !exists {
            built.index[hexKey] = len(built.Entries) - 1
        }
    }

    return built, nil
}


// Loads an embedded palette document, panicking on undecodable YAML since
// the data is compiled in and a failure is a build defect.
//
// @Parameters
// - name:  The palette's identifying name
// - rawData:  The embedded YAML document
//
// @Returns
// - The initialized palette
//
func mustLoad(name string, rawData []byte) *Palette {
    built, err := Load(name, rawData)
    if err != nil {
        panic("palette " + name + ": " + err.Error())
    }

    return built
}


// Reports the number of entries in the palette.
//
// @Returns
// - The entry count
//
func (pal *Palette) Size() int {
    return len(pal.Entries)
}


// Looks up an entry by exact normalized hex key.
//
// @Parameters
// - hexKey:  The normalized 6-digit uppercase hex key
//
// @Returns
// - The matching entry
// - true/false boolean depending on whether the key is present
//
func (pal *Palette) Lookup(hexKey string) (Entry, bool) {
    position, exists := pal.index[hexKey]
    if !exists {
        return Entry{}, false
    }

    return pal.Entries[position], true
}
