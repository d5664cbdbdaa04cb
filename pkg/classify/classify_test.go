package classify_test

import (
    "strings"
    "testing"

    "github.com/hueward/Hue-Hound/pkg/classify"
    "github.com/hueward/Hue-Hound/pkg/hue"
    "github.com/stretchr/testify/assert"
)


func TestClassifyHexCornerColors(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Pure white short circuits every surface without a closest suffix
    result, err := classify.ClassifyHex("FFFFFF")
    assert.Equal(nil, err)
    assert.Equal("White", result.Simple)
    assert.Equal("White", result.Web)
    assert.Equal("White", result.Extended)
    assert.InDelta(0.0, result.WebDistance, 1e-12)
    assert.InDelta(0.0, result.ExtendedDistance, 1e-12)

    // Pure black behaves the same way
    result, err = classify.ClassifyHex("000000")
    assert.Equal(nil, err)
    assert.Equal("Black", result.Simple)
    assert.Equal("Black", result.Web)
    assert.Equal("Black", result.Extended)
}


func TestClassifyHexWebExactMatches(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Exact web palette keys resolve without the closest suffix
    tests := []struct {
        hexStr string
        web    string
    } {
        {"F0F8FF", "Alice Blue"},
        {"FAEBD7", "Antique White"},
        {"008080", "Teal"},
    }

    // Iterate through slice of struct and pass its members into function
    for _, test := range tests {
        result, err := classify.ClassifyHex(test.hexStr)
        assert.Equal(nil, err)
        assert.Equal(test.web, result.Web)
    }
}


func TestClassifyHexClosestSuffix(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // A hex absent from every palette takes the suffix on both labels
    result, err := classify.ClassifyHex("071832")
    assert.Equal(nil, err)
    assert.True(strings.HasSuffix(result.Web, " (closest)"))
    assert.True(strings.HasSuffix(result.Extended, " (closest)"))

    // The very dark blue resolves to the navy alias
    assert.Equal(hue.BaseBlue, result.Base)
    assert.Equal("Blue (navy)", result.Simple)
}


func TestClassifyHexRedFamily(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    tests := []struct {
        hexStr string
        simple string
    } {
        {"990F02", "Red (scarlet)"},
        {"900603", "Red"},
        {"A91A0D", "Red (scarlet)"},
    }

    // Iterate through slice of struct and pass its members into function
    for _, test := range tests {
        result, err := classify.ClassifyHex(test.hexStr)
        assert.Equal(nil, err)
        assert.Equal(test.simple, result.Simple)
        assert.Equal(hue.BaseRed, result.Base)
    }
}


func TestClassifyHexTealRegion(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Samples across the green/blue boundary all read as teal blends
    tealHexes := []string{"008080", "006D5B", "66B2B2", "009999"}

    for _, tealHex := range tealHexes {
        result, err := classify.ClassifyHex(tealHex)
        assert.Equal(nil, err)
        assert.Contains(result.Simple, "(teal)")
    }

    // The canonical teal spells out the full blend
    result, err := classify.ClassifyHex("008080")
    assert.Equal(nil, err)
    assert.Equal("Greenish-blue (teal)", result.Simple)
    assert.InDelta(180.0, result.Hue, 0.01)
    assert.InDelta(1.0, result.Saturation, 1e-9)
    assert.InDelta(128.0/255.0, result.Brightness, 1e-9)
}


func TestClassifyHexBoundaryCompound(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // A vivid sample on the red/orange boundary compounds with no alias
    result, err := classify.ClassifyHex("FF4D00")
    assert.Equal(nil, err)
    assert.Equal("Reddish-orange", result.Simple)
    assert.Equal("", result.Alias)
}


func TestClassifyHexNeutralTiers(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Near-neutral samples tier by brightness with no closest suffix
    tests := []struct {
        hexStr   string
        extended string
    } {
        {"F8F8F8", "White"},
        {"C0C0C0", "Light Gray"},
        {"B0B0B0", "Medium Gray"},
        {"303030", "Dark Gray"},
        {"202020", "Black"},
    }

    // Iterate through slice of struct and pass its members into function
    for _, test := range tests {
        result, err := classify.ClassifyHex(test.hexStr)
        assert.Equal(nil, err)
        assert.Equal(test.extended, result.Extended)
        assert.InDelta(0.0, result.ExtendedDistance, 1e-12)
    }
}


func TestClassifyHexIdempotent(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Repeated classification of the same key is byte-identical
    hexes := []string{"008080", "990F02", "071832", "FAEBD7", "808080"}

    for _, hexStr := range hexes {
        first, err := classify.ClassifyHex(hexStr)
        assert.Equal(nil, err)

        second, err := classify.ClassifyHex(hexStr)
        assert.Equal(nil, err)
        assert.Equal(first, second)
    }
}


func TestClassifyHexNormalization(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Leading hash and lowercase input normalize to the same verdict
    bare, err := classify.ClassifyHex("008080")
    assert.Equal(nil, err)

    hashed, err := classify.ClassifyHex("#008080")
    assert.Equal(nil, err)
    assert.Equal(bare, hashed)

    lowered, err := classify.ClassifyHex("  #008080  ")
    assert.Equal(nil, err)
    assert.Equal(bare, lowered)
}


func TestClassifyHexMalformed(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Malformed keys return an error and a zero result
    badInputs := []string{"", "FFF", "12345", "GGGGGG", "#FF00000"}

    for _, badInput := range badInputs {
        result, err := classify.ClassifyHex(badInput)
        assert.NotEqual(nil, err)
        assert.Equal("", result.Hex)
    }
}


func TestClassifyChannels(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // The byte-channel entry point formats its own hex key
    result := classify.Classify(255, 0, 0)
    assert.Equal("FF0000", result.Hex)
    assert.Equal("Red", result.Web)

    // Both entry points agree on identical input
    fromHex, err := classify.ClassifyHex("FF0000")
    assert.Equal(nil, err)
    assert.Equal(fromHex, result)
}
