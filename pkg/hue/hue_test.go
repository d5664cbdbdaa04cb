package hue_test

import (
    "testing"

    "github.com/hueward/Hue-Hound/pkg/hue"
    "github.com/stretchr/testify/assert"
)


func TestMinimalNameAchromaticGates(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    tests := []struct {
        hueDeg     float64
        saturation float64
        brightness float64
        name       string
    } {
        {120.0, 0.90, 0.05, "Black"},
        {200.0, 0.50, 0.10, "Black"},
        {40.0, 0.08, 0.97, "White"},
        {300.0, 0.12, 0.94, "White"},
        {180.0, 0.10, 0.50, "Gray"},
        {0.0, 0.02, 0.30, "Gray"},
    }

    // Iterate through slice of struct and pass its members into function
    for _, test := range tests {
        naming := hue.MinimalName(test.hueDeg, test.saturation,
                                  test.brightness, hue.Hints{})
        assert.Equal(test.name, naming.Name)
        assert.False(naming.Compound)
    }
}


func TestMinimalNameBaseArcs(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Midtone vivid samples well away from any boundary
    tests := []struct {
        hueDeg float64
        name   string
    } {
        {5.0, "Red"},
        {60.0, "Yellow"},
        {120.0, "Green"},
        {210.0, "Blue"},
        {270.0, "Purple"},
        {325.0, "Pink"},
    }

    // Iterate through slice of struct and pass its members into function
    for _, test := range tests {
        naming := hue.MinimalName(test.hueDeg, 0.90, 0.70, hue.Hints{})
        assert.Equal(test.name, naming.Name)
    }
}


func TestMinimalNameBoundarySymmetry(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // A sample sitting exactly on the red/orange boundary must compound
    naming := hue.MinimalName(18.0, 0.95, 0.70, hue.Hints{})
    assert.Equal("Reddish-orange", naming.Name)
    assert.True(naming.Compound)

    // Just beneath the boundary the compound flips direction
    naming = hue.MinimalName(17.0, 0.95, 0.70, hue.Hints{})
    assert.Equal("Orangish-red", naming.Name)
    assert.True(naming.Compound)
}


func TestMinimalNamePinkGates(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Very light desaturated sample just above 0 degrees biases to pink
    naming := hue.MinimalName(5.0, 0.40, 0.90, hue.Hints{})
    assert.Equal(hue.BasePink, naming.Base)

    // Low saturation sample approaching 360 degrees biases to pink
    naming = hue.MinimalName(350.0, 0.30, 0.80, hue.Hints{})
    assert.Equal(hue.BasePink, naming.Base)

    // A vivid sample at the same angle stays red
    naming = hue.MinimalName(5.0, 0.95, 0.70, hue.Hints{})
    assert.Equal(hue.BaseRed, naming.Base)
}


func TestMinimalNameBrownCarveOut(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Dark muted samples in the orange band resolve to brown
    naming := hue.MinimalName(30.0, 0.70, 0.40, hue.Hints{})
    assert.Equal("Brown", naming.Name)
    assert.Equal(hue.BaseBrown, naming.Base)
    assert.False(naming.Compound)

    // Extremely vivid bright samples in the same band hold orange
    naming = hue.MinimalName(30.0, 0.95, 0.60, hue.Hints{})
    assert.Equal(hue.BaseOrange, naming.Base)

    // Dark browns still take the dark prefix
    naming = hue.MinimalName(30.0, 0.70, 0.15, hue.Hints{})
    assert.Equal("Dark brown", naming.Name)
}


func TestMinimalNameGrayishCompound(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Washed-out chromatic midtones compound with gray
    naming := hue.MinimalName(120.0, 0.20, 0.50, hue.Hints{})
    assert.Equal("Grayish-green", naming.Name)
    assert.True(naming.Compound)

    // Washed-out bright samples resolve to white instead
    naming = hue.MinimalName(120.0, 0.20, 0.90, hue.Hints{})
    assert.Equal("White", naming.Name)
}


func TestMinimalNameLightDarkPrefix(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    tests := []struct {
        saturation float64
        brightness float64
        name       string
    } {
        {0.60, 0.92, "Light green"},
        {0.60, 0.15, "Dark green"},
        {0.60, 0.50, "Green"},
        // Below the prefix saturation cutoff but above the grayish one
        {0.26, 0.92, "Green"},
    }

    // Iterate through slice of struct and pass its members into function
    for _, test := range tests {
        naming := hue.MinimalName(120.0, test.saturation, test.brightness,
                                  hue.Hints{})
        assert.Equal(test.name, naming.Name)
    }
}


func TestMinimalNameCSSHintOverride(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Just past the green/blue boundary with a green web palette hint the
    // base pulls back to green and compounds across the shared boundary
    hints := hue.Hints{CSSBase: hue.BaseGreen}
    naming := hue.MinimalName(172.0, 0.50, 0.50, hints)
    assert.Equal(hue.BaseGreen, naming.Base)
    assert.Equal("Bluish-green", naming.Name)

    // A non-adjacent hint never pulls the base
    hints = hue.Hints{CSSBase: hue.BaseRed}
    naming = hue.MinimalName(172.0, 0.50, 0.50, hints)
    assert.Equal(hue.BaseBlue, naming.Base)
}


func TestMinimalNameHintCorroboration(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Ten degrees off the green/blue boundary sits outside the bare
    // ambiguity threshold
    naming := hue.MinimalName(180.0, 1.00, 0.50, hue.Hints{})
    assert.Equal("Blue", naming.Name)
    assert.False(naming.Compound)

    // A corroborating perceptual hint widens the threshold into compounding
    hints := hue.Hints{ISCCModifier: hue.BaseGreen, ISCCBase: hue.BaseBlue}
    naming = hue.MinimalName(180.0, 1.00, 0.50, hints)
    assert.Equal("Greenish-blue", naming.Name)
    assert.True(naming.Compound)
}


func TestAngularDistance(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    tests := []struct {
        first    float64
        second   float64
        distance float64
    } {
        {0.0, 10.0, 10.0},
        {350.0, 10.0, 20.0},
        {5.0, 355.0, 10.0},
        {180.0, 0.0, 180.0},
    }

    // Iterate through slice of test structs
    for _, test := range tests {
        assert.InDelta(test.distance,
                       hue.AngularDistance(test.first, test.second), 1e-9)
    }
}


func TestBoundaryBetween(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Fixed boundaries hold their angle regardless of vividness
    angle, adjacent := hue.BoundaryBetween(hue.BaseGreen, hue.BaseBlue,
                                           0.50, 0.50)
    assert.True(adjacent)
    assert.InDelta(170.0, angle, 1e-9)

    // Argument order does not matter
    angle, adjacent = hue.BoundaryBetween(hue.BaseBlue, hue.BaseGreen,
                                          0.50, 0.50)
    assert.True(adjacent)
    assert.InDelta(170.0, angle, 1e-9)

    // Non-adjacent bases share no boundary
    _, adjacent = hue.BoundaryBetween(hue.BaseRed, hue.BaseBlue, 0.50, 0.50)
    assert.False(adjacent)
}


func TestDynamicBoundaryAngles(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // The orange/yellow boundary climbs with vividness
    tests := []struct {
        saturation float64
        brightness float64
        angle      float64
    } {
        {0.90, 0.90, 43.0},
        {0.70, 0.70, 40.0},
        {0.50, 0.40, 35.0},
        {0.30, 0.55, 37.5},
    }

    // Iterate through slice of struct and pass its members into function
    for _, test := range tests {
        angle, adjacent := hue.BoundaryBetween(hue.BaseOrange,
                                               hue.BaseYellow,
                                               test.saturation,
                                               test.brightness)
        assert.True(adjacent)
        assert.InDelta(test.angle, angle, 1e-9)
    }

    // The purple/pink boundary recedes for pastels, extends for magentas
    tests = []struct {
        saturation float64
        brightness float64
        angle      float64
    } {
        {0.40, 0.90, 300.0},
        {0.90, 0.80, 310.0},
        {0.60, 0.60, 305.0},
    }

    // Iterate through slice of struct and pass its members into function
    for _, test := range tests {
        angle, adjacent := hue.BoundaryBetween(hue.BasePurple, hue.BasePink,
                                               test.saturation,
                                               test.brightness)
        assert.True(adjacent)
        assert.InDelta(test.angle, angle, 1e-9)
    }
}


func TestCompoundName(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // The eleven composable pairs include both directions of green/blue
    name, ok := hue.CompoundName(hue.BaseGreen, hue.BaseBlue)
    assert.True(ok)
    assert.Equal("Greenish-blue", name)

    name, ok = hue.CompoundName(hue.BaseBlue, hue.BaseGreen)
    assert.True(ok)
    assert.Equal("Bluish-green", name)

    // The pink/red boundary composes in neither direction
    _, ok = hue.CompoundName(hue.BasePink, hue.BaseRed)
    assert.False(ok)
    _, ok = hue.CompoundName(hue.BaseRed, hue.BasePink)
    assert.False(ok)
}


func TestBaseFromToken(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Valid tokens resolve to their base
    assert.Equal(hue.BaseRed, hue.BaseFromToken("red"))
    assert.Equal(hue.BaseGray, hue.BaseFromToken("gray"))
    assert.Equal(hue.BaseBrown, hue.BaseFromToken("brown"))

    // Unknown tokens resolve to none
    assert.Equal(hue.BaseNone, hue.BaseFromToken("teal"))
    assert.Equal(hue.BaseNone, hue.BaseFromToken(""))
}


func TestBaseChromatic(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Set chromatic values and test them in loop
    trues := []hue.Base{hue.BaseRed, hue.BaseGreen, hue.BasePink,
                        hue.BaseBrown}

    for _, truth := range trues {
        assert.True(truth.IsChromatic())
    }

    // Set achromatic values and test them in loop
    falses := []hue.Base{hue.BaseNone, hue.BaseBlack, hue.BaseWhite,
                         hue.BaseGray}

    for _, falacy := range falses {
        assert.False(falacy.IsChromatic())
    }
}
