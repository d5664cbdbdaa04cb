package hue

import "math"

// Boundary is the dividing line between two adjacent bases on the hue circle,
// ordered counterclockwise (Lower owns the angles just beneath the boundary)
type Boundary struct {
    Lower Base
    Upper Base
    Angle func(saturation float64, brightness float64) float64
}

// The seven boundaries tiling the hue circle in ascending angle order.
// Red/orange, yellow/green, green/blue, blue/purple, and pink/red sit at
// fixed angles; orange/yellow and purple/pink drift with vividness because
// perceived category edges shift at different lightness/saturation.
var boundaries = []Boundary{
    {BaseRed, BaseOrange, fixedAngle(18.0)},
    {BaseOrange, BaseYellow, orangeYellowAngle},
    {BaseYellow, BaseGreen, fixedAngle(78.0)},
    {BaseGreen, BaseBlue, fixedAngle(170.0)},
    {BaseBlue, BasePurple, fixedAngle(250.0)},
    {BasePurple, BasePink, purplePinkAngle},
    {BasePink, BaseRed, fixedAngle(347.5)},
}

// Modifier+base pairs that may compose a compound name near a boundary.
// The pink/red boundary only composes in one direction.
var compoundNames = map[[2]Base]string{
    {BaseRed, BaseOrange}:    "Reddish-orange",
    {BaseOrange, BaseRed}:    "Orangish-red",
    {BaseOrange, BaseYellow}: "Orangish-yellow",
    {BaseYellow, BaseOrange}: "Yellowish-orange",
    {BaseYellow, BaseGreen}:  "Yellowish-green",
    {BaseGreen, BaseYellow}:  "Greenish-yellow",
    {BaseGreen, BaseBlue}:    "Greenish-blue",
    {BaseBlue, BaseGreen}:    "Bluish-green",
    {BaseBlue, BasePurple}:   "Bluish-purple",
    {BasePurple, BaseBlue}:   "Purplish-blue",
    {BasePurple, BasePink}:   "Purplish-pink",
}


// Wraps a constant boundary angle in the dynamic-angle signature.
//
// @Parameters
// - degrees:  The fixed angle of the boundary in degrees
//
// @Returns
// - A closure returning the fixed angle for any saturation/brightness
//
func fixedAngle(degrees float64) func(float64, float64) float64 {
    return func(saturation float64, brightness float64) float64 {
        return degrees
    }
}


// Computes the orange/yellow boundary angle, which climbs from 35 degrees
// for muted dark tones up to 43 degrees for vivid bright ones.
//
// @Parameters
// - saturation:  The saturation of the sample in [0,1]
// - brightness:  The brightness of the sample in [0,1]
//
// @Returns
// - The boundary angle in degrees
//
func orangeYellowAngle(saturation float64, brightness float64) float64 {
    switch {
    // Vivid and bright samples hold orange the longest
    case saturation >= 0.85 && brightness >= 0.80:
        return 43.0
    // Saturated midtones sit at the nominal edge
    case saturation >= 0.60 && brightness >= 0.60:
        return 40.0
    // Dark tones tip into yellow-family names early
    case brightness <= 0.45:
        return 35.0
    default:
        return 37.5
    }
}


// Computes the purple/pink boundary angle, which recedes toward purple for
// light pastel samples and extends for vivid magentas.
//
// @Parameters
// - saturation:  The saturation of the sample in [0,1]
// - brightness:  The brightness of the sample in [0,1]
//
// @Returns
// - The boundary angle in degrees
//
func purplePinkAngle(saturation float64, brightness float64) float64 {
    switch {
    // Light pastels read as pink well before the vivid edge
    case brightness >= 0.85 && saturation <= 0.55:
        return 300.0
    // Vivid bright magentas stay purple longer
    case saturation >= 0.80 && brightness >= 0.70:
        return 310.0
    default:
        return 305.0
    }
}


// Computes the shortest angular distance between two hue angles.
//
// @Parameters
// - first:  The first angle in degrees
// - second:  The second angle in degrees
//
// @Returns
// - The wrapped angular distance in [0,180]
//
func AngularDistance(first float64, second float64) float64 {
    distance := math.Mod(math.Abs(first-second), 360.0)
    // Take the short way around the circle
    if distance > 180.0 {
        distance = 360.0 - distance
    }

    return distance
}


// Finds the boundary shared by two bases and evaluates its angle.
//
// @Parameters
// - first:  One base of the candidate adjacent pair
// - second:  The other base of the candidate adjacent pair
// - saturation:  The saturation of the sample in [0,1]
// - brightness:  The brightness of the sample in [0,1]
//
// @Returns
// - The boundary angle in degrees
// - true/false boolean depending on whether the bases are adjacent
//
func BoundaryBetween(first Base, second Base, saturation float64,
                     brightness float64) (float64, bool) {
    // Iterate through the boundary table looking for the shared edge
    for _, boundary := range boundaries {
        if (boundary.Lower == first && boundary.Upper == second) ||
           (boundary.Lower == second && boundary.Upper == first) {
            return boundary.Angle(saturation, brightness), true
        }
    }

    return 0.0, false
}


// Looks up the compound display name for a modifier+base pairing.
//
// @Parameters
// - modifier:  The base supplying the "-ish" modifier
// - base:  The base carrying the compound name
//
// @Returns
// - The compound display name (e.g. "Reddish-orange")
// - true/false boolean depending on whether the pairing composes
//
func CompoundName(modifier Base, base Base) (string, bool) {
    name, ok := compoundNames[[2]Base{modifier, base}]
    return name, ok
}
