// Package classify runs the full naming pipeline for one sampled color:
// palette matching, hue geometry, and alias scoring, folded into the three
// human-facing labels.
package classify

import (
    "fmt"

    "github.com/lucasb-eyer/go-colorful"

    "github.com/hueward/Hue-Hound/pkg/alias"
    "github.com/hueward/Hue-Hound/pkg/hue"
    "github.com/hueward/Hue-Hound/pkg/palette"
)

// Suffix appended to palette labels resolved by search instead of exact match
const closestSuffix = " (closest)"

// Saturation at or below which the extended label comes from the neutral
// brightness tiers instead of a palette search
const neutralTierSat = 0.04

// Result is the full verdict for one sample: the three display labels plus
// the intermediate values the terminal surfaces render
type Result struct {
    Hex              string   `json:"hex"`
    Simple           string   `json:"simple"`
    Web              string   `json:"web"`
    Extended         string   `json:"extended"`
    Base             hue.Base `json:"-"`
    Alias            string   `json:"alias,omitempty"`
    Hue              float64  `json:"hue"`
    Saturation       float64  `json:"saturation"`
    Brightness       float64  `json:"brightness"`
    WebDistance      float64  `json:"web_distance"`
    ExtendedDistance float64  `json:"extended_distance"`
}


// Classifies one color given as byte channels.
//
// @Parameters
// - red:  The red channel in [0,255]
// - green:  The green channel in [0,255]
// - blue:  The blue channel in [0,255]
//
// @Returns
// - The classification result
//
func Classify(red uint8, green uint8, blue uint8) Result {
    hexKey := fmt.Sprintf("%02X%02X%02X", red, green, blue)

    return classifyChannels(float64(red)/255.0, float64(green)/255.0,
                            float64(blue)/255.0, hexKey)
}


// Classifies one color given as a hex string.
//
// @Parameters
// - hexStr:  The raw hex string, with or without a leading '#'
//
// @Returns
// - The classification result
// - Error if the hex string is malformed, otherwise nil
//
func ClassifyHex(hexStr string) (Result, error) {
    hexKey := palette.NormalizeHex(hexStr)

    red, green, blue, ok := palette.ParseHex(hexKey)
    if !ok {
        return Result{}, fmt.Errorf("malformed hex color %q", hexStr)
    }

    return classifyChannels(red, green, blue, hexKey), nil
}


// Runs the pipeline on normalized channels: extended label first (it feeds
// the perceptual hints), then the web-palette contest (it feeds the base
// hint), then minimal naming and alias scoring.
//
// @Parameters
// - red:  The red channel in [0,1]
// - green:  The green channel in [0,1]
// - blue:  The blue channel in [0,1]
// - hexKey:  The normalized 6-digit uppercase hex key
//
// @Returns
// - The classification result
//
func classifyChannels(red float64, green float64, blue float64,
                      hexKey string) Result {
    hueDeg, saturation, brightness := colorful.Color{R: red, G: green,
                                                     B: blue}.Hsv()

    result := Result{
        Hex:        hexKey,
        Hue:        hueDeg,
        Saturation: saturation,
        Brightness: brightness,
    }

    result.Extended, result.ExtendedDistance =
        extendedLabel(red, green, blue, hexKey, saturation, brightness)
    result.Web, result.WebDistance = webLabel(red, green, blue, hexKey)

    // The web palette's own nearest name supplies the base hint even when
    // the supplementary palette wins the display contest
    webMatch := palette.Web.Nearest(red, green, blue, hexKey)
    isccModifier, isccBase := hintsFromExtendedName(
        trimClosest(result.Extended))

    hints := hue.Hints{
        CSSBase:      baseFromWebName(webMatch.Entry.Name),
        ISCCModifier: isccModifier,
        ISCCBase:     isccBase,
    }

    naming := hue.MinimalName(hueDeg, saturation, brightness, hints)
    result.Base = naming.Base

    result.Alias = alias.NearestAlias(naming.Base, isccBase, hueDeg,
                                      saturation, brightness)
    result.Simple = composeSimple(naming, result.Alias)

    return result
}


// Resolves the extended perceptual label: pure white and black short
// circuit, near-neutral samples bucket into brightness tiers, everything
// else searches the extended palette.
//
// @Parameters
// - red:  The red channel in [0,1]
// - green:  The green channel in [0,1]
// - blue:  The blue channel in [0,1]
// - hexKey:  The normalized 6-digit uppercase hex key
// - saturation:  The saturation of the sample in [0,1]
// - brightness:  The brightness of the sample in [0,1]
//
// @Returns
// - The extended display label
// - The squared match distance, zero for short circuits and tiers
//
func extendedLabel(red float64, green float64, blue float64, hexKey string,
                   saturation float64,
                   brightness float64) (string, float64) {
    // The two extreme corners never go through a search
    if hexKey == "FFFFFF" {
        return "White", 0.0
    }

    if hexKey == "000000" {
        return "Black", 0.0
    }

    // Near-neutral samples take a deliberate tier, not a nearest match, so
    // no closest suffix applies
    if saturation <= neutralTierSat {
        return neutralTier(brightness), 0.0
    }

    match := palette.Extended.Nearest(red, green, blue, hexKey)

    label := match.Entry.Name
    if !match.Exact {
        label += closestSuffix
    }

    return label, match.Distance
}


// Buckets a near-neutral sample into one of the five brightness tiers.
//
// @Parameters
// - brightness:  The brightness of the sample in [0,1]
//
// @Returns
// - The tier display label
//
func neutralTier(brightness float64) string {
    switch {
    case brightness >= 0.92:
        return "White"
    case brightness >= 0.70:
        return "Light Gray"
    case brightness >= 0.42:
        return "Medium Gray"
    case brightness >= 0.15:
        return "Dark Gray"
    default:
        return "Black"
    }
}


// Runs the two-palette contest for the web-facing label: a web palette
// exact match wins outright, then a supplementary exact match, then the
// smaller search distance with the web palette winning ties.
//
// @Parameters
// - red:  The red channel in [0,1]
// - green:  The green channel in [0,1]
// - blue:  The blue channel in [0,1]
// - hexKey:  The normalized 6-digit uppercase hex key
//
// @Returns
// - The web display label
// - The squared distance of the winning match
//
func webLabel(red float64, green float64, blue float64,
              hexKey string) (string, float64) {
    webMatch := palette.Web.Nearest(red, green, blue, hexKey)
    if webMatch.Exact {
        return webMatch.Entry.Name, 0.0
    }

    supplementaryMatch := palette.Supplementary.Nearest(red, green, blue,
                                                        hexKey)
    if supplementaryMatch.Exact {
        return supplementaryMatch.Entry.Name, 0.0
    }

    winner := palette.CloserMatch(webMatch, supplementaryMatch)

    return winner.Entry.Name + closestSuffix, winner.Distance
}


// Composes the simple label from the minimal name and the alias verdict.
// A teal alias on a plain green or blue name forces the boundary compound
// so the label reads as the blend teal actually is.
//
// @Parameters
// - naming:  The minimal-name verdict
// - aliasName:  The winning alias, empty string when none
//
// @Returns
// - The simple display label
//
func composeSimple(naming hue.Naming, aliasName string) string {
    if aliasName == "" {
        return naming.Name
    }

    if aliasName == "teal" && !naming.Compound &&
       (naming.Base == hue.BaseGreen || naming.Base == hue.BaseBlue) {
        modifier := hue.BaseGreen
        if naming.Base == hue.BaseGreen {
            modifier = hue.BaseBlue
        }

        if compound, ok := hue.CompoundName(modifier, naming.Base); ok {
            return compound + " (teal)"
        }
    }

    return naming.Name + " (" + aliasName + ")"
}


// Strips the closest suffix off a palette label before hint parsing.
//
// @Parameters
// - label:  The display label, possibly suffixed
//
// @Returns
// - The bare palette name
//
func trimClosest(label string) string {
    if len(label) > len(closestSuffix) &&
       label[len(label)-len(closestSuffix):] == closestSuffix {
        return label[:len(label)-len(closestSuffix)]
    }

    return label
}
