package hue

// Hints carries the palette-derived nudges fed into minimal naming: the base
// implied by the web palette match and the compound implied by the extended
// perceptual match
type Hints struct {
    CSSBase      Base
    ISCCModifier Base
    ISCCBase     Base
}

// Naming is the minimal-name verdict for one sample
type Naming struct {
    Name     string
    Base     Base
    Compound bool
}


// Resolves the minimal human-facing name for one HSV sample. The gate order
// is load bearing: achromatic gates, then base resolution with special-case
// carve-outs and the CSS hint override, then the low-saturation grayish
// gate, then boundary compounding, then light/dark prefixing.
//
// @Parameters
// - hueDeg:  The hue angle of the sample in degrees [0,360)
// - saturation:  The saturation of the sample in [0,1]
// - brightness:  The brightness of the sample in [0,1]
// - hints:  Palette-derived base and compound hints
//
// @Returns
// - The naming verdict with resolved base and compound flag
//
func MinimalName(hueDeg float64, saturation float64, brightness float64,
                 hints Hints) Naming {
    // Near-black samples terminate before hue is consulted
    if brightness <= 0.10 {
        return Naming{Name: "Black", Base: BaseBlack}
    }

    // Near-white samples need both high brightness and low saturation
    if brightness >= 0.94 && saturation <= 0.12 {
        return Naming{Name: "White", Base: BaseWhite}
    }

    // Remaining desaturated samples are gray
    if saturation <= 0.10 {
        return Naming{Name: "Gray", Base: BaseGray}
    }

    // Resolve the base from hue with the pink/brown carve-outs applied first
    base := specialBase(hueDeg, saturation, brightness)
    if base == BaseNone {
        base = bucketBase(hueDeg, saturation, brightness)
    }

    // Let a well-known web palette name pull the base across a nearby
    // boundary when generic bucketing lands on the wrong side
    base = applyCSSOverride(base, hints.CSSBase, hueDeg, saturation,
                            brightness)

    // Washed-out chromatic samples compound with gray instead of a neighbor
    if saturation <= 0.24 {
        if base.IsChromatic() {
            if brightness >= 0.85 {
                return Naming{Name: "White", Base: BaseWhite}
            }

            return Naming{Name: "Grayish-" + base.String(), Base: base,
                          Compound: true}
        }

        return Naming{Name: "Gray", Base: BaseGray}
    }

    // Brown never compounds across hue boundaries
    if base == BaseBrown {
        return Naming{Name: applyPrefix("Brown", base, saturation,
                                        brightness), Base: base}
    }

    // Compose a boundary compound when the sample is close enough to a
    // neighboring base to be visually disputed
    if name, ok := boundaryCompound(base, hueDeg, saturation, brightness,
                                    hints); ok {
        return Naming{Name: name, Base: base, Compound: true}
    }

    return Naming{Name: applyPrefix(base.DisplayName(), base, saturation,
                                    brightness), Base: base}
}


// Applies the special-case gates evaluated before generic hue bucketing:
// light desaturated reds bias to pink and a brown region carves out of the
// dark orange/yellow band.
//
// @Parameters
// - hueDeg:  The hue angle of the sample in degrees [0,360)
// - saturation:  The saturation of the sample in [0,1]
// - brightness:  The brightness of the sample in [0,1]
//
// @Returns
// - The carved-out base, BaseNone when no gate fired
//
func specialBase(hueDeg float64, saturation float64,
                 brightness float64) Base {
    // Very light low-to-medium saturation reds just above 0 degrees
    if hueDeg < 14.0 && brightness >= 0.82 && saturation <= 0.50 {
        return BasePink
    }

    // Low/medium saturation reds approaching 360 degrees
    if hueDeg >= 345.0 && brightness >= 0.70 && saturation <= 0.55 {
        return BasePink
    }

    // Brown carve-out of the dark orange/yellow band, skipped for samples
    // vivid and bright enough to hold orange
    if hueDeg >= 14.0 && hueDeg < 50.0 && saturation >= 0.25 &&
       brightness >= 0.10 && brightness <= 0.62 &&
       !(saturation >= 0.90 && brightness >= 0.45) {
        return BaseBrown
    }

    return BaseNone
}


// Resolves the base color by walking the boundary angles in ascending order.
//
// @Parameters
// - hueDeg:  The hue angle of the sample in degrees [0,360)
// - saturation:  The saturation of the sample in [0,1]
// - brightness:  The brightness of the sample in [0,1]
//
// @Returns
// - The base owning the hue arc the sample falls in
//
func bucketBase(hueDeg float64, saturation float64,
                brightness float64) Base {
    // Iterate through the boundaries until one sits past the sample
    for _, boundary := range boundaries {
        if hueDeg < boundary.Angle(saturation, brightness) {
            return boundary.Lower
        }
    }

    // Angles past the pink/red boundary wrap around into red
    return BaseRed
}


// Overrides the computed base with the web palette hint when the two are
// adjacent and the sample sits within a vividness-dependent distance of
// their shared boundary.
//
// @Parameters
// - base:  The base resolved from hue geometry
// - hint:  The base implied by the web palette match
// - hueDeg:  The hue angle of the sample in degrees [0,360)
// - saturation:  The saturation of the sample in [0,1]
// - brightness:  The brightness of the sample in [0,1]
//
// @Returns
// - The possibly overridden base
//
func applyCSSOverride(base Base, hint Base, hueDeg float64,
                      saturation float64, brightness float64) Base {
    // Only a differing chromatic hint can pull the base
    if hint == BaseNone || hint == base || !hint.IsChromatic() {
        return base
    }

    // The hint must share a boundary with the computed base
    angle, adjacent := BoundaryBetween(base, hint, saturation, brightness)
    if !adjacent {
        return base
    }

    threshold := 12.0
    // Desaturated or very light samples give the hint more pull
    if saturation <= 0.35 || brightness >= 0.90 {
        threshold = 14.0
    }
    // Vivid bright samples trust the geometry more
    if saturation >= 0.85 && brightness >= 0.85 {
        threshold = 10.0
    }

    if AngularDistance(hueDeg, angle) <= threshold {
        return hint
    }

    return base
}


// Composes a compound name when the sample falls within the ambiguity
// threshold of the boundary nearest its base. The extended-palette hint may
// widen the threshold and redirect which side is the modifier.
//
// @Parameters
// - base:  The resolved base color
// - hueDeg:  The hue angle of the sample in degrees [0,360)
// - saturation:  The saturation of the sample in [0,1]
// - brightness:  The brightness of the sample in [0,1]
// - hints:  Palette-derived base and compound hints
//
// @Returns
// - The compound display name
// - true/false boolean depending on whether a compound composed
//
func boundaryCompound(base Base, hueDeg float64, saturation float64,
                      brightness float64, hints Hints) (string, bool) {
    var nearest *Boundary
    nearestDistance := 360.0

    // Find the nearest boundary flanking the base's hue arc
    for index := range boundaries {
        boundary := &boundaries[index]
        if boundary.Lower != base && boundary.Upper != base {
            continue
        }

        distance := AngularDistance(hueDeg, boundary.Angle(saturation,
                                                           brightness))
        if distance < nearestDistance {
            nearestDistance = distance
            nearest = boundary
        }
    }

    if nearest == nil {
        return "", false
    }

    // The hint corroborates when it names the same boundary pair
    corroborated := hintMatchesPair(hints, nearest.Lower, nearest.Upper)

    if nearestDistance > ambiguityThreshold(nearest.Lower, nearest.Upper,
                                            saturation, brightness,
                                            corroborated) {
        return "", false
    }

    // The neighbor across the boundary supplies the modifier
    modifier := nearest.Lower
    if modifier == base {
        modifier = nearest.Upper
    }

    // A corroborating hint may flip which side carries the compound
    if corroborated {
        if name, ok := CompoundName(hints.ISCCModifier,
                                    hints.ISCCBase); ok {
            return name, true
        }
    }

    return CompoundName(modifier, base)
}


// Reports whether the extended-palette compound hint names the given
// boundary pair.
//
// @Parameters
// - hints:  Palette-derived base and compound hints
// - lower:  The base beneath the boundary
// - upper:  The base above the boundary
//
// @Returns
// - true/false boolean depending on whether the hint matches the pair
//
func hintMatchesPair(hints Hints, lower Base, upper Base) bool {
    if hints.ISCCModifier == BaseNone || hints.ISCCBase == BaseNone {
        return false
    }

    return (hints.ISCCModifier == lower && hints.ISCCBase == upper) ||
           (hints.ISCCModifier == upper && hints.ISCCBase == lower)
}


// Computes the angular ambiguity threshold for a boundary pair, widened for
// pairs known to be visually disputed, nudged by saturation/brightness
// extremes, and widened further under hint corroboration.
//
// @Parameters
// - lower:  The base beneath the boundary
// - upper:  The base above the boundary
// - saturation:  The saturation of the sample in [0,1]
// - brightness:  The brightness of the sample in [0,1]
// - corroborated:  Whether the extended-palette hint names the same pair
//
// @Returns
// - The ambiguity threshold in degrees
//
func ambiguityThreshold(lower Base, upper Base, saturation float64,
                        brightness float64, corroborated bool) float64 {
    threshold := 5.6

    // Widen the disputed pairs
    switch {
    case lower == BaseGreen && upper == BaseBlue:
        threshold = 8.0
    case lower == BaseBlue && upper == BasePurple:
        threshold = 7.0
    case lower == BaseOrange && upper == BaseYellow:
        threshold = 6.5
    case lower == BasePurple && upper == BasePink:
        threshold = 6.5
    }

    // Desaturated hues are harder to place
    if saturation <= 0.35 {
        threshold += 1.1
    }
    // Vivid bright samples have crisp category membership
    if saturation >= 0.92 && brightness >= 0.85 {
        threshold -= 0.4
    }

    if corroborated {
        threshold += 2.0
    }

    return threshold
}


// Prepends the light/dark prefix where it applies: chromatic bases only,
// plain names only, saturation at least 0.28.
//
// @Parameters
// - name:  The plain base display name
// - base:  The resolved base color
// - saturation:  The saturation of the sample in [0,1]
// - brightness:  The brightness of the sample in [0,1]
//
// @Returns
// - The possibly prefixed display name
//
func applyPrefix(name string, base Base, saturation float64,
                 brightness float64) string {
    if !base.IsChromatic() || saturation < 0.28 {
        return name
    }

    if brightness >= 0.88 {
        return "Light " + base.String()
    }

    if brightness <= 0.18 {
        return "Dark " + base.String()
    }

    return name
}
