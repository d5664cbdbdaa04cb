// Package alias scores colloquial color names ("teal", "maroon", "navy")
// against an HSV sample and its resolved base, offering the best-fitting
// name only when it wins by a clear margin.
package alias

import (
    "math"
    "sort"

    "github.com/hueward/Hue-Hound/pkg/hue"
)

// Minimum score gap between the two best-scoring distinct names before the
// winner is offered at all
const distinctNameMargin = 0.05

// Hard ceiling on any rule's effective minimum score
const minScoreCap = 0.97

// Default boundary-gate threshold for names without a tuned entry
const defaultGateThreshold = 18.0

// candidate is one rule's accepted score during a query
type candidate struct {
    name  string
    score float64
}


// Finds the colloquial alias best describing one sample, or empty string
// when no rule qualifies or the two best distinct names are too close to
// call.
//
// @Parameters
// - effectiveBase:  The base resolved by minimal naming
// - isccBase:  The main base implied by the extended palette match,
//              BaseNone when absent
// - hueDeg:  The hue angle of the sample in degrees [0,360)
// - saturation:  The saturation of the sample in [0,1]
// - brightness:  The brightness of the sample in [0,1]
//
// @Returns
// - The winning alias name, empty string when none qualifies
//
func NearestAlias(effectiveBase hue.Base, isccBase hue.Base, hueDeg float64,
                  saturation float64, brightness float64) string {
    // Fall back to the perceptual hint when minimal naming gave no base
    if effectiveBase == hue.BaseNone {
        effectiveBase = isccBase
    }

    if effectiveBase == hue.BaseNone {
        return ""
    }

    bestByName := make(map[string]float64)

    // Iterate through the rule table keeping each name's best score
    for index := range rules {
        rule := &rules[index]

        score, accepted := scoreRule(rule, effectiveBase, isccBase, hueDeg,
                                     saturation, brightness)
        if !accepted {
            continue
        }

        if previous, seen := bestByName[rule.Name]; !seen ||
           score > previous {
            bestByName[rule.Name] = score
        }
    }

    if len(bestByName) == 0 {
        return ""
    }

    // Rank the surviving names best-first, breaking score ties by name so
    // the result is deterministic
    ranked := make([]candidate, 0, len(bestByName))
    for name, score := range bestByName {
        ranked = append(ranked, candidate{name: name, score: score})
    }

    sort.Slice(ranked, func(i int, j int) bool {
        if ranked[i].score != ranked[j].score {
            return ranked[i].score > ranked[j].score
        }

        return ranked[i].name < ranked[j].name
    })

    // Two distinct names inside the margin means no alias is trustworthy
    if len(ranked) >= 2 &&
       ranked[0].score-ranked[1].score < distinctNameMargin {
        return ""
    }

    return ranked[0].name
}


// Evaluates one rule against the sample, applying the base filters, range
// gates, the boundary gate for multi-base hue rules, and the effective
// minimum score.
//
// @Parameters
// - rule:  The rule under evaluation
// - effectiveBase:  The base resolved by minimal naming
// - isccBase:  The main base implied by the extended palette match
// - hueDeg:  The hue angle of the sample in degrees [0,360)
// - saturation:  The saturation of the sample in [0,1]
// - brightness:  The brightness of the sample in [0,1]
//
// @Returns
// - The rule's score
// - true/false boolean depending on whether the rule accepted the sample
//
func scoreRule(rule *Rule, effectiveBase hue.Base, isccBase hue.Base,
               hueDeg float64, saturation float64,
               brightness float64) (float64, bool) {
    // The rule must allow the resolved base
    if !allowsBase(rule, effectiveBase) {
        return 0.0, false
    }

    // A chromatic perceptual hint must also be allowed, keeping rules from
    // firing against the extended palette's read of the sample
    if isccBase.IsChromatic() && !allowsBase(rule, isccBase) {
        return 0.0, false
    }

    // Both range gates are inclusive on both ends
    if saturation < rule.SatMin || saturation > rule.SatMax ||
       brightness < rule.ValMin || brightness > rule.ValMax {
        return 0.0, false
    }

    var score float64

    if rule.Neutral {
        score = 0.55*rangeFit(saturation, rule.SatMin, rule.SatMax) +
                0.45*rangeFit(brightness, rule.ValMin, rule.ValMax)
    } else {
        distance := hue.AngularDistance(hueDeg, rule.HueCenter)
        // Samples outside the hue window are rejected outright
        if distance > rule.HueRadius {
            return 0.0, false
        }

        // Multi-base rules must sit near the boundary their bases share
        if len(rule.Bases) > 1 &&
           !passesBoundaryGate(rule, effectiveBase, hueDeg, saturation,
                               brightness) {
            return 0.0, false
        }

        hueProximity := 1.0 - distance/rule.HueRadius
        score = 0.58*hueProximity +
                0.22*rangeFit(saturation, rule.SatMin, rule.SatMax) +
                0.20*rangeFit(brightness, rule.ValMin, rule.ValMax)
    }

    if score < effectiveMinScore(rule) {
        return 0.0, false
    }

    return score, true
}


// Reports whether a rule lists the given base.
//
// @Parameters
// - rule:  The rule under evaluation
// - base:  The base to look for
//
// @Returns
// - true/false boolean depending on whether the base is allowed
//
func allowsBase(rule *Rule, base hue.Base) bool {
    for _, allowed := range rule.Bases {
        if allowed == base {
            return true
        }
    }

    return false
}


// Applies the boundary gate for multi-base hue rules: some boundary between
// the effective base and another allowed base must sit within the name's
// gate threshold of the sample.
//
// @Parameters
// - rule:  The rule under evaluation
// - effectiveBase:  The base resolved by minimal naming
// - hueDeg:  The hue angle of the sample in degrees [0,360)
// - saturation:  The saturation of the sample in [0,1]
// - brightness:  The brightness of the sample in [0,1]
//
// @Returns
// - true/false boolean depending on whether the gate passes
//
func passesBoundaryGate(rule *Rule, effectiveBase hue.Base, hueDeg float64,
                        saturation float64, brightness float64) bool {
    threshold := gateThreshold(rule.Name, saturation, brightness)

    // Iterate through the other allowed bases looking for a close boundary
    for _, other := range rule.Bases {
        if other == effectiveBase {
            continue
        }

        angle, adjacent := hue.BoundaryBetween(effectiveBase, other,
                                               saturation, brightness)
        if !adjacent {
            continue
        }

        if hue.AngularDistance(hueDeg, angle) <= threshold {
            return true
        }
    }

    return false
}


// Computes the boundary-gate threshold for a name, adjusted for saturation
// and brightness extremes.
//
// @Parameters
// - name:  The rule name
// - saturation:  The saturation of the sample in [0,1]
// - brightness:  The brightness of the sample in [0,1]
//
// @Returns
// - The gate threshold in degrees
//
func gateThreshold(name string, saturation float64,
                   brightness float64) float64 {
    threshold, tuned := gateThresholds[name]
    if !tuned {
        threshold = defaultGateThreshold
    }

    // Desaturated samples have wider plausible boundary regions
    if saturation <= 0.35 {
        threshold += 2.5
    }
    // Very bright samples blur category edges slightly
    if brightness >= 0.90 {
        threshold += 1.0
    }
    // Vivid strong samples have the crispest edges
    if saturation >= 0.90 && brightness >= 0.80 {
        threshold -= 1.0
    }

    return threshold
}


// Computes a rule's effective minimum score: the declared floor plus the
// global bump plus any per-name extra, capped below 1.
//
// @Parameters
// - rule:  The rule under evaluation
//
// @Returns
// - The effective minimum score
//
func effectiveMinScore(rule *Rule) float64 {
    minimum := rule.MinScore + 0.02
    minimum += minScoreExtras[rule.Name]

    return math.Min(minimum, minScoreCap)
}


// Scores how centrally a value sits inside an inclusive range, 1 at the
// midpoint falling off linearly toward the edges.
//
// @Parameters
// - value:  The sample value
// - lower:  The inclusive range minimum
// - upper:  The inclusive range maximum
//
// @Returns
// - The fit score in [0,1]
//
func rangeFit(value float64, lower float64, upper float64) float64 {
    halfWidth := (upper - lower) / 2.0
    if halfWidth <= 0.0 {
        if value == lower {
            return 1.0
        }

        return 0.0
    }

    center := (upper + lower) / 2.0
    fit := 1.0 - 0.70*math.Abs(value-center)/halfWidth

    return math.Max(0.0, fit)
}
