package classify

import (
    "strings"

    "github.com/hueward/Hue-Hound/pkg/hue"
)

// Palette-name words that imply a base without naming it directly
var baseSynonyms = map[string]hue.Base{
    "grey":    hue.BaseGray,
    "olive":   hue.BaseGreen,
    "lime":    hue.BaseGreen,
    "navy":    hue.BaseBlue,
    "azure":   hue.BaseBlue,
    "magenta": hue.BasePurple,
    "fuchsia": hue.BasePurple,
    "violet":  hue.BasePurple,
    "indigo":  hue.BasePurple,
    "crimson": hue.BaseRed,
    "maroon":  hue.BaseRed,
}

// Modifier words of compound perceptual names mapped to the base they lean
// toward
var modifierTokens = map[string]hue.Base{
    "reddish":  hue.BaseRed,
    "orangish": hue.BaseOrange,
    "yellowish": hue.BaseYellow,
    "greenish": hue.BaseGreen,
    "bluish":   hue.BaseBlue,
    "purplish": hue.BasePurple,
    "pinkish":  hue.BasePink,
    "brownish": hue.BaseBrown,
}


// Extracts the base implied by a web palette name, scanning tokens from
// last to first so the head noun wins ("Dark Olive Green" reads green, not
// olive).
//
// @Parameters
// - name:  The palette entry display name
//
// @Returns
// - The implied base, BaseNone when no token resolves
//
func baseFromWebName(name string) hue.Base {
    tokens := strings.Fields(strings.ToLower(name))

    // Iterate through the tokens back to front
    for index := len(tokens) - 1; index >= 0; index-- {
        if base := hue.BaseFromToken(tokens[index]); base != hue.BaseNone {
            return base
        }

        if base, known := baseSynonyms[tokens[index]]; known {
            return base
        }
    }

    return hue.BaseNone
}


// Extracts the compound hint carried by an extended perceptual name: the
// "-ish" modifier word and the last base token ("Vivid Greenish Blue"
// yields green leaning toward blue).
//
// @Parameters
// - name:  The extended palette entry display name
//
// @Returns
// - The modifier base, BaseNone when the name is not compound
// - The main base, BaseNone when no base token appears
//
func hintsFromExtendedName(name string) (hue.Base, hue.Base) {
    tokens := strings.Fields(strings.ToLower(name))
    modifier := hue.BaseNone
    main := hue.BaseNone

    // Iterate through the tokens recording the modifier and the last base
    for _, token := range tokens {
        if base, known := modifierTokens[token]; known {
            modifier = base
            continue
        }

        if base := hue.BaseFromToken(token); base != hue.BaseNone {
            main = base
        }
    }

    return modifier, main
}
