package hue

// Base is one of the eleven coarse color categories a sample resolves to
type Base int

const (
    BaseNone Base = iota
    BaseBlack
    BaseWhite
    BaseGray
    BaseRed
    BaseOrange
    BaseYellow
    BaseGreen
    BaseBlue
    BasePurple
    BasePink
    BaseBrown
)

// Lowercase tokens for each base, indexed by Base value
var baseTokens = []string{"", "black", "white", "gray", "red", "orange",
                          "yellow", "green", "blue", "purple", "pink", "brown"}

// Capitalized display names for each base, indexed by Base value
var baseNames = []string{"", "Black", "White", "Gray", "Red", "Orange",
                         "Yellow", "Green", "Blue", "Purple", "Pink", "Brown"}


// Returns the lowercase token for the base color.
//
// @Returns
// - The lowercase base token, empty string for BaseNone
//
func (base Base) String() string {
    // Guard against values outside the enumerated set
    if base < BaseNone || base > BaseBrown {
        return ""
    }

    return baseTokens[base]
}


// Returns the capitalized display name for the base color.
//
// @Returns
// - The capitalized base name, empty string for BaseNone
//
func (base Base) DisplayName() string {
    // Guard against values outside the enumerated set
    if base < BaseNone || base > BaseBrown {
        return ""
    }

    return baseNames[base]
}


// Reports whether the base participates in chromatic naming
// (black, white, and gray are brightness/saturation gates instead).
//
// @Returns
// - true/false boolean depending on whether the base is chromatic or not
//
func (base Base) IsChromatic() bool {
    return base >= BaseRed && base <= BaseBrown
}


// Looks up the base matching a lowercase token.
//
// @Parameters
// - token:  The lowercase token to resolve (e.g. "red", "gray")
//
// @Returns
// - The matching base, BaseNone when the token is not a base token
//
func BaseFromToken(token string) Base {
    // Iterate through the base tokens checking the arg against each
    for index, baseToken := range baseTokens {
        // Skip the empty BaseNone token slot
        if index == 0 {
            continue
        }

        if baseToken == token {
            return Base(index)
        }
    }

    return BaseNone
}
