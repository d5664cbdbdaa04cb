package data

import (
    "golang.org/x/exp/constraints"
)


// Function that takes a slice and checks whether the target is a member
func StringSliceHasItem(slice []string, target string) bool {
    // Iterate over the slice and check for the target value
    for _, item := range slice {
        // If the current item equals the target string
        if item == target {
            return true
        }
    }
    return false
}


// Constrains a value to an inclusive range.
//
// @Parameters
// - value:  The value to constrain
// - lower:  The inclusive range minimum
// - upper:  The inclusive range maximum
//
// @Returns
// - The value clamped into [lower, upper]
//
func Clamp[Number constraints.Ordered](value Number, lower Number,
                                       upper Number) Number {
    // If the value is below the range floor
    if value < lower {
        return lower
    }

    // If the value is above the range ceiling
    if value > upper {
        return upper
    }

    return value
}
