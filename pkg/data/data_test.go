package data_test

import (
    "testing"

    "github.com/hueward/Hue-Hound/pkg/data"
    "github.com/stretchr/testify/assert"
)


func TestStringSliceHasItem(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Make string slice of arbitrary data
    slice := []string{"plain", "ansi", "json"}

    // Set up slice of items that exist in above slice
    trues := []string{"plain", "ansi", "json"}

    // Iterate through slice of items and test to make sure they exist
    for _, truth := range trues {
        assert.True(data.StringSliceHasItem(slice, truth))
    }

    // Set up slice of items that do not exist in above slice
    falses := []string{"", "PLAIN", "yaml", "ans"}

    // Iterate through slice of items and test to make sure they fail
    for _, falacy := range falses {
        assert.False(data.StringSliceHasItem(slice, falacy))
    }
}


func TestClamp(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Integers clamp to the inclusive range
    assert.Equal(5, data.Clamp(5, 0, 10))
    assert.Equal(0, data.Clamp(-3, 0, 10))
    assert.Equal(10, data.Clamp(42, 0, 10))

    // Floats clamp the same way
    assert.Equal(0.28, data.Clamp(0.28, 0.0, 1.0))
    assert.Equal(0.0, data.Clamp(-0.5, 0.0, 1.0))
    assert.Equal(1.0, data.Clamp(1.5, 0.0, 1.0))

    // Range edges are members of the range
    assert.Equal(0, data.Clamp(0, 0, 10))
    assert.Equal(10, data.Clamp(10, 0, 10))
}
