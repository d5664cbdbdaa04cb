package validate_test

import (
    "testing"

    "github.com/hueward/Hue-Hound/internal/validate"
    "github.com/stretchr/testify/assert"
)


func TestValidateHexColor(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Set up slice of hex colors that pass validation
    trues := []string{"FF0000", "#ff8000", "  008080  ", "AbCdEf"}

    // Iterate through slice of items and test to make sure they pass
    for _, truth := range trues {
        assert.Equal(nil, validate.ValidateHexColor(truth))
    }

    // Set up slice of hex colors that fail validation
    falses := []string{"", "FFF", "GG0000", "FF00000", "##FF0000"}

    // Iterate through slice of items and test to make sure they fail
    for _, falacy := range falses {
        assert.NotEqual(nil, validate.ValidateHexColor(falacy))
    }
}


func TestValidateHistorySize(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Set up slice of history sizes that pass validation
    trues := []int{1, 50, 1000}

    // Iterate through slice of items and test to make sure they pass
    for _, truth := range trues {
        assert.True(validate.ValidateHistorySize(truth))
    }

    // Set up slice of history sizes that fail validation
    falses := []int{0, -1, -50}

    // Iterate through slice of items and test to make sure they fail
    for _, falacy := range falses {
        assert.False(validate.ValidateHistorySize(falacy))
    }
}


func TestValidateOutputFormat(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Set up slice of output formats that pass validation
    trues := []string{"plain", "ansi", "json"}

    // Iterate through slice of items and test to make sure they pass
    for _, truth := range trues {
        assert.True(validate.ValidateOutputFormat(truth))
    }

    // Set up slice of output formats that fail validation
    falses := []string{"", "yaml", "ANSI", "text"}

    // Iterate through slice of items and test to make sure they fail
    for _, falacy := range falses {
        assert.False(validate.ValidateOutputFormat(falacy))
    }
}


func TestValidatePath(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // A well-formed relative path survives cleaning untouched
    path, err := validate.ValidatePath("logs/hue-hound.log")
    assert.Equal(nil, err)
    assert.Equal("logs/hue-hound.log", path)

    // Redundant slashes are cleaned away
    path, err = validate.ValidatePath("logs//hue-hound.log")
    assert.Equal(nil, err)
    assert.Equal("logs/hue-hound.log", path)

    // An empty path is rejected
    _, err = validate.ValidatePath("")
    assert.NotEqual(nil, err)

    // Paths with invalid characters are rejected
    _, err = validate.ValidatePath("logs/hue hound.log")
    assert.NotEqual(nil, err)
    _, err = validate.ValidatePath("logs/hue*.log")
    assert.NotEqual(nil, err)
}


func TestValidateWatchInterval(t *testing.T) {
    // Make reusable assert instance
    assert := assert.New(t)

    // Set up slice of watch intervals that pass validation
    trues := []int{100, 500, 5000}

    // Iterate through slice of items and test to make sure they pass
    for _, truth := range trues {
        assert.True(validate.ValidateWatchInterval(truth))
    }

    // Set up slice of watch intervals that fail validation
    falses := []int{0, 99, 5001, -500}

    // Iterate through slice of items and test to make sure they fail
    for _, falacy := range falses {
        assert.False(validate.ValidateWatchInterval(falacy))
    }
}
