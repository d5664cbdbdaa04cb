package alias

import "github.com/hueward/Hue-Hound/pkg/hue"

// Rule is one colloquial-name candidate: the bases it may attach to, an
// optional hue window, saturation/brightness ranges, and the minimum score
// it must reach to be offered
type Rule struct {
    Name      string
    Bases     []hue.Base
    Neutral   bool
    HueCenter float64
    HueRadius float64
    SatMin    float64
    SatMax    float64
    ValMin    float64
    ValMax    float64
    MinScore  float64
}

// Extra acceptance margin required for names prone to firing on samples
// that barely fit them
var minScoreExtras = map[string]float64{
    "silver":    0.06,
    "slate":     0.06,
    "charcoal":  0.06,
    "turquoise": 0.02,
    "lime":      0.02,
    "olive":     0.02,
}

// Per-name boundary-gate thresholds for multi-base hue rules; names not
// listed use the 18 degree default
var gateThresholds = map[string]float64{
    "teal":       20.0,
    "turquoise":  22.0,
    "aqua":       20.0,
    "cyan":       20.0,
    "lime":       16.0,
    "chartreuse": 16.0,
    "coral":      17.0,
    "rust":       17.0,
    "periwinkle": 22.0,
    "mauve":      20.0,
    "orchid":     20.0,
    "indigo":     20.0,
    "ultramarine": 20.0,
}

// The full rule table. Several names appear under multiple rules with
// different windows (five teal, four lime); all are evaluated and the best
// score per name survives. The overlaps are deliberate tuning, do not
// collapse them.
var rules = []Rule{
    // Reds and pinks
    {Name: "maroon", Bases: []hue.Base{hue.BaseRed},
     HueCenter: 0, HueRadius: 15,
     SatMin: 0.50, SatMax: 1.00, ValMin: 0.18, ValMax: 0.55, MinScore: 0.45},
    {Name: "crimson", Bases: []hue.Base{hue.BaseRed, hue.BasePink},
     HueCenter: 345, HueRadius: 15,
     SatMin: 0.60, SatMax: 1.00, ValMin: 0.45, ValMax: 0.85, MinScore: 0.48},
    {Name: "scarlet", Bases: []hue.Base{hue.BaseRed},
     HueCenter: 8, HueRadius: 12,
     SatMin: 0.70, SatMax: 1.00, ValMin: 0.55, ValMax: 0.95, MinScore: 0.52},
    {Name: "vermilion", Bases: []hue.Base{hue.BaseRed, hue.BaseOrange},
     HueCenter: 12, HueRadius: 14,
     SatMin: 0.75, SatMax: 1.00, ValMin: 0.60, ValMax: 0.95, MinScore: 0.50},
    {Name: "brick",
     Bases: []hue.Base{hue.BaseRed, hue.BaseOrange, hue.BaseBrown},
     HueCenter: 10, HueRadius: 18,
     SatMin: 0.45, SatMax: 0.90, ValMin: 0.30, ValMax: 0.65, MinScore: 0.50},
    {Name: "rust",
     Bases: []hue.Base{hue.BaseOrange, hue.BaseBrown, hue.BaseRed},
     HueCenter: 18, HueRadius: 15,
     SatMin: 0.60, SatMax: 1.00, ValMin: 0.35, ValMax: 0.70, MinScore: 0.50},
    {Name: "burgundy", Bases: []hue.Base{hue.BaseRed, hue.BasePink},
     HueCenter: 340, HueRadius: 18,
     SatMin: 0.45, SatMax: 1.00, ValMin: 0.15, ValMax: 0.45, MinScore: 0.48},
    {Name: "wine",
     Bases: []hue.Base{hue.BaseRed, hue.BasePurple, hue.BasePink},
     HueCenter: 335, HueRadius: 20,
     SatMin: 0.40, SatMax: 0.95, ValMin: 0.18, ValMax: 0.48, MinScore: 0.50},
    {Name: "salmon",
     Bases: []hue.Base{hue.BaseRed, hue.BaseOrange, hue.BasePink},
     HueCenter: 10, HueRadius: 16,
     SatMin: 0.30, SatMax: 0.85, ValMin: 0.65, ValMax: 1.00, MinScore: 0.40},
    {Name: "coral",
     Bases: []hue.Base{hue.BaseRed, hue.BaseOrange, hue.BasePink},
     HueCenter: 8, HueRadius: 18,
     SatMin: 0.35, SatMax: 0.90, ValMin: 0.70, ValMax: 1.00, MinScore: 0.40},
    {Name: "rose", Bases: []hue.Base{hue.BasePink, hue.BaseRed},
     HueCenter: 345, HueRadius: 18,
     SatMin: 0.35, SatMax: 0.90, ValMin: 0.55, ValMax: 0.95, MinScore: 0.46},
    {Name: "blush", Bases: []hue.Base{hue.BasePink},
     HueCenter: 352, HueRadius: 15,
     SatMin: 0.10, SatMax: 0.45, ValMin: 0.75, ValMax: 1.00, MinScore: 0.48},
    {Name: "fuchsia", Bases: []hue.Base{hue.BasePink, hue.BasePurple},
     HueCenter: 320, HueRadius: 15,
     SatMin: 0.60, SatMax: 1.00, ValMin: 0.60, ValMax: 1.00, MinScore: 0.50},
    {Name: "magenta", Bases: []hue.Base{hue.BasePurple, hue.BasePink},
     HueCenter: 308, HueRadius: 12,
     SatMin: 0.70, SatMax: 1.00, ValMin: 0.55, ValMax: 1.00, MinScore: 0.52},
    {Name: "hot pink", Bases: []hue.Base{hue.BasePink},
     HueCenter: 330, HueRadius: 15,
     SatMin: 0.55, SatMax: 1.00, ValMin: 0.75, ValMax: 1.00, MinScore: 0.50},
    {Name: "raspberry", Bases: []hue.Base{hue.BasePink, hue.BaseRed},
     HueCenter: 337, HueRadius: 12,
     SatMin: 0.55, SatMax: 1.00, ValMin: 0.45, ValMax: 0.80, MinScore: 0.52},

    // Oranges, browns, yellows
    {Name: "tangerine", Bases: []hue.Base{hue.BaseOrange},
     HueCenter: 33, HueRadius: 10,
     SatMin: 0.75, SatMax: 1.00, ValMin: 0.80, ValMax: 1.00, MinScore: 0.52},
    {Name: "apricot", Bases: []hue.Base{hue.BaseOrange, hue.BaseYellow},
     HueCenter: 38, HueRadius: 14,
     SatMin: 0.25, SatMax: 0.65, ValMin: 0.75, ValMax: 1.00, MinScore: 0.46},
    {Name: "peach",
     Bases: []hue.Base{hue.BaseOrange, hue.BasePink, hue.BaseYellow},
     HueCenter: 30, HueRadius: 16,
     SatMin: 0.15, SatMax: 0.55, ValMin: 0.80, ValMax: 1.00, MinScore: 0.44},
    {Name: "amber", Bases: []hue.Base{hue.BaseOrange, hue.BaseYellow},
     HueCenter: 45, HueRadius: 10,
     SatMin: 0.70, SatMax: 1.00, ValMin: 0.65, ValMax: 0.95, MinScore: 0.50},
    {Name: "gold", Bases: []hue.Base{hue.BaseYellow, hue.BaseOrange},
     HueCenter: 48, HueRadius: 10,
     SatMin: 0.65, SatMax: 1.00, ValMin: 0.70, ValMax: 1.00, MinScore: 0.48},
    {Name: "mustard", Bases: []hue.Base{hue.BaseYellow, hue.BaseOrange},
     HueCenter: 52, HueRadius: 10,
     SatMin: 0.55, SatMax: 0.95, ValMin: 0.45, ValMax: 0.75, MinScore: 0.50},
    {Name: "ochre", Bases: []hue.Base{hue.BaseYellow, hue.BaseOrange},
     HueCenter: 45, HueRadius: 12,
     SatMin: 0.50, SatMax: 0.90, ValMin: 0.40, ValMax: 0.70, MinScore: 0.52},
    {Name: "caramel", Bases: []hue.Base{hue.BaseBrown},
     HueCenter: 35, HueRadius: 15,
     SatMin: 0.45, SatMax: 0.85, ValMin: 0.45, ValMax: 0.70, MinScore: 0.50},
    {Name: "chocolate", Bases: []hue.Base{hue.BaseBrown},
     HueCenter: 28, HueRadius: 14,
     SatMin: 0.50, SatMax: 1.00, ValMin: 0.18, ValMax: 0.42, MinScore: 0.48},
    {Name: "coffee", Bases: []hue.Base{hue.BaseBrown},
     HueCenter: 30, HueRadius: 15,
     SatMin: 0.35, SatMax: 0.75, ValMin: 0.25, ValMax: 0.50, MinScore: 0.50},
    {Name: "mahogany", Bases: []hue.Base{hue.BaseBrown},
     HueCenter: 15, HueRadius: 12,
     SatMin: 0.55, SatMax: 1.00, ValMin: 0.22, ValMax: 0.45, MinScore: 0.52},
    {Name: "sienna", Bases: []hue.Base{hue.BaseBrown},
     HueCenter: 22, HueRadius: 12,
     SatMin: 0.55, SatMax: 0.95, ValMin: 0.35, ValMax: 0.60, MinScore: 0.52},
    {Name: "umber", Bases: []hue.Base{hue.BaseBrown},
     HueCenter: 35, HueRadius: 12,
     SatMin: 0.40, SatMax: 0.80, ValMin: 0.20, ValMax: 0.42, MinScore: 0.54},
    {Name: "tan", Bases: []hue.Base{hue.BaseOrange, hue.BaseYellow},
     HueCenter: 40, HueRadius: 15,
     SatMin: 0.20, SatMax: 0.50, ValMin: 0.60, ValMax: 0.90, MinScore: 0.46},
    {Name: "beige",
     Bases: []hue.Base{hue.BaseYellow, hue.BaseOrange, hue.BaseWhite},
     HueCenter: 48, HueRadius: 18,
     SatMin: 0.08, SatMax: 0.30, ValMin: 0.80, ValMax: 1.00, MinScore: 0.44},
    {Name: "sand", Bases: []hue.Base{hue.BaseYellow, hue.BaseOrange},
     HueCenter: 45, HueRadius: 15,
     SatMin: 0.18, SatMax: 0.45, ValMin: 0.65, ValMax: 0.92, MinScore: 0.48},
    {Name: "khaki", Bases: []hue.Base{hue.BaseYellow, hue.BaseGreen},
     HueCenter: 58, HueRadius: 14,
     SatMin: 0.25, SatMax: 0.60, ValMin: 0.55, ValMax: 0.85, MinScore: 0.48},
    {Name: "canary", Bases: []hue.Base{hue.BaseYellow},
     HueCenter: 58, HueRadius: 8,
     SatMin: 0.70, SatMax: 1.00, ValMin: 0.85, ValMax: 1.00, MinScore: 0.50},
    {Name: "lemon", Bases: []hue.Base{hue.BaseYellow},
     HueCenter: 60, HueRadius: 8,
     SatMin: 0.80, SatMax: 1.00, ValMin: 0.80, ValMax: 1.00, MinScore: 0.52},

    // Greens
    {Name: "lime", Bases: []hue.Base{hue.BaseGreen, hue.BaseYellow},
     HueCenter: 75, HueRadius: 15,
     SatMin: 0.60, SatMax: 1.00, ValMin: 0.70, ValMax: 1.00, MinScore: 0.46},
    {Name: "lime", Bases: []hue.Base{hue.BaseGreen, hue.BaseYellow},
     HueCenter: 80, HueRadius: 12,
     SatMin: 0.70, SatMax: 1.00, ValMin: 0.60, ValMax: 0.95, MinScore: 0.44},
    {Name: "lime", Bases: []hue.Base{hue.BaseYellow, hue.BaseGreen},
     HueCenter: 72, HueRadius: 10,
     SatMin: 0.75, SatMax: 1.00, ValMin: 0.75, ValMax: 1.00, MinScore: 0.48},
    {Name: "lime", Bases: []hue.Base{hue.BaseGreen},
     HueCenter: 85, HueRadius: 15,
     SatMin: 0.65, SatMax: 1.00, ValMin: 0.65, ValMax: 1.00, MinScore: 0.50},
    {Name: "chartreuse", Bases: []hue.Base{hue.BaseYellow, hue.BaseGreen},
     HueCenter: 78, HueRadius: 10,
     SatMin: 0.70, SatMax: 1.00, ValMin: 0.75, ValMax: 1.00, MinScore: 0.52},
    {Name: "olive", Bases: []hue.Base{hue.BaseYellow, hue.BaseGreen},
     HueCenter: 65, HueRadius: 12,
     SatMin: 0.45, SatMax: 0.95, ValMin: 0.30, ValMax: 0.60, MinScore: 0.46},
    {Name: "olive", Bases: []hue.Base{hue.BaseGreen, hue.BaseYellow},
     HueCenter: 72, HueRadius: 14,
     SatMin: 0.40, SatMax: 0.90, ValMin: 0.25, ValMax: 0.55, MinScore: 0.48},
    {Name: "sage", Bases: []hue.Base{hue.BaseGreen},
     HueCenter: 95, HueRadius: 20,
     SatMin: 0.12, SatMax: 0.40, ValMin: 0.45, ValMax: 0.75, MinScore: 0.48},
    {Name: "fern", Bases: []hue.Base{hue.BaseGreen},
     HueCenter: 100, HueRadius: 18,
     SatMin: 0.40, SatMax: 0.80, ValMin: 0.35, ValMax: 0.65, MinScore: 0.52},
    {Name: "forest", Bases: []hue.Base{hue.BaseGreen},
     HueCenter: 120, HueRadius: 25,
     SatMin: 0.50, SatMax: 1.00, ValMin: 0.15, ValMax: 0.45, MinScore: 0.46},
    {Name: "emerald", Bases: []hue.Base{hue.BaseGreen},
     HueCenter: 140, HueRadius: 15,
     SatMin: 0.60, SatMax: 1.00, ValMin: 0.45, ValMax: 0.85, MinScore: 0.50},
    {Name: "jade", Bases: []hue.Base{hue.BaseGreen},
     HueCenter: 150, HueRadius: 15,
     SatMin: 0.35, SatMax: 0.75, ValMin: 0.40, ValMax: 0.70, MinScore: 0.52},
    {Name: "kelly", Bases: []hue.Base{hue.BaseGreen},
     HueCenter: 125, HueRadius: 12,
     SatMin: 0.65, SatMax: 1.00, ValMin: 0.50, ValMax: 0.80, MinScore: 0.54},
    {Name: "mint", Bases: []hue.Base{hue.BaseGreen},
     HueCenter: 145, HueRadius: 18,
     SatMin: 0.20, SatMax: 0.55, ValMin: 0.75, ValMax: 1.00, MinScore: 0.46},
    {Name: "seafoam", Bases: []hue.Base{hue.BaseGreen},
     HueCenter: 155, HueRadius: 18,
     SatMin: 0.15, SatMax: 0.50, ValMin: 0.75, ValMax: 1.00, MinScore: 0.50},

    // The teal family, tuned window by window
    {Name: "teal", Bases: []hue.Base{hue.BaseGreen, hue.BaseBlue},
     HueCenter: 175, HueRadius: 25,
     SatMin: 0.25, SatMax: 1.00, ValMin: 0.15, ValMax: 0.70, MinScore: 0.40},
    {Name: "teal", Bases: []hue.Base{hue.BaseGreen, hue.BaseBlue},
     HueCenter: 180, HueRadius: 18,
     SatMin: 0.45, SatMax: 1.00, ValMin: 0.25, ValMax: 0.65, MinScore: 0.45},
    {Name: "teal", Bases: []hue.Base{hue.BaseGreen, hue.BaseBlue},
     HueCenter: 168, HueRadius: 22,
     SatMin: 0.30, SatMax: 0.95, ValMin: 0.20, ValMax: 0.60, MinScore: 0.42},
    {Name: "teal", Bases: []hue.Base{hue.BaseBlue, hue.BaseGreen},
     HueCenter: 185, HueRadius: 30,
     SatMin: 0.20, SatMax: 0.80, ValMin: 0.30, ValMax: 0.75, MinScore: 0.48},
    {Name: "teal", Bases: []hue.Base{hue.BaseBlue, hue.BaseGreen},
     HueCenter: 172, HueRadius: 20,
     SatMin: 0.55, SatMax: 1.00, ValMin: 0.10, ValMax: 0.55, MinScore: 0.44},
    {Name: "turquoise", Bases: []hue.Base{hue.BaseGreen, hue.BaseBlue},
     HueCenter: 177, HueRadius: 22,
     SatMin: 0.55, SatMax: 1.00, ValMin: 0.62, ValMax: 1.00, MinScore: 0.50},
    {Name: "aqua", Bases: []hue.Base{hue.BaseGreen, hue.BaseBlue},
     HueCenter: 185, HueRadius: 14,
     SatMin: 0.35, SatMax: 1.00, ValMin: 0.75, ValMax: 1.00, MinScore: 0.48},
    {Name: "cyan", Bases: []hue.Base{hue.BaseBlue, hue.BaseGreen},
     HueCenter: 187, HueRadius: 12,
     SatMin: 0.50, SatMax: 1.00, ValMin: 0.70, ValMax: 1.00, MinScore: 0.52},

    // Blues
    {Name: "sky", Bases: []hue.Base{hue.BaseBlue},
     HueCenter: 203, HueRadius: 12,
     SatMin: 0.25, SatMax: 0.60, ValMin: 0.80, ValMax: 1.00, MinScore: 0.48},
    {Name: "azure", Bases: []hue.Base{hue.BaseBlue},
     HueCenter: 210, HueRadius: 12,
     SatMin: 0.45, SatMax: 0.90, ValMin: 0.70, ValMax: 1.00, MinScore: 0.50},
    {Name: "cerulean", Bases: []hue.Base{hue.BaseBlue},
     HueCenter: 205, HueRadius: 10,
     SatMin: 0.60, SatMax: 1.00, ValMin: 0.55, ValMax: 0.90, MinScore: 0.54},
    {Name: "cobalt", Bases: []hue.Base{hue.BaseBlue},
     HueCenter: 215, HueRadius: 15,
     SatMin: 0.60, SatMax: 1.00, ValMin: 0.35, ValMax: 0.75, MinScore: 0.50},
    {Name: "denim", Bases: []hue.Base{hue.BaseBlue},
     HueCenter: 213, HueRadius: 15,
     SatMin: 0.30, SatMax: 0.85, ValMin: 0.30, ValMax: 0.70, MinScore: 0.52},
    {Name: "navy", Bases: []hue.Base{hue.BaseBlue},
     HueCenter: 225, HueRadius: 25,
     SatMin: 0.50, SatMax: 1.00, ValMin: 0.05, ValMax: 0.35, MinScore: 0.42},
    {Name: "steel", Bases: []hue.Base{hue.BaseBlue},
     HueCenter: 207, HueRadius: 18,
     SatMin: 0.15, SatMax: 0.45, ValMin: 0.40, ValMax: 0.75, MinScore: 0.50},
    {Name: "periwinkle", Bases: []hue.Base{hue.BaseBlue, hue.BasePurple},
     HueCenter: 235, HueRadius: 15,
     SatMin: 0.25, SatMax: 0.60, ValMin: 0.70, ValMax: 1.00, MinScore: 0.50},
    {Name: "indigo", Bases: []hue.Base{hue.BaseBlue, hue.BasePurple},
     HueCenter: 255, HueRadius: 15,
     SatMin: 0.60, SatMax: 1.00, ValMin: 0.25, ValMax: 0.60, MinScore: 0.50},
    {Name: "ultramarine", Bases: []hue.Base{hue.BaseBlue, hue.BasePurple},
     HueCenter: 243, HueRadius: 10,
     SatMin: 0.70, SatMax: 1.00, ValMin: 0.45, ValMax: 0.85, MinScore: 0.54},

    // Purples and violets
    {Name: "violet", Bases: []hue.Base{hue.BasePurple},
     HueCenter: 270, HueRadius: 15,
     SatMin: 0.45, SatMax: 0.90, ValMin: 0.55, ValMax: 0.95, MinScore: 0.48},
    {Name: "lavender", Bases: []hue.Base{hue.BasePurple},
     HueCenter: 275, HueRadius: 20,
     SatMin: 0.12, SatMax: 0.45, ValMin: 0.75, ValMax: 1.00, MinScore: 0.44},
    {Name: "lilac", Bases: []hue.Base{hue.BasePurple},
     HueCenter: 285, HueRadius: 15,
     SatMin: 0.15, SatMax: 0.50, ValMin: 0.70, ValMax: 0.95, MinScore: 0.48},
    {Name: "plum", Bases: []hue.Base{hue.BasePurple},
     HueCenter: 295, HueRadius: 15,
     SatMin: 0.35, SatMax: 0.75, ValMin: 0.35, ValMax: 0.65, MinScore: 0.50},
    {Name: "orchid", Bases: []hue.Base{hue.BasePurple, hue.BasePink},
     HueCenter: 302, HueRadius: 12,
     SatMin: 0.40, SatMax: 0.80, ValMin: 0.60, ValMax: 0.95, MinScore: 0.52},
    {Name: "mauve", Bases: []hue.Base{hue.BasePurple, hue.BasePink},
     HueCenter: 315, HueRadius: 18,
     SatMin: 0.15, SatMax: 0.45, ValMin: 0.55, ValMax: 0.85, MinScore: 0.48},
    {Name: "eggplant", Bases: []hue.Base{hue.BasePurple},
     HueCenter: 290, HueRadius: 15,
     SatMin: 0.40, SatMax: 0.90, ValMin: 0.15, ValMax: 0.40, MinScore: 0.50},
    {Name: "grape", Bases: []hue.Base{hue.BasePurple},
     HueCenter: 280, HueRadius: 12,
     SatMin: 0.55, SatMax: 1.00, ValMin: 0.35, ValMax: 0.70, MinScore: 0.54},

    // Neutral aliases, scored on saturation/brightness fit alone
    {Name: "silver", Bases: []hue.Base{hue.BaseGray, hue.BaseWhite},
     Neutral: true,
     SatMin: 0.00, SatMax: 0.12, ValMin: 0.70, ValMax: 0.90, MinScore: 0.50},
    {Name: "slate", Bases: []hue.Base{hue.BaseGray, hue.BaseBlue},
     Neutral: true,
     SatMin: 0.04, SatMax: 0.22, ValMin: 0.30, ValMax: 0.62, MinScore: 0.50},
    {Name: "charcoal", Bases: []hue.Base{hue.BaseGray, hue.BaseBlack},
     Neutral: true,
     SatMin: 0.00, SatMax: 0.15, ValMin: 0.12, ValMax: 0.30, MinScore: 0.48},
    {Name: "ash", Bases: []hue.Base{hue.BaseGray},
     Neutral: true,
     SatMin: 0.00, SatMax: 0.10, ValMin: 0.55, ValMax: 0.78, MinScore: 0.52},
    {Name: "smoke", Bases: []hue.Base{hue.BaseGray, hue.BaseWhite},
     Neutral: true,
     SatMin: 0.00, SatMax: 0.14, ValMin: 0.62, ValMax: 0.85, MinScore: 0.54},
    {Name: "ivory", Bases: []hue.Base{hue.BaseWhite, hue.BaseYellow},
     Neutral: true,
     SatMin: 0.02, SatMax: 0.12, ValMin: 0.92, ValMax: 1.00, MinScore: 0.50},
    {Name: "cream", Bases: []hue.Base{hue.BaseWhite, hue.BaseYellow},
     Neutral: true,
     SatMin: 0.08, SatMax: 0.22, ValMin: 0.90, ValMax: 1.00, MinScore: 0.48},
    {Name: "snow", Bases: []hue.Base{hue.BaseWhite},
     Neutral: true,
     SatMin: 0.00, SatMax: 0.06, ValMin: 0.95, ValMax: 1.00, MinScore: 0.52},
    {Name: "taupe", Bases: []hue.Base{hue.BaseGray, hue.BaseBrown},
     Neutral: true,
     SatMin: 0.08, SatMax: 0.25, ValMin: 0.45, ValMax: 0.70, MinScore: 0.52},
    {Name: "pearl", Bases: []hue.Base{hue.BaseWhite, hue.BaseGray},
     Neutral: true,
     SatMin: 0.00, SatMax: 0.10, ValMin: 0.85, ValMax: 0.95, MinScore: 0.54},
    {Name: "jet", Bases: []hue.Base{hue.BaseBlack},
     Neutral: true,
     SatMin: 0.00, SatMax: 0.25, ValMin: 0.00, ValMax: 0.10, MinScore: 0.50},
    {Name: "ebony", Bases: []hue.Base{hue.BaseBlack, hue.BaseGray},
     Neutral: true,
     SatMin: 0.00, SatMax: 0.30, ValMin: 0.05, ValMax: 0.16, MinScore: 0.54},
}
