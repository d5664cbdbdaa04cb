package color

const (
    // ── Foreground (calm kennel palette) ─────────────────────────────────
    AshGray      = "\033[38;2;178;190;195m" // soft neutral gray
    BoneWhite    = "\033[38;2;245;242;230m" // warm near-white
    DuskBlue     = "\033[38;2;95;125;170m"  // muted evening blue
    FogLavender  = "\033[38;2;190;180;220m" // hazy lavender
    HoundBrown   = "\033[38;2;150;105;70m"  // short-coat brown
    KennelSlate  = "\033[38;2;110;125;140m" // slate blue-gray
    MossGreen    = "\033[38;2;130;160;110m" // muted moss
    PaleSand     = "\033[38;2;225;210;180m" // pale sand
    TrailOlive   = "\033[38;2;140;145;90m"  // dusty olive
    TwilightPlum = "\033[38;2;120;90;130m"  // subdued plum

    // ── Bright (intense FG for highlights) ───────────────────────────────
    BrightAmber   = "\033[38;2;255;190;60m"  // vivid amber
    BrightCoral   = "\033[38;2;255;125;110m" // bright coral
    BrightLime    = "\033[38;2;170;255;90m"  // neon lime
    BrightOrchid  = "\033[38;2;230;130;255m" // glowing orchid
    BrightScarlet = "\033[38;2;255;70;60m"   // hot scarlet
    BrightTeal    = "\033[38;2;60;220;200m"  // vivid teal
    ElectricCyan  = "\033[38;2;0;240;255m"   // glowing cyan
    HoundGold     = "\033[38;2;255;215;90m"  // collar-tag gold
    SignalMint    = "\033[38;2;130;255;190m" // fresh mint
    SnoutPink     = "\033[38;2;255;160;200m" // bright pink

    AnsiReset = "\033[0m"
)
