package globals

const DEFAULT_HISTORY_SIZE = 50
const DEFAULT_LOG_PATH = "hue-hound.log"
const DEFAULT_OUTPUT_FORMAT = "ansi"
const DEFAULT_WATCH_INTERVAL_MS = 500
const MAX_WATCH_INTERVAL_MS = 5000
const MIN_WATCH_INTERVAL_MS = 100
const SWATCH_WIDTH = 4

var EXIT_WORDS = []string{"exit", "quit", "q"}
var OUTPUT_FORMATS = []string{"plain", "ansi", "json"}
