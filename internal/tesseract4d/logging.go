package tesseract4d

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger is shared by the core and the hosts. It logs at info until
// SetupLogging runs.
var Logger = newConsoleLogger(os.Stderr, zerolog.InfoLevel)

func newConsoleLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: w != os.Stderr && w != os.Stdout}).
		Level(level).
		With().Timestamp().Logger()
}

// ParseLevel maps a config string onto a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// SetupLogging points Logger at w (console format) with the given level.
// A nil writer silences logging.
func SetupLogging(level string, w io.Writer) {
	if w == nil {
		Logger = zerolog.Nop()
		return
	}
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
	Logger = newConsoleLogger(w, ParseLevel(level))
	if Debug {
		Logger = Logger.Level(zerolog.DebugLevel)
	}
}

func DebugLog(format string, args ...interface{}) {
	Logger.Debug().Msgf(format, args...)
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	once.Do(func() {
		Logger.Debug().Msgf(format, args...)
	})
}
