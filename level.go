package logfilter

import (
	"fmt"
	"strings"
)

// Level parametrizes the supported severity thresholds, ordered from least to
// most verbose.
type Level int

const (
	// Off disables logging entirely for the modules it covers.
	Off Level = iota
	// Error admits only error records.
	Error
	// Warn admits warnings and errors.
	Warn
	// Info admits general events and above.
	Info
	// Debug admits fine-grained diagnostic records and above.
	Debug
	// Trace admits everything.
	Trace
)

// String returns the lower-case name of the level.
func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Error:
		return "error"
	case Warn:
		return "warn"
	case Info:
		return "info"
	case Debug:
		return "debug"
	case Trace:
		return "trace"
	default:
		return "unknown"
	}
}

// ParseLevel looks up a Level constant by its stringified (case-insensitive)
// representation.
func ParseLevel(level string) (Level, bool) {
	switch strings.ToUpper(level) {
	case "OFF":
		return Off, true
	case "ERROR":
		return Error, true
	case "WARN":
		return Warn, true
	case "INFO":
		return Info, true
	case "DEBUG":
		return Debug, true
	case "TRACE":
		return Trace, true
	default:
		return Off, false
	}
}

// Enables indicates whether a threshold at this level admits a record logged
// at the requested level. Off admits nothing.
//
// For example,
//	Trace enables Trace, Debug, Info, Warn, and Error
//	Info enables Info, Warn, and Error, but not Debug or Trace
//	Off enables nothing
func (l Level) Enables(requested Level) bool {
	return l != Off && requested <= l
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, ok := ParseLevel(string(text))
	if !ok {
		return fmt.Errorf("unknown level name: %s", text)
	}
	*l = parsed
	return nil
}
