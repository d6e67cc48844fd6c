package adaptor

import "fmt"

// ErrorLevel indicates how fatal an adaptor error is.
type ErrorLevel int

// adaptor error levels
const (
	NOTICE ErrorLevel = iota
	WARNING
	ERROR
	CRITICAL
)

func levelToString(lvl ErrorLevel) string {
	switch lvl {
	case NOTICE:
		return "NOTICE"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	case CRITICAL:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Error is an error that happened during an adaptor's operation.
// Error's that are recoverable are reported on the pipeline's event
// channel, unrecoverable ones stop the run.
type Error struct {
	Lvl    ErrorLevel
	Err    string
	Path   string
	Record interface{}
}

// Error returns the error message
func (t Error) Error() string {
	return fmt.Sprintf("%s: %s", levelToString(t.Lvl), t.Err)
}
