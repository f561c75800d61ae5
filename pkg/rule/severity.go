package rule

import (
	"fmt"
	"strings"
)

// Severity classifies how serious a rule violation is.
type Severity int

// The zero value is SeverityError so that rules which never set a severity
// report violations at the highest level.
const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity converts a case-insensitive severity label into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, nil
	case "warning":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	default:
		return SeverityError, fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
	}
}

// moreSevere returns the more serious of two severities.
func moreSevere(a, b Severity) Severity {
	if a < b {
		return a
	}
	return b
}
