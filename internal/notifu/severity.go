package notifu

import "strings"

// Severity is a notifu balloon type.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// NormalizeType maps a request type onto a Severity. It reports false when no
// type was given. Values notifu does not know, including non-strings, become
// SeverityInfo.
func NormalizeType(v any) (Severity, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		if x == "" {
			return "", false
		}
		switch s := Severity(strings.ToLower(x)); s {
		case SeverityInfo, SeverityWarn, SeverityError:
			return s, true
		}
	}
	return SeverityInfo, true
}
