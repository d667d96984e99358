package request

import (
	"encoding/json"
	"maps"
	"strconv"
)

// DefaultTitle is used when a request has no title.
const DefaultTitle = "Node Notification:"

// Request is a loosely typed notification request as handed to us by a caller.
// Values are whatever the source produced: strings, bools, numbers or nested
// values from a decoded document.
type Request map[string]any

// Validated is a request that passed validation. Title, Message and Quiet are
// resolved; every other field is carried in Options for the compiler.
type Validated struct {
	Title   string
	Message string
	Quiet   bool
	Options map[string]any
}

// ValidationError is returned when a request is missing a required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// consumed are the keys resolved by Validate itself.
var consumed = map[string]bool{
	"message": true,
	"title":   true,
	"quiet":   true,
	"q":       true,
	"sound":   true,
}

// Validate checks the request and applies defaults.
func Validate(req Request) (*Validated, error) {
	message, ok := req["message"].(string)
	if !ok || message == "" {
		return nil, &ValidationError{Field: "message", Reason: "Message is required."}
	}

	title := DefaultTitle
	if s, ok := Text(req["title"]); ok && s != "" {
		title = s
	}

	// Quiet unless sound was asked for; an explicit quiet always wins.
	quiet := true
	if sound, ok := req["sound"].(bool); ok && sound {
		quiet = false
	}
	if q, ok := req["q"].(bool); ok {
		quiet = q
	}
	if q, ok := req["quiet"].(bool); ok {
		quiet = q
	}

	options := make(map[string]any, len(req))
	for k, v := range req {
		if !consumed[k] {
			options[k] = v
		}
	}

	return &Validated{
		Title:   title,
		Message: message,
		Quiet:   quiet,
		Options: options,
	}, nil
}

// WithDefaults returns a new request with defaults filled in for every key
// the request does not set. Neither input is modified.
func (r Request) WithDefaults(defaults map[string]any) Request {
	merged := make(Request, len(r)+len(defaults))
	maps.Copy(merged, defaults)
	maps.Copy(merged, r)
	return merged
}

// Text returns the string form of a scalar value. Strings are returned as is
// and numbers in their shortest decimal form. Anything else, bools included,
// is not text.
func Text(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case int:
		return strconv.Itoa(x), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	default:
		return "", false
	}
}
