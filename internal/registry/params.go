package registry

import (
	"math"
)

// Params is the opaque parameter bag handed to a calculator. The transport
// layer fills it either from a typed request struct (dedicated endpoints) or
// straight from the decoded JSON body (generic dispatch), so values follow
// encoding/json conventions: numbers are float64, objects are
// map[string]any, arrays are []any.
type Params map[string]any

// Result is the opaque output bag produced by a calculator. Every calculator
// sets at least result, unit and interpretation; most also set stage and
// stage_description.
type Result map[string]any

// Float returns the named parameter as a float64.
func (p Params) Float(name string) (float64, error) {
	v, ok := p[name]
	if !ok {
		return 0, Invalidf(name, "is required")
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, Invalidf(name, "must be a number")
}

// FloatInRange returns the named parameter as a float64 and enforces an
// inclusive range.
func (p Params) FloatInRange(name string, min, max float64) (float64, error) {
	v, err := p.Float(name)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, Invalidf(name, "must be a finite number")
	}
	if v < min || v > max {
		return 0, Invalidf(name, "must be between %g and %g", min, max)
	}
	return v, nil
}

// Int returns the named parameter as an int. JSON numbers arrive as float64,
// so fractional values are rejected rather than truncated.
func (p Params) Int(name string) (int, error) {
	v, err := p.Float(name)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, Invalidf(name, "must be an integer")
	}
	return int(v), nil
}

// IntInRange returns the named parameter as an int within an inclusive range.
func (p Params) IntInRange(name string, min, max int) (int, error) {
	v, err := p.Int(name)
	if err != nil {
		return 0, err
	}
	if v < min || v > max {
		return 0, Invalidf(name, "must be between %d and %d", min, max)
	}
	return v, nil
}

// Bool returns the named parameter as a bool. Missing parameters default to
// false so that score components can be omitted from the request.
func (p Params) Bool(name string) (bool, error) {
	v, ok := p[name]
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, Invalidf(name, "must be a boolean")
	}
	return b, nil
}

// String returns the named parameter as a non-empty string.
func (p Params) String(name string) (string, error) {
	v, ok := p[name]
	if !ok {
		return "", Invalidf(name, "is required")
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", Invalidf(name, "must be a non-empty string")
	}
	return s, nil
}

// Enum returns the named parameter as a string restricted to the allowed
// values.
func (p Params) Enum(name string, allowed ...string) (string, error) {
	s, err := p.String(name)
	if err != nil {
		return "", err
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", Invalidf(name, "must be one of %v", allowed)
}
