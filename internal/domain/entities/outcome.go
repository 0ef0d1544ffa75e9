package entities

// Recognition is the outcome of recognizing one turn's input: either a valid
// value or unrecognized. The zero value is Unrecognized.
type Recognition struct {
	valid bool
	value any
}

// Recognized returns a valid outcome carrying v.
func Recognized(v any) Recognition {
	return Recognition{valid: true, value: v}
}

// Unrecognized returns the outcome that asks the caller to re-prompt.
func Unrecognized() Recognition {
	return Recognition{}
}

func (r Recognition) Valid() bool { return r.valid }

// Value is nil for unrecognized outcomes.
func (r Recognition) Value() any { return r.value }

// InputState is the state of an input dialog after a recognition attempt.
type InputState int

const (
	InputMissing InputState = iota
	InputUnrecognized
	InputInvalid
	InputValid
)

func (s InputState) String() string {
	switch s {
	case InputMissing:
		return "missing"
	case InputUnrecognized:
		return "unrecognized"
	case InputInvalid:
		return "invalid"
	case InputValid:
		return "valid"
	default:
		return "unknown"
	}
}
