package biology

import "fmt"

// ValidationError reports an invalid discrete value or a mismatched circuit
// composition. Always raised synchronously at construction time.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// MalformedRecordError reports a persisted circuit record missing a required
// key. Corrupt records are propagated, never silently defaulted.
type MalformedRecordError struct {
	Key         string
	CircuitType string
}

func (e *MalformedRecordError) Error() string {
	if e.CircuitType != "" {
		return fmt.Sprintf("malformed circuit record: missing %q for circuit type %q", e.Key, e.CircuitType)
	}
	return fmt.Sprintf("malformed circuit record: missing %q", e.Key)
}
