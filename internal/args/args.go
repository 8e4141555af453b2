// Package args extracts typed values from the loosely-typed argument maps
// carried by tools/call requests. Unknown keys are ignored; each extractor
// returns either a value of the expected shape or a specific extraction error.
package args

import "fmt"

// MissingParameterError reports a required argument that was not supplied.
type MissingParameterError struct {
	Key string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("Missing '%s' parameter", e.Key)
}

// TypeMismatchError reports an argument present with the wrong JSON type.
type TypeMismatchError struct {
	Key  string
	Want string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("parameter '%s' must be a %s", e.Key, e.Want)
}

// String extracts a required string argument.
func String(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", &MissingParameterError{Key: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeMismatchError{Key: key, Want: "string"}
	}
	return s, nil
}

// StringOr extracts an optional string argument, falling back to def when the
// key is absent. A present non-string value is still a mismatch.
func StringOr(m map[string]any, key, def string) (string, error) {
	v, ok := m[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeMismatchError{Key: key, Want: "string"}
	}
	return s, nil
}
