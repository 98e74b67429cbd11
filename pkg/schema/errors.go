package schema

import (
	"errors"
	"fmt"
)

// Error categories reported by Merge. Use errors.Is on the returned error.
var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrUnknownKey   = errors.New("unknown key")
)

// PathError ties a merge problem to the dotted path of the offending key.
type PathError struct {
	Path   string
	Err    error
	Detail string
}

func (e *PathError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Path, e.Err, e.Detail)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Problems flattens an error returned by Merge into its path errors.
func Problems(err error) []*PathError {
	if err == nil {
		return nil
	}
	var out []*PathError
	var pe *PathError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, Problems(e)...)
		}
		return out
	}
	if errors.As(err, &pe) {
		out = append(out, pe)
	}
	return out
}

func mismatch(path string, want Kind, got any) *PathError {
	return &PathError{
		Path:   path,
		Err:    ErrTypeMismatch,
		Detail: fmt.Sprintf("expected %s, got %s", want, describe(got)),
	}
}

func unknown(path string) *PathError {
	return &PathError{Path: path, Err: ErrUnknownKey}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case map[string]any, map[any]any, Document:
		return "mapping"
	case []any:
		return "list"
	default:
		if num, ok := toNumber(v); ok {
			if !isFinite(num) {
				return "non-finite number"
			}
			return "number"
		}
		return "unsupported value"
	}
}
