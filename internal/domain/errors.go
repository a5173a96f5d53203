package domain

import (
	"errors"
	"fmt"
	"strings"
)

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// SchemaMismatchError reports an assembled feature vector that does not match
// the columns the loaded model declares. Want and Got are only set when the
// model publishes a width but no names.
type SchemaMismatchError struct {
	Missing    []string
	Extra      []string
	Duplicated []string
	Want       int
	Got        int
}

func (e SchemaMismatchError) Error() string {
	if len(e.Missing) == 0 && len(e.Extra) == 0 && len(e.Duplicated) == 0 && e.Want != e.Got {
		return fmt.Sprintf("feature mismatch: model expects %d features, got %d", e.Want, e.Got)
	}
	msg := fmt.Sprintf("feature mismatch: missing [%s], extra [%s]",
		strings.Join(e.Missing, ", "), strings.Join(e.Extra, ", "))
	if len(e.Duplicated) > 0 {
		msg += fmt.Sprintf(", duplicated [%s]", strings.Join(e.Duplicated, ", "))
	}
	return msg
}

// InferenceError wraps any failure raised by the model while predicting.
type InferenceError struct {
	Err error
}

func (e InferenceError) Error() string {
	if e.Err == nil {
		return "prediction failed"
	}
	return "prediction failed: " + e.Err.Error()
}

func (e InferenceError) Unwrap() error { return e.Err }

// ModelLoadError is returned when the model artifact is absent or unreadable.
type ModelLoadError struct {
	Path string
	Err  error
}

func (e ModelLoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("model artifact %q could not be loaded", e.Path)
	}
	return fmt.Sprintf("model artifact %q could not be loaded: %v", e.Path, e.Err)
}

func (e ModelLoadError) Unwrap() error { return e.Err }

// UnauthorizedError is returned for rejected credentials.
type UnauthorizedError struct {
	Msg string
}

func (e UnauthorizedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "unauthorized"
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsSchemaMismatch(err error) bool {
	var target SchemaMismatchError
	return errors.As(err, &target)
}

func IsInference(err error) bool {
	var target InferenceError
	return errors.As(err, &target)
}

func IsModelLoad(err error) bool {
	var target ModelLoadError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}
