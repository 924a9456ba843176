package errors

import (
	"fmt"
)

// ParseError represents a configuration file that could not be read or decoded.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PathNotFoundError reports a configured path that does not exist.
type PathNotFoundError struct {
	Role string
	Path string
}

// NewPathNotFoundError constructs a PathNotFoundError for the given path role.
func NewPathNotFoundError(role, path string) error {
	return &PathNotFoundError{Role: role, Path: path}
}

func (e *PathNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: path %s does not exist", e.Role, e.Path)
}

// WrongPathKindError reports a path that exists but is not the expected kind
// (a file where a directory was configured, or vice versa).
type WrongPathKindError struct {
	Role    string
	Path    string
	WantDir bool
}

// NewWrongPathKindError constructs a WrongPathKindError.
func NewWrongPathKindError(role, path string, wantDir bool) error {
	return &WrongPathKindError{Role: role, Path: path, WantDir: wantDir}
}

func (e *WrongPathKindError) Error() string {
	if e == nil {
		return ""
	}
	if e.WantDir {
		return fmt.Sprintf("%s: %s is a file, expected a directory", e.Role, e.Path)
	}
	return fmt.Sprintf("%s: %s is a directory, expected a regular file", e.Role, e.Path)
}

// StepError captures an I/O failure inside one maintenance step. The engine
// records it on the instance outcome and continues with the next step.
type StepError struct {
	Instance string
	Step     string
	Err      error
}

// NewStepError constructs a StepError.
func NewStepError(instance, step string, err error) error {
	return &StepError{Instance: instance, Step: step, Err: err}
}

func (e *StepError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("step %s failed for %s: %v", e.Step, e.Instance, e.Err)
}

// Unwrap exposes the root error.
func (e *StepError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InstanceUnreachableError is the one fatal per-instance condition: the
// instance root is gone or not a directory, so remaining steps are skipped.
type InstanceUnreachableError struct {
	Path string
	Err  error
}

// NewInstanceUnreachableError constructs an InstanceUnreachableError.
func NewInstanceUnreachableError(path string, err error) error {
	return &InstanceUnreachableError{Path: path, Err: err}
}

func (e *InstanceUnreachableError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("instance %s is unreachable: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("instance %s is unreachable", e.Path)
}

// Unwrap exposes the underlying error.
func (e *InstanceUnreachableError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration schema validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
