package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", underlying)

	require.Contains(t, err.Error(), "config.yaml")
	require.Contains(t, err.Error(), "unexpected token")
	require.True(t, stdErrors.Is(err, underlying))
}

func TestPathNotFoundErrorMentionsRole(t *testing.T) {
	t.Parallel()

	err := NewPathNotFoundError("core_file", "/tmp/DarkBot.jar")

	require.Contains(t, err.Error(), "core_file")
	require.Contains(t, err.Error(), "/tmp/DarkBot.jar")

	var target *PathNotFoundError
	require.True(t, stdErrors.As(err, &target))
	require.Equal(t, "core_file", target.Role)
}

func TestWrongPathKindErrorDirectionality(t *testing.T) {
	t.Parallel()

	dirWanted := NewWrongPathKindError("plugin_source", "/tmp/plugins", true)
	require.Contains(t, dirWanted.Error(), "expected a directory")

	fileWanted := NewWrongPathKindError("core_file", "/tmp/core", false)
	require.Contains(t, fileWanted.Error(), "expected a regular file")
}

func TestStepErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("permission denied")
	err := NewStepError("/bots/alpha", "delete_logs", underlying)

	require.Contains(t, err.Error(), "delete_logs")
	require.Contains(t, err.Error(), "/bots/alpha")
	require.True(t, stdErrors.Is(err, underlying))

	var target *StepError
	require.True(t, stdErrors.As(err, &target))
	require.Equal(t, "delete_logs", target.Step)
}

func TestInstanceUnreachableErrorWithAndWithoutCause(t *testing.T) {
	t.Parallel()

	bare := NewInstanceUnreachableError("/bots/alpha", nil)
	require.Equal(t, "instance /bots/alpha is unreachable", bare.Error())

	underlying := fmt.Errorf("stat failed")
	wrapped := NewInstanceUnreachableError("/bots/alpha", underlying)
	require.Contains(t, wrapped.Error(), "stat failed")
	require.True(t, stdErrors.Is(wrapped, underlying))
}

func TestValidationErrorFormatsField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("language", "unsupported language code", nil)
	require.Equal(t, "validation error: language: unsupported language code", err.Error())

	fieldless := NewValidationError("", "bad document", nil)
	require.Equal(t, "validation error: bad document", fieldless.Error())
}
