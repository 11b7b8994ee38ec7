package cli

import (
	"errors"
	"io/fs"
)

// Exit codes for mipsfmt.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitNotFormatted indicates --check found an unformatted file, or
	// formatting failed.
	ExitNotFormatted = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrNotFormatted signals that --check found a file needing formatting.
// It carries no message worth logging; main maps it straight to an exit
// code.
var ErrNotFormatted = errors.New("file is not formatted")

// ErrInvalidUsage wraps flag and argument parse errors.
var ErrInvalidUsage = errors.New("invalid usage")

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrInvalidUsage) {
		return ExitInvalidUsage
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ExitIOError
	}

	return ExitNotFormatted
}
