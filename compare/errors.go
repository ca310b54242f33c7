// SPDX-License-Identifier: EPL-2.0

package compare

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage marks a malformed call: wrong arguments, rates or buffers.
	// Nothing was analysed.
	ErrUsage = errors.New("usage error")
	// ErrRuntime marks a failure inside resampling, analysis or distance.
	ErrRuntime = errors.New("runtime error")
)

// Error is returned by every comparison. Kind is ErrUsage or ErrRuntime;
// Err, when set, is the underlying failure.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg == "" && e.Err != nil {
		return e.Err.Error()
	}

	return e.Msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// Usage builds a usage error with a fixed message.
func Usage(msg string) error {
	return &Error{Kind: ErrUsage, Msg: msg}
}

// Usagef is Usage with formatting. A %w verb keeps the cause reachable.
func Usagef(format string, args ...any) error {
	cause := fmt.Errorf(format, args...)
	return &Error{Kind: ErrUsage, Msg: cause.Error(), Err: errors.Unwrap(cause)}
}

// Runtime wraps an engine or resampler failure, keeping its message.
func Runtime(err error) error {
	return &Error{Kind: ErrRuntime, Err: err}
}

// recovered turns a panic value into a runtime error.
func recovered(r any) error {
	if err, ok := r.(error); ok {
		return Runtime(err)
	}

	return Runtime(fmt.Errorf("%v", r))
}
