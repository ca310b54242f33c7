// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrInvalidRate    = errors.New("sample rate must be positive and finite")
	ErrNoChannels     = errors.New("source has no channels")

	// ErrUnsupportedFormat is matched by every *UnsupportedFormatError.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// UnsupportedFormatError reports a format key no decoder is registered for.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Format == "" {
		return ErrUnsupportedFormat.Error() + ": missing file extension"
	}

	return fmt.Sprintf("%s: %q", ErrUnsupportedFormat, e.Format)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}
