// SPDX-License-Identifier: EPL-2.0

package buffer

import "errors"

var (
	// ErrNotBuffer is returned by FromAny for values that expose no memory.
	ErrNotBuffer = errors.New("value does not expose a buffer")
	ErrReleased  = errors.New("view already released")
)
