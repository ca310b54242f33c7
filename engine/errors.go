// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

// ErrOutOfMemory reports an analysis that would exceed the engine's
// allocation limit.
var ErrOutOfMemory = errors.New("spectrogram allocation exceeds limit")
