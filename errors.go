// SPDX-License-Identifier: EPL-2.0

package ohrli

import "errors"

// ErrEmptyBatch is returned by BatchCompare when there is nothing to compare.
var ErrEmptyBatch = errors.New("no test signals to compare")
