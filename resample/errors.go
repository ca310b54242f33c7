// SPDX-License-Identifier: EPL-2.0

package resample

import "errors"

var (
	ErrInvalidRate      = errors.New("sample rate must be positive and finite")
	ErrUnknownResampler = errors.New("unknown resampler")
	ErrUnknownQuality   = errors.New("unknown resampling quality")
)
