// SPDX-License-Identifier: EPL-2.0

// Package resample converts mono float32 sequences between sample rates.
//
// Two implementations are provided. Soxr wraps
// github.com/tphakala/go-audio-resampling and is the default; Cubic uses
// the lighter interpolating resampler from the audio package. Both accept
// fractional rates and reject non-positive, NaN or infinite ones with
// ErrInvalidRate.
//
//	r, err := resample.New("soxr", "high")
//	if err != nil {
//	    return err
//	}
//	at48k, err := r.Resample(samples, 44100, 48000)
package resample
