// SPDX-License-Identifier: EPL-2.0

// Package ohrli compares two recordings and says how alike they sound.
//
// The package level functions use a shared default Comparer: the reference
// spectral engine, the high quality soxr resampler and decoders for wav,
// mp3, ogg and aiff files.
//
//	mos, err := ohrli.CompareAudioArrays(ref, 44100.0, test, 16000)
//	if errors.Is(err, compare.ErrUsage) {
//	    // the call was malformed; nothing was analysed
//	}
//
// CompareAudioArrays and CompareAudioArraysDistance are deliberately
// loose: they take exactly four arguments of any type and validate them
// the way a scripting binding would. CompareAudio is the typed form.
//
// Every comparison happens at SampleRate. Input at another rate is
// resampled first; input already at SampleRate is analysed in place.
// Distances are zero for identical input and MOSFromZimtohrli maps them
// onto the 1 (bad) to 5 (excellent) opinion scale.
//
// Files are loaded by extension through an audio.Registry:
//
//	mos, err := ohrli.CompareFiles("reference.wav", "encoded.mp3", false)
//
// Build a Comparer with New to swap the engine, resampler, decoders or
// logger.
package ohrli
