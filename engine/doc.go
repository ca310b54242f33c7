// SPDX-License-Identifier: EPL-2.0

// Package engine defines the analysis collaborator of the comparison
// pipeline and ships a reference implementation.
//
// An Engine turns 48 kHz mono samples into a Spectrogram of NumRotators
// channels per step and measures the distance between two spectrograms.
// MOSFromZimtohrli maps that distance onto the 1 to 5 opinion scale.
//
// Spectral is the bundled engine. Any implementation honouring the Engine
// contract can be plugged into compare.NewPipeline through a Factory.
package engine
