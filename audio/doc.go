// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives the comparison pipeline
// is fed from.
//
// Decoders, the mixer and the resampler all produce a Source, so they chain:
// a wav.Decoder feeds a MonoMixer which feeds a Resampler. ReadSamples
// counts float32 values, not frames.
//
// # Resampling
//
// Resampler changes the sample rate with cubic interpolation. Use
// NewResamplerFrom when the source rate is fractional:
//
//	resampler := audio.NewResamplerFrom(source, 44099.5, 48000)
//	samples, err := audio.ReadAll(resampler, 4096)
//
// # Channel Mixing
//
// MonoMixer averages all channels of a frame. ReadMono is the shortcut used
// when loading files for comparison:
//
//	samples, err := audio.ReadMono(source, 4096)
//
// # Format Registry
//
// Registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("reference.wav")
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]. ReadSamples returns io.EOF, possibly
// together with the last samples, once the stream is finished.
package audio
