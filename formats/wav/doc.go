// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV files through github.com/go-audio/wav and writes
// mono 16-bit PCM WAV files.
//
// Decoding accepts integer PCM at 8, 16, 24 and 32 bits and 32-bit IEEE
// float, any channel count and any sample rate:
//
//	source, err := wav.Decoder{}.Decode(file)
//
// The decoder needs to seek; readers that cannot are buffered in memory.
//
// WriteWAV16 writes a canonical 44-byte header followed by the samples:
//
//	err := wav.WriteWAV16(file, 48000, pcm16)
package wav
