// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with github.com/jfreymuth/oggvorbis.
//
// The decoder already produces float32 samples, so the Source hands them
// through untouched.
package vorbis
