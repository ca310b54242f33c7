// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so every Source returned here
// reports two channels whatever the file holds. Mono consumers wrap it in
// audio.NewMonoMixer.
package mp3
