// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	"github.com/ik5/ohrli/audio"
	"github.com/ik5/ohrli/internal/audiotest"
)

// Example_resampler converts a 16 kHz tone to 48 kHz.
func Example_resampler() {
	source := audiotest.NewSineSource(16000, 1, 1600, 440.0)
	resampler := audio.NewResampler(source, 48000)

	samples, err := audio.ReadAll(resampler, 4096)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Output sample rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("Total samples read: %d\n", len(samples))
	// Output:
	// Output sample rate: 48000 Hz
	// Total samples read: 4800
}

// Example_readMono collapses a stereo stream into one channel.
func Example_readMono() {
	source := audiotest.NewSineSource(48000, 2, 480, 1000.0)

	samples, err := audio.ReadMono(source, 1024)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Mono samples: %d\n", len(samples))
	// Output: Mono samples: 480
}
