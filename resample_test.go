// SPDX-License-Identifier: EPL-2.0

package ohrli

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/ohrli/internal/audiotest"
	"github.com/ik5/ohrli/resample"
)

func TestResampleToMono16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rate       int
		channels   int
		frames     int
		targetRate int
		wantLen    int
	}{
		{"stereo 16k to 48k", 16000, 2, 1600, 48000, 4800},
		{"mono passthrough", 48000, 1, 960, 48000, 960},
		{"mono 48k to 8k", 48000, 1, 4800, 8000, 800},
	}

	c := New(WithResampler(resample.Cubic{}))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewConstantSource(tt.rate, tt.channels, tt.frames, 0.5)
			pcm, rate, err := c.ResampleToMono16(src, tt.targetRate)
			if err != nil {
				t.Fatalf("ResampleToMono16() error = %v", err)
			}
			if rate != tt.targetRate {
				t.Errorf("rate = %d, want %d", rate, tt.targetRate)
			}
			if math.Abs(float64(len(pcm)-tt.wantLen)) > 1 {
				t.Errorf("len = %d, want %d", len(pcm), tt.wantLen)
			}
			// a constant stays constant once the filter settles
			if got := pcm[len(pcm)/2]; got < 16000 || got > 16500 {
				t.Errorf("middle sample = %d, want about 16383", got)
			}
		})
	}
}

func TestToCanonical_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")
	src := &audiotest.FailingSource{Rate: 44100, Good: 2, Err: boom}

	if _, err := New().ToCanonical(src); !errors.Is(err, boom) {
		t.Errorf("ToCanonical() error = %v, want %v", err, boom)
	}
}
