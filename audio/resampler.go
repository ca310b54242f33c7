// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/ohrli/utils"
)

// Resampler streams from src to a target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// A one-pole low-pass runs over the input when downsampling.
type Resampler struct {
	src      Source
	srcRate  float64
	dstRate  float64
	step     float64 // source frames consumed per output frame
	channels int

	// window[0] = t-1, window[1] = t0, window[2] = t+1, window[3] = t+2
	window [4][]float32
	filled [4]bool
	primed bool

	// fractional position between window[1] and window[2]
	pos float64

	frame []float32
	eof   bool

	lowpass     bool
	alpha       float32
	filterState []float32
}

// NewResampler converts src from its own rate to dstRate.
func NewResampler(src Source, dstRate int) *Resampler {
	return NewResamplerFrom(src, float64(src.SampleRate()), float64(dstRate))
}

// NewResamplerFrom converts src, whose true rate is srcRate, to dstRate.
// It exists for fractional rates that Source.SampleRate cannot express.
func NewResamplerFrom(src Source, srcRate, dstRate float64) *Resampler {
	channels := max(src.Channels(), 1)
	step := srcRate / dstRate

	r := &Resampler{
		src:         src,
		srcRate:     srcRate,
		dstRate:     dstRate,
		step:        step,
		channels:    channels,
		frame:       make([]float32, channels),
		lowpass:     step > 1.0,
		filterState: make([]float32, channels),
	}
	if r.lowpass {
		r.alpha = 0.5
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(math.Round(r.dstRate)) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls one interleaved frame from the source into r.frame.
func (r *Resampler) readFrame() (bool, error) {
	n, err := r.src.ReadSamples(r.frame)
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("%w", err)
	}
	if err == io.EOF {
		r.eof = true
	}

	return n > 0, nil
}

func (r *Resampler) filter(frame []float32) {
	if !r.lowpass {
		return
	}

	for c := range r.channels {
		frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.filterState[c]
		r.filterState[c] = frame[c]
	}
}

// prime loads the first frames into window[1..3]. window[0] mirrors
// window[1] until a real predecessor exists.
func (r *Resampler) prime() error {
	r.primed = true

	for i := 1; i < len(r.window) && !r.eof; i++ {
		ok, err := r.readFrame()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		if i == 1 && r.lowpass {
			copy(r.filterState, r.frame)
		}
		r.filter(r.frame)
		copy(r.window[i], r.frame)
		r.filled[i] = true
	}

	if !r.filled[1] {
		return io.EOF
	}
	copy(r.window[0], r.window[1])

	return nil
}

// advance shifts the window by one source frame.
func (r *Resampler) advance() error {
	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]

	if r.eof {
		r.filled[3] = false
	} else {
		ok, err := r.readFrame()
		if err != nil {
			return err
		}
		if ok {
			r.filter(r.frame)
			copy(r.window[3], r.frame)
		}
		r.filled[3] = ok
	}

	if !r.filled[1] {
		return io.EOF
	}

	return nil
}

// ReadSamples produces dst samples at the destination rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.filled[1] {
			return written * r.channels, io.EOF
		}

		// missing neighbours at the edges repeat the nearest real frame
		x := float32(r.pos)
		for c := range r.channels {
			y1 := r.window[1][c]
			y0 := y1
			if r.filled[0] {
				y0 = r.window[0][c]
			}
			y2 := y1
			if r.filled[2] {
				y2 = r.window[2][c]
			}
			y3 := y2
			if r.filled[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
