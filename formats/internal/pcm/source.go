// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer decoders to audio.Source.
package pcm

import (
	"bytes"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/ohrli/utils"
)

// Encoding says how the integers coming out of PCMBuffer map to samples.
type Encoding int

const (
	// Signed integer PCM.
	Signed Encoding = iota
	// Unsigned8 is 8-bit offset-binary PCM, as stored by WAV.
	Unsigned8
	// Float32Bits carries IEEE-754 float bits in each 32-bit integer.
	Float32Bits
)

// Reader is the subset of the go-audio wav and aiff decoders used here.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams a go-audio decoder as normalized float32 samples.
type Source struct {
	dec      Reader
	format   *goaudio.Format
	bitDepth int
	encoding Encoding
	buf      *goaudio.IntBuffer
	eof      bool
}

func NewSource(dec Reader, format *goaudio.Format, bitDepth int, encoding Encoding) *Source {
	return &Source{
		dec:      dec,
		format:   format,
		bitDepth: bitDepth,
		encoding: encoding,
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.format,
			SourceBitDepth: s.bitDepth,
		}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}

	s.convert(dst[:n], s.buf.Data[:n])

	// go-audio signals the end of data with a short read
	if n < len(dst) || err == io.EOF {
		s.eof = true
		return n, io.EOF
	}

	return n, nil
}

func (s *Source) convert(dst []float32, src []int) {
	switch s.encoding {
	case Unsigned8:
		for i, v := range src {
			dst[i] = float32(v-128) / 128.0
		}
	case Float32Bits:
		for i, v := range src {
			dst[i] = math.Float32frombits(uint32(int32(v)))
		}
	default:
		for i, v := range src {
			dst[i] = utils.IntToFloat32(v, s.bitDepth)
		}
	}
}

// Seekable returns r itself when it can seek, otherwise its buffered
// contents. go-audio decoders need io.ReadSeeker.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return bytes.NewReader(data), nil
}
