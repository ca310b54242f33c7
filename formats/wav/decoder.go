// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/ohrli/audio"
	"github.com/ik5/ohrli/formats/internal/pcm"
)

// WAVE format tags.
const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE
)

// Decoder reads RIFF/WAVE files holding 8/16/24/32-bit integer PCM or
// 32-bit IEEE float samples.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.Seekable(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrUnsupportedWavLayout
	}

	encoding, err := encodingOf(dec.WavAudioFormat, int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	// PCMBuffer forwards to the data chunk on first use
	return pcm.NewSource(dec, format, int(dec.BitDepth), encoding), nil
}

func encodingOf(tag uint16, bitDepth int) (pcm.Encoding, error) {
	switch tag {
	case formatPCM, formatExtensible:
		switch bitDepth {
		case 8:
			return pcm.Unsigned8, nil
		case 16, 24, 32:
			return pcm.Signed, nil
		}
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	case formatIEEEFloat:
		if bitDepth != 32 {
			return 0, fmt.Errorf("%w: %d-bit float", ErrUnsupportedBitDepth, bitDepth)
		}
		return pcm.Float32Bits, nil
	default:
		return 0, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, tag)
	}
}
