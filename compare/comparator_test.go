// SPDX-License-Identifier: EPL-2.0

package compare

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/ik5/ohrli/engine"
	"github.com/ik5/ohrli/internal/audiotest"
)

func TestComparator_Compare(t *testing.T) {
	t.Parallel()

	c := NewComparator()
	ref := audiotest.Sine(48000, 0.2, 440, 0.5)
	noisy := audiotest.Mix(ref, audiotest.Noise(len(ref), 0.05, 2))

	self, err := c.Compare(ref, ref, true)
	if err != nil || self != 0 {
		t.Errorf("Compare(ref, ref) = %v, %v; want 0, nil", self, err)
	}

	d, err := c.Compare(ref, noisy, true)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	mos, err := c.Compare(ref, noisy, false)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if mos != engine.MOSFromZimtohrli(d) {
		t.Errorf("MOS %v != MOSFromZimtohrli(%v)", mos, d)
	}

	// same result as the pipeline at the canonical rate
	p, err := NewPipeline().Distance(float32Exporter(ref), 48000, float32Exporter(noisy), 48000)
	if err != nil || p != d {
		t.Errorf("pipeline distance = %v, %v; comparator = %v", p, err, d)
	}
}

func TestComparator_Analyze(t *testing.T) {
	t.Parallel()

	c := NewComparator()
	samples := audiotest.Sine(48000, 0.1, 1000, 0.5)

	b, err := c.Analyze(samples)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	want := 4 * engine.Steps(len(samples)) * c.NumRotators()
	if len(b) != want {
		t.Fatalf("len = %d, want %d", len(b), want)
	}
	if v := math.Float32frombits(binary.LittleEndian.Uint32(b)); math.IsNaN(float64(v)) {
		t.Error("first value is NaN")
	}
	if c.SampleRate() != 48000 || c.NumRotators() != 128 {
		t.Errorf("constants = %d/%d", c.SampleRate(), c.NumRotators())
	}
}

func TestComparator_Failures(t *testing.T) {
	t.Parallel()

	eng := newFaultyEngine()
	eng.failAfter = 0
	eng.err = engine.ErrOutOfMemory
	c := NewComparator(WithFactory(eng.factory()))

	if _, err := c.Compare([]float32{0}, []float32{0}, false); !errors.Is(err, ErrRuntime) || !errors.Is(err, engine.ErrOutOfMemory) {
		t.Errorf("Compare() error = %v", err)
	}
	if _, err := c.Analyze([]float32{0}); !errors.Is(err, engine.ErrOutOfMemory) {
		t.Errorf("Analyze() error = %v", err)
	}

	eng.panicWith = "boom"
	if _, err := c.Analyze([]float32{0}); !errors.Is(err, ErrRuntime) || err.Error() != "boom" {
		t.Errorf("Analyze() after panic error = %v", err)
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	if Default() != Default() {
		t.Error("Default() built two comparators")
	}
}
