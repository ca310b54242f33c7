// SPDX-License-Identifier: EPL-2.0

package compare_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/ik5/ohrli/buffer"
	"github.com/ik5/ohrli/compare"
)

func tone(rate float64, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(0.5 * math.Sin(2*math.Pi*440*float64(i)/rate))
	}
	return out
}

func ExamplePipeline_MOS() {
	p := compare.NewPipeline()
	a := tone(48000, 9600)

	mos, err := p.MOS(buffer.Float32s(a), 48000, buffer.Float32s(a), 48000)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("MOS: %.1f\n", mos)
	// Output: MOS: 5.0
}

func ExamplePipeline_Distance_usageError() {
	p := compare.NewPipeline()
	stereo := buffer.Matrix{Rows: 2, Cols: 2, Data: []float32{0, 0, 0, 0}}

	_, err := p.Distance(stereo, 48000, buffer.Float32s{0, 0}, 48000)
	fmt.Println(errors.Is(err, compare.ErrUsage), err)
	// Output: true audio arrays must be 1-dimensional
}
