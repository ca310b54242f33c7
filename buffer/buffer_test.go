// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
)

func TestFromAny(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		itemsize int
		shape    []int
		wantErr  error
	}{
		{name: "float32", value: []float32{1, 2, 3}, itemsize: 4, shape: []int{3}},
		{name: "nil float32", value: []float32(nil), itemsize: 4, shape: []int{0}},
		{name: "float64", value: []float64{1, 2}, itemsize: 8, shape: []int{2}},
		{name: "int16", value: []int16{1}, itemsize: 2, shape: []int{1}},
		{name: "matrix", value: [][]float32{{1, 2}, {3, 4}, {5, 6}}, itemsize: 4, shape: []int{3, 2}},
		{name: "exporter", value: Float32s{7}, itemsize: 4, shape: []int{1}},
		{name: "ragged", value: [][]float32{{1, 2}, {3}}, wantErr: ErrNotBuffer},
		{name: "string", value: "not audio", wantErr: ErrNotBuffer},
		{name: "nil", value: nil, wantErr: ErrNotBuffer},
		{name: "int", value: 42, wantErr: ErrNotBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			exp, err := FromAny(tt.value)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FromAny() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromAny() error = %v", err)
			}

			v, err := exp.View()
			if err != nil {
				t.Fatalf("View() error = %v", err)
			}
			defer v.Release()

			if v.Itemsize() != tt.itemsize {
				t.Errorf("Itemsize() = %d, want %d", v.Itemsize(), tt.itemsize)
			}
			if !slices.Equal(v.Shape(), tt.shape) {
				t.Errorf("Shape() = %v, want %v", v.Shape(), tt.shape)
			}
			if v.Ndim() != len(tt.shape) {
				t.Errorf("Ndim() = %d, want %d", v.Ndim(), len(tt.shape))
			}
		})
	}
}

func TestFloat32s_NoCopy(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, 0.2, 0.3}
	v, err := Float32s(samples).View()
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	defer v.Release()

	got := v.Float32s()
	if len(got) != 3 || &got[0] != &samples[0] {
		t.Error("Float32s() does not alias the exported slice")
	}
}

func TestView_Release(t *testing.T) {
	t.Parallel()

	calls := 0
	v := NewView([]float32{1, 2}, 4, []int{2}, func() { calls++ })

	if v.Released() {
		t.Fatal("Released() = true before Release")
	}
	if err := v.Release(); err != nil {
		t.Fatalf("first Release() error = %v", err)
	}
	if err := v.Release(); !errors.Is(err, ErrReleased) {
		t.Errorf("second Release() error = %v, want %v", err, ErrReleased)
	}
	if !v.Released() {
		t.Error("Released() = false after Release")
	}
	if calls != 1 {
		t.Errorf("release callback ran %d times, want 1", calls)
	}
	if v.Float32s() != nil {
		t.Error("Float32s() after Release is not nil")
	}
}

func TestView_NonFloatHasNoSamples(t *testing.T) {
	t.Parallel()

	v, _ := Float64s{1, 2, 3}.View()
	if v.Float32s() != nil {
		t.Error("Float32s() of an 8-byte view is not nil")
	}
	if v.Len() != 3 {
		t.Errorf("Len() = %d, want 3", v.Len())
	}
}

func TestMatrix_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := (Matrix{Rows: 2, Cols: 2, Data: []float32{1}}).View(); !errors.Is(err, ErrNotBuffer) {
		t.Errorf("View() error = %v, want %v", err, ErrNotBuffer)
	}
}

func TestFromAny_TypedNil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
	}{
		{"nil matrix pointer", (*Matrix)(nil)},
		{"nil exporter func", ExporterFunc(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := FromAny(tt.v); !errors.Is(err, ErrNotBuffer) {
				t.Errorf("FromAny(%T) error = %v, want %v", tt.v, err, ErrNotBuffer)
			}
		})
	}

	e, err := FromAny(Float32s(nil))
	if err != nil {
		t.Fatalf("FromAny(nil Float32s) error = %v", err)
	}
	v, err := e.View()
	if err != nil || v.Len() != 0 {
		t.Errorf("nil Float32s view = %v, %v; want empty view", v, err)
	}
}

func TestView_ReleaseConcurrent(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	v := NewView([]float32{1, 2}, 4, []int{2}, func() { calls.Add(1) })

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = v.Release()
			_ = v.Released()
		}()
	}
	wg.Wait()

	if !v.Released() {
		t.Error("Released() = false after Release")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("release callback ran %d times, want 1", n)
	}
}

func TestExporterFunc(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")
	_, err := ExporterFunc(func() (*View, error) { return nil, want }).View()
	if !errors.Is(err, want) {
		t.Errorf("View() error = %v, want %v", err, want)
	}
}
