// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"fmt"
	"reflect"
)

// Exporter lends its memory out as a View.
type Exporter interface {
	View() (*View, error)
}

// ExporterFunc adapts a function to Exporter.
type ExporterFunc func() (*View, error)

func (f ExporterFunc) View() (*View, error) { return f() }

// Float32s exports a slice without copying.
type Float32s []float32

func (s Float32s) View() (*View, error) {
	return NewView(s, 4, []int{len(s)}, nil), nil
}

// Float64s exports double precision samples. The view has itemsize 8.
type Float64s []float64

func (s Float64s) View() (*View, error) {
	return NewView(nil, 8, []int{len(s)}, nil), nil
}

// Int16s exports 16-bit PCM. The view has itemsize 2.
type Int16s []int16

func (s Int16s) View() (*View, error) {
	return NewView(nil, 2, []int{len(s)}, nil), nil
}

// Matrix is a row-major two dimensional float32 block.
type Matrix struct {
	Rows, Cols int
	Data       []float32
}

func (m Matrix) View() (*View, error) {
	if m.Rows < 0 || m.Cols < 0 || m.Rows*m.Cols != len(m.Data) {
		return nil, fmt.Errorf("%w: %dx%d matrix over %d values", ErrNotBuffer, m.Rows, m.Cols, len(m.Data))
	}

	return NewView(m.Data, 4, []int{m.Rows, m.Cols}, nil), nil
}

// FromAny finds an Exporter for v. Slices of the supported element types
// are wrapped without copying; [][]float32 is flattened into a Matrix and
// must be rectangular.
func FromAny(v any) (Exporter, error) {
	switch x := v.(type) {
	case Exporter:
		if isNil(x) {
			return nil, fmt.Errorf("%w: nil %T", ErrNotBuffer, v)
		}
		return x, nil
	case []float32:
		return Float32s(x), nil
	case []float64:
		return Float64s(x), nil
	case []int16:
		return Int16s(x), nil
	case [][]float32:
		return matrixOf(x)
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotBuffer, v)
	}
}

func matrixOf(rows [][]float32) (Matrix, error) {
	m := Matrix{Rows: len(rows)}
	if len(rows) > 0 {
		m.Cols = len(rows[0])
	}

	m.Data = make([]float32, 0, m.Rows*m.Cols)
	for i, row := range rows {
		if len(row) != m.Cols {
			return Matrix{}, fmt.Errorf("%w: row %d has %d values, want %d", ErrNotBuffer, i, len(row), m.Cols)
		}
		m.Data = append(m.Data, row...)
	}

	return m, nil
}

// isNil catches typed nil pointers and funcs hidden in an interface. A nil
// slice is an empty buffer, not a missing one.
func isNil(e Exporter) bool {
	rv := reflect.ValueOf(e)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Interface, reflect.Map, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
