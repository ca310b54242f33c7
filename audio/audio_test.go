// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/ik5/ohrli/internal/audiotest"
)

type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}
	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_FormatKeysAreNormalized(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "ogg"}
	registry.Register(".OGG", decoder)

	for _, key := range []string{"ogg", ".ogg", "OGG", ".Ogg"} {
		got, ok := registry.Get(key)
		if !ok || got != decoder {
			t.Errorf("Registry.Get(%q) = %v, %v; want registered decoder", key, got, ok)
		}
	}
}

func TestRegistry_ForPath(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	registry.Register("wav", wavDecoder)

	tests := []struct {
		name    string
		path    string
		want    Decoder
		wantFmt string
	}{
		{name: "lower case", path: "/tmp/ref.wav", want: wavDecoder},
		{name: "upper case", path: "takes/REF.WAV", want: wavDecoder},
		{name: "unknown", path: "song.flac", wantFmt: "flac"},
		{name: "no extension", path: "README", wantFmt: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := registry.ForPath(tt.path)
			if tt.want != nil {
				if err != nil {
					t.Fatalf("ForPath(%q) error = %v", tt.path, err)
				}
				if got != tt.want {
					t.Errorf("ForPath(%q) returned a different decoder", tt.path)
				}
				return
			}

			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Fatalf("ForPath(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
			}

			var ufe *UnsupportedFormatError
			if !errors.As(err, &ufe) {
				t.Fatalf("ForPath(%q) error is not *UnsupportedFormatError", tt.path)
			}
			if ufe.Format != tt.wantFmt {
				t.Errorf("UnsupportedFormatError.Format = %q, want %q", ufe.Format, tt.wantFmt)
			}
		})
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, f := range []string{"wav", "mp3", "ogg", "aiff"} {
		registry.Register(f, &mockDecoder{name: f})
	}

	want := []string{"aiff", "mp3", "ogg", "wav"}
	if got := registry.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			format := []string{"wav", "mp3", "ogg", "aiff"}[i%4]
			registry.Register(format, &mockDecoder{name: format})
			registry.Get(format)
			registry.Formats()
		}()
	}
	wg.Wait()

	if got := len(registry.Formats()); got != 4 {
		t.Errorf("len(Formats()) = %d, want 4", got)
	}
}

func TestUnsupportedFormatError_Message(t *testing.T) {
	t.Parallel()

	err := &UnsupportedFormatError{Format: "flac"}
	if got, want := err.Error(), `unsupported audio format: "flac"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &UnsupportedFormatError{}
	if got, want := err.Error(), "unsupported audio format: missing file extension"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
