// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	w, err := Decode(&mockDecoder{}, bytes.NewReader(nil), 1)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if w.SampleRate() != 44100 || w.Len() != 100 {
		t.Errorf("Decode() = rate %d len %d, want 44100/100", w.SampleRate(), w.Len())
	}
}

func TestDecode_DecoderFailure(t *testing.T) {
	t.Parallel()

	_, err := Decode(&failingDecoder{}, bytes.NewReader(nil), 0)
	if err == nil {
		t.Fatal("Decode() error = nil, want decoder failure")
	}
}

func TestDecodeFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "clip.wav")
	if err := os.WriteFile(path, []byte("ignored by mock"), 0o644); err != nil {
		t.Fatal(err)
	}

	reg := NewRegistry()
	reg.Register("wav", &mockDecoder{})

	w, err := DecodeFile(reg, path, 0)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if w.Len() != 100 {
		t.Errorf("DecodeFile() len = %d, want 100", w.Len())
	}
}

func TestDecodeFile_Errors(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", &mockDecoder{})

	if _, err := DecodeFile(reg, "clip.flac", 0); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("DecodeFile(.flac) error = %v, want ErrUnsupportedFormat", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.wav")
	if _, err := DecodeFile(reg, missing, 0); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("DecodeFile(missing) error = %v, want os.ErrNotExist", err)
	}
}
