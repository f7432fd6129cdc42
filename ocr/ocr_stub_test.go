//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestStub_New(t *testing.T) {
	if _, err := New(); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("New() error = %v, want ErrNotEnabled", err)
	}
}

func TestStub_Methods(t *testing.T) {
	c := &Client{}

	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
	if err := c.SetLanguage("chi_sim"); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("SetLanguage() error = %v, want ErrNotEnabled", err)
	}
	if _, err := c.RecognizeScript(nil); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("RecognizeScript() error = %v, want ErrNotEnabled", err)
	}
}
