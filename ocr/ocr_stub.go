//go:build !ocr

// Package ocr recovers lecture-script text from scanned or photographed
// script pages.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All operations return ErrNotEnabled. To enable OCR, rebuild with the "ocr"
// build tag:
//
//	go build -tags ocr
//
// This requires Tesseract plus the chi_sim language data to be installed.
package ocr

import "errors"

// ErrNotEnabled is returned when OCR operations are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable it.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// DefaultLanguage is the Tesseract language pack used unless overridden.
const DefaultLanguage = "chi_sim"

// Client is a stub OCR client that returns ErrNotEnabled for all operations.
type Client struct{}

// New returns ErrNotEnabled.
func New() (*Client, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op on the stub client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns ErrNotEnabled.
func (c *Client) SetLanguage(string) error {
	return ErrNotEnabled
}

// RecognizeScript returns ErrNotEnabled.
func (c *Client) RecognizeScript([]byte) ([]string, error) {
	return nil, ErrNotEnabled
}
