//go:build ocr

// Package ocr recovers lecture-script text from scanned or photographed
// script pages, for authors who only have their script on paper.
//
// This package wraps the Tesseract OCR engine via gosseract and defaults to
// simplified Chinese. It requires Tesseract plus the chi_sim language data to
// be installed. On macOS:
//
//	brew install tesseract tesseract-lang
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-chi-sim
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// DefaultLanguage is the Tesseract language pack used unless overridden.
const DefaultLanguage = "chi_sim"

// Client wraps Tesseract for script recognition.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client configured for Chinese lecture scripts. Close it
// when no longer needed to release Tesseract resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(DefaultLanguage); err != nil {
		client.Close()
		return nil, fmt.Errorf("setting OCR language: %w", err)
	}
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage overrides the recognition language. Multiple languages can be
// specified as a "+" separated string (e.g. "chi_sim+eng").
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeScript performs OCR on an image of a script page (PNG, JPEG,
// TIFF) and returns trimmed, non-empty lines in reading order. Low-resolution
// photos are upscaled before recognition.
func (c *Client) RecognizeScript(imageData []byte) ([]string, error) {
	prepared, err := prepare(imageData)
	if err != nil {
		return nil, err
	}
	if err := c.client.SetImageFromBytes(prepared); err != nil {
		return nil, fmt.Errorf("setting OCR image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return nil, fmt.Errorf("recognizing script: %w", err)
	}

	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// prepare upscales small images so Tesseract sees enough pixels per glyph.
// Images that fail to decode are passed through untouched; Tesseract handles
// formats the standard library does not.
func prepare(imageData []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return imageData, nil
	}
	scaled := Upscale(img, minRecognitionWidth)
	if scaled == img {
		return imageData, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encoding prepared image: %w", err)
	}
	return buf.Bytes(), nil
}
