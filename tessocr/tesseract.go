// Package tessocr reads combat power text from screenshots with a local
// Tesseract install, for running the point race logic without the host.
package tessocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/otiai10/gosseract/v2"
	"golang.org/x/image/draw"

	"github.com/MaaXYZ/MaaPointRace/agent/go-service/pointrace"
)

// MetricChars restricts recognition to what a combat power label can contain.
const MetricChars = "0123456789" + pointrace.TenThousandSuffix

// Small in-game labels read far better after upscaling.
const upscale = 3

type Engine struct {
	client *gosseract.Client
}

// NewEngine creates a Tesseract client for lang, e.g. "chi_sim".
func NewEngine(lang string) (*Engine, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage(lang); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_LINE); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set PSM: %w", err)
	}
	if err := client.SetWhitelist(MetricChars); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set whitelist: %w", err)
	}
	// numbers are not dictionary words
	_ = client.SetVariable("load_system_dawg", "false")
	_ = client.SetVariable("load_freq_dawg", "false")

	return &Engine{client: client}, nil
}

func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// ReadText OCRs the roi of img. Whitespace Tesseract inserts between glyphs
// is removed.
func (e *Engine) ReadText(img image.Image, roi maa.Rect) (string, error) {
	crop, ok := pointrace.CropROI(img, roi)
	if !ok {
		return "", fmt.Errorf("roi %v outside image bounds %v", roi, img.Bounds())
	}

	buf, err := encodeForOCR(crop)
	if err != nil {
		return "", err
	}
	if err := e.client.SetImageFromBytes(buf); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.Join(strings.Fields(text), ""), nil
}

func encodeForOCR(src image.Image) ([]byte, error) {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*upscale, b.Dy()*upscale))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
