// Package offline answers the point race pipeline nodes without the host:
// metric nodes go to a local OCR engine, button nodes to calibrated ROIs.
package offline

import (
	"image"

	"github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/rs/zerolog/log"

	"github.com/MaaXYZ/MaaPointRace/agent/go-service/pointrace"
)

type TextReader interface {
	ReadText(img image.Image, roi maa.Rect) (string, error)
}

type Recognizer struct {
	Text        TextReader
	MetricEntry string
	ButtonEntry string
	Buttons     []maa.Rect
}

// NewRecognizer uses the node names and button ROIs of p.
func NewRecognizer(text TextReader, p pointrace.Params) *Recognizer {
	buttons := make([]maa.Rect, len(p.ButtonROIs))
	for i, r := range p.ButtonROIs {
		buttons[i] = maa.Rect{r[0], r[1], r[2], r[3]}
	}
	return &Recognizer{
		Text:        text,
		MetricEntry: p.MetricEntry,
		ButtonEntry: p.ButtonEntry,
		Buttons:     buttons,
	}
}

func (r *Recognizer) Recognize(entry string, img image.Image, override map[string]any) (pointrace.Hit, bool) {
	node, _ := override[entry].(map[string]any)

	switch entry {
	case r.MetricEntry:
		roi, ok := roiOf(node)
		if !ok {
			log.Warn().Str("entry", entry).Msg("metric node without roi")
			return pointrace.Hit{}, false
		}
		text, err := r.Text.ReadText(img, roi)
		if err != nil {
			log.Warn().Err(err).Str("entry", entry).Msg("offline OCR failed")
			return pointrace.Hit{}, false
		}
		if text == "" {
			return pointrace.Hit{}, false
		}
		return pointrace.Hit{Box: roi, Text: text}, true

	case r.ButtonEntry:
		idx, ok := node["index"].(int)
		if !ok || idx < 0 || idx >= len(r.Buttons) {
			return pointrace.Hit{}, false
		}
		return pointrace.Hit{Box: r.Buttons[idx]}, true
	}

	log.Debug().Str("entry", entry).Msg("unknown node")
	return pointrace.Hit{}, false
}

func roiOf(node map[string]any) (maa.Rect, bool) {
	roi, ok := node["roi"].([]int)
	if !ok || len(roi) != 4 {
		return maa.Rect{}, false
	}
	return maa.Rect{roi[0], roi[1], roi[2], roi[3]}, true
}
