package pointrace

import (
	"encoding/json"
	"image"

	"github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/rs/zerolog/log"
)

// Hit is a positive answer from a pipeline recognition node.
type Hit struct {
	Box maa.Rect
	// Text is the best OCR result, empty when the node produced none.
	Text string
}

// Recognizer runs a named pipeline node against an image. ok is false when
// the node misses or the host returns no detail at all.
type Recognizer interface {
	Recognize(entry string, img image.Image, override map[string]any) (hit Hit, ok bool)
}

// ContextRecognizer runs nodes through the host's recognition service.
type ContextRecognizer struct {
	Ctx *maa.Context
}

func (r ContextRecognizer) Recognize(entry string, img image.Image, override map[string]any) (Hit, bool) {
	detail := r.Ctx.RunRecognition(entry, img, override)
	if detail == nil || !detail.Hit {
		return Hit{}, false
	}
	return Hit{
		Box:  detail.Box,
		Text: bestText(detail.DetailJson),
	}, true
}

// bestText pulls best.text out of an OCR detail. Some node types wrap the
// result once more under best.detail.
func bestText(detailJSON string) string {
	var detail struct {
		Best *struct {
			Text   string `json:"text"`
			Detail *struct {
				Best *struct {
					Text string `json:"text"`
				} `json:"best"`
			} `json:"detail"`
		} `json:"best"`
	}
	if err := json.Unmarshal([]byte(detailJSON), &detail); err != nil {
		log.Debug().Err(err).Str("detail", detailJSON).Msg("[PointRace]无法解析识别详情")
		return ""
	}
	if detail.Best == nil {
		return ""
	}
	if detail.Best.Text != "" {
		return detail.Best.Text
	}
	if detail.Best.Detail != nil && detail.Best.Detail.Best != nil {
		return detail.Best.Detail.Best.Text
	}
	return ""
}
