package pointrace

import (
	"image"

	"github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/rs/zerolog/log"
)

const DefaultMetricEntry = "GetSenryokuText"

// MetricReader reads a combat power value from one ROI.
type MetricReader struct {
	Reco  Recognizer
	Entry string
	// Dump, when set, stores the crop of every unreadable ROI.
	Dump *Dumper
}

func (m *MetricReader) Read(img image.Image, roi maa.Rect) Reading {
	entry := m.Entry
	if entry == "" {
		entry = DefaultMetricEntry
	}

	hit, ok := m.Reco.Recognize(entry, img, map[string]any{
		entry: map[string]any{
			"roi": rectSlice(roi),
		},
	})
	if !ok || hit.Text == "" {
		log.Warn().Ints("roi", rectSlice(roi)).Bool("hit", ok).Msg("[PointRace]无法读取到战力！")
		m.Dump.Save("unreadable", img, roi)
		return Unreadable
	}

	reading := ParseMetric(hit.Text)
	if !reading.OK {
		log.Warn().Str("text", hit.Text).Ints("roi", rectSlice(roi)).Msg("[PointRace]战力解析错误")
		m.Dump.Save("malformed", img, roi)
		return Unreadable
	}

	log.Info().Str("text", hit.Text).Int64("value", reading.Value).Msg("[PointRace]读取到战力")
	return reading
}

func rectSlice(r maa.Rect) []int {
	return []int{r.X(), r.Y(), r.Width(), r.Height()}
}
