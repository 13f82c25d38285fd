package pointrace

import (
	"image"

	"github.com/MaaXYZ/maa-framework-go/v3"
)

// DefaultButtonEntry is the pipeline node resolving a challenge button. The
// spelling matches the node name shipped in the pipeline resources.
const DefaultButtonEntry = "point_race_get_chanllenge_button"

// ActionLocator finds the challenge button belonging to a candidate row.
type ActionLocator struct {
	Reco  Recognizer
	Entry string
}

func (l *ActionLocator) Locate(img image.Image, index int) (maa.Rect, bool) {
	entry := l.Entry
	if entry == "" {
		entry = DefaultButtonEntry
	}

	hit, ok := l.Reco.Recognize(entry, img, map[string]any{
		entry: map[string]any{
			"index": index,
		},
	})
	if !ok {
		return maa.Rect{}, false
	}
	return hit.Box, true
}
