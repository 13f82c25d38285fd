package pointrace

import (
	"fmt"
	"image"

	"github.com/MaaXYZ/maa-framework-go/v3"
)

// fakeReco answers metric nodes from a table keyed by roi and button nodes
// from a table keyed by index. Absent keys are misses.
type fakeReco struct {
	metrics map[string]string
	buttons map[int]maa.Rect
	calls   []string
}

func newFakeReco() *fakeReco {
	return &fakeReco{
		metrics: make(map[string]string),
		buttons: make(map[int]maa.Rect),
	}
}

func roiKey(r maa.Rect) string {
	return fmt.Sprint(rectSlice(r))
}

func (f *fakeReco) setMetric(r maa.Rect, text string) {
	f.metrics[roiKey(r)] = text
}

func (f *fakeReco) Recognize(entry string, img image.Image, override map[string]any) (Hit, bool) {
	node, _ := override[entry].(map[string]any)

	switch entry {
	case DefaultMetricEntry:
		key := fmt.Sprint(node["roi"])
		f.calls = append(f.calls, "metric:"+key)
		text, ok := f.metrics[key]
		if !ok {
			return Hit{}, false
		}
		return Hit{Text: text}, true
	case DefaultButtonEntry:
		idx, _ := node["index"].(int)
		f.calls = append(f.calls, fmt.Sprintf("button:%d", idx))
		box, ok := f.buttons[idx]
		if !ok {
			return Hit{}, false
		}
		return Hit{Box: box}, true
	}
	f.calls = append(f.calls, "unknown:"+entry)
	return Hit{}, false
}

func (f *fakeReco) buttonCalls() int {
	n := 0
	for _, c := range f.calls {
		if len(c) >= 7 && c[:7] == "button:" {
			n++
		}
	}
	return n
}
