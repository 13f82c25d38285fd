package pointrace

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/rs/zerolog/log"
)

// Dumper saves ROI crops for diagnosing OCR failures. A nil Dumper does nothing.
type Dumper struct {
	Dir string
	now func() time.Time
}

// NewDumper returns a Dumper writing into dir, or nil when debugging is off.
func NewDumper(debug bool, dir string) *Dumper {
	if !debug {
		return nil
	}
	if dir == "" {
		dir = filepath.Join("debug", "pointrace")
	}
	return &Dumper{Dir: dir, now: time.Now}
}

// Save writes the roi crop of img as <name>_<x>_<y>_<unixmilli>.png and
// returns the written path, or "" when nothing was written.
func (d *Dumper) Save(name string, img image.Image, roi maa.Rect) string {
	if d == nil || img == nil {
		return ""
	}

	crop, ok := CropROI(img, roi)
	if !ok {
		log.Debug().Ints("roi", rectSlice(roi)).Msg("[PointRace]ROI 超出截图范围，跳过保存")
		return ""
	}

	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		log.Warn().Err(err).Str("dir", d.Dir).Msg("[PointRace]无法创建调试目录")
		return ""
	}

	now := time.Now
	if d.now != nil {
		now = d.now
	}
	path := filepath.Join(d.Dir, fmt.Sprintf("%s_%d_%d_%d.png", name, roi.X(), roi.Y(), now().UnixMilli()))
	f, err := os.Create(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("[PointRace]无法保存调试图像")
		return ""
	}
	defer f.Close()

	if err := png.Encode(f, crop); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("[PointRace]调试图像编码失败")
		return ""
	}
	return path
}

// CropROI returns the part of img inside roi, clipped to the image bounds.
func CropROI(img image.Image, roi maa.Rect) (image.Image, bool) {
	type subImager interface {
		SubImage(r image.Rectangle) image.Image
	}

	rect := image.Rect(roi.X(), roi.Y(), roi.X()+roi.Width(), roi.Y()+roi.Height()).Intersect(img.Bounds())
	if rect.Empty() {
		return nil, false
	}
	si, ok := img.(subImager)
	if !ok {
		return nil, false
	}
	return si.SubImage(rect), true
}
