package pointrace

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDumper(t *testing.T) {
	assert.Nil(t, NewDumper(false, "x"))
	assert.Equal(t, filepath.Join("debug", "pointrace"), NewDumper(true, "").Dir)
}

func TestDumper_Save(t *testing.T) {
	dir := t.TempDir()
	d := &Dumper{Dir: dir, now: func() time.Time { return time.UnixMilli(1700000000000) }}

	path := d.Save("unreadable", testFrame, maa.Rect{843, 236, 100, 30})
	require.Equal(t, filepath.Join(dir, "unreadable_843_236_1700000000000.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
}

func TestDumper_SaveClipsAndSkips(t *testing.T) {
	dir := t.TempDir()
	d := NewDumper(true, dir)

	assert.Empty(t, d.Save("out", testFrame, maa.Rect{5000, 5000, 10, 10}))
	assert.Empty(t, d.Save("nil", nil, maa.Rect{0, 0, 10, 10}))

	var none *Dumper
	assert.Empty(t, none.Save("noop", testFrame, maa.Rect{0, 0, 10, 10}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCropROI(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))

	crop, ok := CropROI(img, maa.Rect{90, 40, 20, 20})
	require.True(t, ok)
	assert.Equal(t, image.Rect(90, 40, 100, 50), crop.Bounds())

	_, ok = CropROI(img, maa.Rect{200, 200, 1, 1})
	assert.False(t, ok)
}
