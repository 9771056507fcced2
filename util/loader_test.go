package util

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), A: 255})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestLoadImageDirectory(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b-sample.png"), 5, 5)
	writePNG(t, filepath.Join(dir, "a-sample.png"), 3, 3)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "labels.txt"), []byte("ignored"), 0o644))

	loaded, err := LoadImageDirectory(dir)
	require.NoError(t, err)

	// Non-raster files are skipped and images come back in filename order.
	require.Len(t, loaded, 2)
	assert.Equal(t, 3, loaded[0].Width())
	assert.Equal(t, 5, loaded[1].Width())
}

func TestLoadImageDirectoryMissing(t *testing.T) {
	loaded, err := LoadImageDirectory(filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
	assert.Nil(t, loaded)
}

func TestLoadImageDirectoryCorruptImage(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "good.png"), 4, 4)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.jpg"), []byte("junk"), 0o644))

	loaded, err := LoadImageDirectory(dir)

	assert.Error(t, err, "the first decode failure should abort the load")
	assert.Nil(t, loaded)
}

func TestLoadImageDirectoryEmpty(t *testing.T) {
	loaded, err := LoadImageDirectory(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, loaded)
}
