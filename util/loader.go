// Package util provides helpers for loading classifier training corpora.
package util

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/visionlab/visualclassifier/images"
)

// LoadImageDirectory decodes every image file in a directory. Files are
// filtered on raster extensions and decoded in sorted filename order so a
// training corpus loads deterministically. The first decode failure aborts
// the load.
//
// Arguments:
// - dir: Directory path containing image files.
//
// Returns:
// - []*images.Image: The decoded images in sorted filename order.
// - error: Error if reading the directory or decoding a file fails.
func LoadImageDirectory(dir string) ([]*images.Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read image directory %s", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	loaded := make([]*images.Image, 0, len(names))
	for _, name := range names {
		img, loadErr := images.LoadImage(filepath.Join(dir, name))
		if loadErr != nil {
			return nil, loadErr
		}
		loaded = append(loaded, img)
	}

	return loaded, nil
}
