package images

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DecodeFile decodes an image file into a display buffer. Supported formats
// are the registered decoders: JPEG, PNG, GIF, BMP and TIFF. No format list
// is enforced here; an unregistered format surfaces as a decode error.
//
// Arguments:
// - path: Path of the image file to decode.
//
// Returns:
// - The decoded display buffer.
// - error: The underlying open/decode failure, wrapped with the path.
//
// @example
// decoded, err := DecodeFile("corpus/frame-001.jpg")
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open image %s", path)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s", path)
	}
	return decoded, nil
}
