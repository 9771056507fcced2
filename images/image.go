// Package images holds the image-processing substrate of the visual
// classifier: loading, grayscale conversion, pixel-to-vector flattening and
// sub-image extraction over an immutable Image value.
package images

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/visionlab/visualclassifier/common"
)

// Image stores a decoded image as exclusively owned channel planes together
// with the display format of its original source. Every transformation
// returns a new Image; an Image is never mutated after construction.
type Image struct {
	planes *Planes
	format DisplayFormat
}

// NewImage constructs an Image from a decoded display buffer. The buffer is
// converted into the internal 8-bit-per-channel plane representation and its
// native format tag is recorded. No validation is performed beyond the nil
// check; zero-dimension buffers pass through unchanged.
//
// Arguments:
// - src: A decoded display buffer.
//
// Returns:
// - The constructed Image.
// - error: ErrNilSource when src is nil.
//
// @example
// img, err := NewImage(decoded)
func NewImage(src image.Image) (*Image, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	return newFromBuffer(src), nil
}

// LoadImage constructs an Image by decoding the file at path. Decode
// failures propagate from the codec; no validation is added here, so a nil
// decode result trips NewImage's nil check.
//
// Arguments:
// - path: Path of the image file to load.
//
// Returns:
// - The constructed Image.
// - error: The wrapped decode failure, or ErrNilSource.
//
// @example
// img, err := LoadImage("corpus/frame-001.jpg")
func LoadImage(path string) (*Image, error) {
	decoded, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return NewImage(decoded)
}

// newFromBuffer wraps a non-nil display buffer without validation.
func newFromBuffer(src image.Image) *Image {
	return &Image{
		planes: SplitPlanes(src),
		format: DetectFormat(src),
	}
}

// Width returns the width of the image in pixels.
func (img *Image) Width() int {
	return img.planes.W
}

// Height returns the height of the image in pixels.
func (img *Image) Height() int {
	return img.planes.H
}

// Format returns the display format tag recorded at construction.
func (img *Image) Format() DisplayFormat {
	return img.format
}

// Grayscale converts the image to grayscale and returns the result as a new
// Image; the receiver is not modified. The per-pixel average across all
// channel planes becomes a single-channel display buffer, so the returned
// Image carries one effective channel.
//
// Returns:
// - A grayscale copy of the image.
//
// @example
// gray := img.Grayscale()
func (img *Image) Grayscale() *Image {
	avg := img.planes.Average()
	buf := &image.Gray{
		Pix:    avg,
		Stride: img.planes.W,
		Rect:   image.Rect(0, 0, img.planes.W, img.planes.H),
	}
	return newFromBuffer(buf)
}

// GrayscaleTensor flattens the grayscale pixel intensities into a 1×(W·H)
// row vector. The same channel average as Grayscale is taken, each byte is
// cast to float64 and divided by 255 so every element lies in [0, 1]. A new
// vector is allocated on every call; repeated calls recompute from the
// original color planes.
//
// Returns:
// - A dense row vector of shape (1, Width*Height) with values in [0, 1].
// - error: The tensor arithmetic failure, if any.
//
// @example
// vec, err := img.GrayscaleTensor()
// fmt.Println(vec.Shape()) // (1, 307200) for a 640x480 image
func (img *Image) GrayscaleTensor() (*tensor.Dense, error) {
	avg := img.planes.Average()
	backing := make([]float64, len(avg))
	for i, v := range avg {
		backing[i] = float64(v)
	}
	vec := tensor.New(
		tensor.WithShape(1, len(avg)),
		tensor.Of(tensor.Float64),
		tensor.WithBacking(backing),
	)
	// Zero-dimension images pass through unvalidated, so the vector can be
	// empty; elementwise division panics on an empty backing.
	if len(avg) == 0 {
		return vec, nil
	}
	scaled, err := vec.DivScalar(255.0, true, tensor.UseUnsafe())
	if err != nil {
		return nil, errors.Wrap(err, "normalize grayscale vector")
	}
	return scaled, nil
}

// SubImage extracts the pixels inside the box bounded by the top-left corner
// (left, top) and the exclusive bottom-right corner (right, bottom) into a
// new Image. The receiver is re-rendered into a display buffer, a new buffer
// of the box's size is allocated in the receiver's recorded format, and
// pixels are copied one by one.
//
// Arguments:
// - left: Left x coordinate of the box.
// - top: Top y coordinate of the box.
// - right: Right x coordinate (exclusive).
// - bottom: Bottom y coordinate (exclusive).
//
// Returns:
// - The extracted sub-image.
// - error: ErrBounds when the box has negative size or escapes the source.
//
// @example
// crop, err := img.SubImage(2, 2, 5, 5) // 3x3 region
func (img *Image) SubImage(left, top, right, bottom int) (*Image, error) {
	if right < left || bottom < top ||
		left < 0 || top < 0 || right > img.Width() || bottom > img.Height() {
		return nil, errors.Wrapf(ErrBounds, "box (%d,%d)-(%d,%d) in %dx%d source",
			left, top, right, bottom, img.Width(), img.Height())
	}

	src := img.ToImage()
	dst := NewDisplayBuffer(img.format, right-left, bottom-top)
	for x := left; x < right; x++ {
		for y := top; y < bottom; y++ {
			dst.Set(x-left, y-top, src.At(x, y))
		}
	}
	return newFromBuffer(dst), nil
}

// Crop extracts the sub-image covered by the bounding box's canonical
// integer rectangle.
//
// Arguments:
// - box: The region to extract.
//
// Returns:
// - The extracted sub-image.
// - error: ErrBounds when the box escapes the source.
//
// @example
// crop, err := img.Crop(common.BoundingBox{X1: 10, Y1: 10, X2: 60, Y2: 60})
func (img *Image) Crop(box common.BoundingBox) (*Image, error) {
	rect := box.ToRect()
	return img.SubImage(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
}

// Resize scales the image to the given dimensions with Lanczos3 resampling
// and returns the result as a new Image. Classifier inputs are fixed-size,
// so loaded images are normally resized before vectorization.
//
// Arguments:
// - width: Target width in pixels.
// - height: Target height in pixels.
//
// Returns:
// - The resized image.
//
// @example
// thumb := img.Resize(64, 64)
func (img *Image) Resize(width, height uint) *Image {
	scaled := resize.Resize(width, height, img.ToImage(), resize.Lanczos3)
	return newFromBuffer(scaled)
}

// ToImage re-encodes the channel planes into a display buffer sized to the
// image, tagged with the format recorded at construction. Used both as the
// public accessor and internally by SubImage.
//
// Returns:
// - A newly allocated display buffer; the caller may mutate it freely.
//
// @example
// buf := img.ToImage()
func (img *Image) ToImage() draw.Image {
	return img.planes.ToImage(img.format)
}

// DrawBoundingBox is meant to draw the outline of box in the given color
// onto a copy of the image. It is not implemented: it accepts any input and
// always returns (nil, nil).
//
// TODO: render the box outline onto a copy of the display buffer.
func (img *Image) DrawBoundingBox(box common.BoundingBox, c color.Color) (*Image, error) {
	return nil, nil
}
