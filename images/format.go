package images

import (
	"image"
	"image/draw"
)

// DisplayFormat identifies the memory layout of a display buffer, the
// packed-pixel representation produced by the platform's image I/O. The tag
// is recorded once, when an Image is constructed, and reused whenever the
// Image is re-encoded into a display buffer so derived images keep the
// source's pixel layout.
type DisplayFormat int

const (
	// FormatDefault marks a source whose concrete layout the codec cannot
	// reproduce; re-encoding falls back to 8-bit RGBA.
	FormatDefault DisplayFormat = iota
	// FormatRGBA is 8-bit alpha-premultiplied RGBA.
	FormatRGBA
	// FormatNRGBA is 8-bit non-premultiplied RGBA (PNG with alpha).
	FormatNRGBA
	// FormatGray is 8-bit single-channel grayscale.
	FormatGray
	// FormatCMYK is 8-bit CMYK (baseline JPEG variants).
	FormatCMYK
	// FormatYCbCr is the subsampled layout of JPEG sources. YCbCr buffers
	// are read-only, so re-encoding falls back to RGBA.
	FormatYCbCr
)

// DetectFormat returns the DisplayFormat tag for a decoded display buffer.
//
// Arguments:
// - src: The decoded buffer to inspect.
//
// Returns:
//   - The DisplayFormat matching the buffer's concrete layout, or
//     FormatDefault when the layout is not one the codec can write back.
//
// @example
// format := DetectFormat(decoded) // *image.NRGBA -> FormatNRGBA
func DetectFormat(src image.Image) DisplayFormat {
	switch src.(type) {
	case *image.RGBA:
		return FormatRGBA
	case *image.NRGBA:
		return FormatNRGBA
	case *image.Gray:
		return FormatGray
	case *image.CMYK:
		return FormatCMYK
	case *image.YCbCr:
		return FormatYCbCr
	default:
		return FormatDefault
	}
}

// NewDisplayBuffer allocates an empty, writable display buffer of the given
// format and size.
//
// Arguments:
// - format: The DisplayFormat tag recorded at construction.
// - width: Buffer width in pixels.
// - height: Buffer height in pixels.
//
// Returns:
//   - A writable display buffer. Formats without a writable counterpart
//     (FormatYCbCr, FormatDefault) allocate RGBA.
//
// @example
// buf := NewDisplayBuffer(FormatNRGBA, 640, 480)
func NewDisplayBuffer(format DisplayFormat, width, height int) draw.Image {
	rect := image.Rect(0, 0, width, height)
	switch format {
	case FormatRGBA:
		return image.NewRGBA(rect)
	case FormatNRGBA:
		return image.NewNRGBA(rect)
	case FormatGray:
		return image.NewGray(rect)
	case FormatCMYK:
		return image.NewCMYK(rect)
	default:
		return image.NewRGBA(rect)
	}
}
