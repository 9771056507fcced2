package images

import (
	"image"
	"image/color"
	"image/draw"
)

// Planes is the multi-channel working representation of an image: one flat
// row-major 8-bit plane per channel. Color sources carry three planes
// (R, G, B); grayscale sources carry a single plane.
type Planes struct {
	// Ch holds one plane per channel, each W*H bytes in row-major order.
	Ch [][]uint8
	// W is the width of every plane in pixels.
	W int
	// H is the height of every plane in pixels.
	H int
}

// SplitPlanes converts a display buffer into per-channel planes. Grayscale
// buffers yield a single plane; everything else yields R, G and B planes at
// 8 bits per channel. Zero-dimension buffers pass through unchanged as
// zero-length planes.
//
// Arguments:
// - src: The display buffer to split.
//
// Returns:
// - The plane representation of src.
//
// @example
// planes := SplitPlanes(decoded)
// fmt.Println(len(planes.Ch)) // 3 for color sources
func SplitPlanes(src image.Image) *Planes {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Grayscale sources keep their single channel instead of being
	// broadcast into three identical planes.
	if gray, ok := src.(*image.Gray); ok {
		plane := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			row := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(plane[y*w:(y+1)*w], gray.Pix[row:row+w])
		}
		return &Planes{Ch: [][]uint8{plane}, W: w, H: h}
	}

	r := make([]uint8, w*h)
	g := make([]uint8, w*h)
	b := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cr, cg, cb, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := y*w + x
			// RGBA() returns 16-bit values; planes store 8 bits per channel.
			r[i] = uint8(cr >> 8)
			g[i] = uint8(cg >> 8)
			b[i] = uint8(cb >> 8)
		}
	}
	return &Planes{Ch: [][]uint8{r, g, b}, W: w, H: h}
}

// ToImage re-encodes the planes into a display buffer of the given format,
// sized W×H. A single-channel plane set is broadcast across the display
// channels so the result stays displayable.
//
// Arguments:
// - format: The DisplayFormat tag to encode into.
//
// Returns:
// - A newly allocated display buffer holding the plane data.
//
// @example
// buf := planes.ToImage(FormatNRGBA)
func (p *Planes) ToImage(format DisplayFormat) draw.Image {
	dst := NewDisplayBuffer(format, p.W, p.H)
	// Gray buffers take the channel average directly; going through Set
	// would collapse color planes with luma weights instead of the mean
	// used everywhere else.
	if gray, ok := dst.(*image.Gray); ok {
		copy(gray.Pix, p.Average())
		return gray
	}
	for y := 0; y < p.H; y++ {
		for x := 0; x < p.W; x++ {
			i := y*p.W + x
			var c color.NRGBA
			if len(p.Ch) == 1 {
				v := p.Ch[0][i]
				c = color.NRGBA{R: v, G: v, B: v, A: 255}
			} else {
				c = color.NRGBA{R: p.Ch[0][i], G: p.Ch[1][i], B: p.Ch[2][i], A: 255}
			}
			dst.Set(x, y, c)
		}
	}
	return dst
}

// Average computes the per-pixel mean across all channel planes, which is
// the grayscale routine. The result is a single flat row-major plane in the same
// iteration order as the inputs.
//
// Returns:
// - A newly allocated W*H plane of channel means (integer division).
//
// @example
// gray := planes.Average()
func (p *Planes) Average() []uint8 {
	out := make([]uint8, p.W*p.H)
	if len(p.Ch) == 0 {
		return out
	}
	for i := range out {
		sum := 0
		for _, ch := range p.Ch {
			sum += int(ch[i])
		}
		out[i] = uint8(sum / len(p.Ch))
	}
	return out
}
