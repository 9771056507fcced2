package images

import "github.com/pkg/errors"

var (
	// ErrNilSource is returned when a constructor receives a nil display
	// buffer.
	ErrNilSource = errors.New("images: source buffer is nil")
	// ErrBounds is returned when a sub-image box has negative size or
	// escapes the source image's bounds.
	ErrBounds = errors.New("images: box outside source bounds")
)
