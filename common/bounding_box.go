// Package common holds geometry shared by the image crop and draw surfaces.
package common

import (
	"fmt"
	"image"
)

// BoundingBox represents a rectangular region with its label, confidence,
// and corner coordinates.
type BoundingBox struct {
	Label          string
	Confidence     float32
	X1, Y1, X2, Y2 float32
}

func (b *BoundingBox) String() string {
	return fmt.Sprintf("Region %s (confidence %f): (%f, %f), (%f, %f)",
		b.Label, b.Confidence, b.X1, b.Y1, b.X2, b.Y2)
}

// ToRect converts the bounding box to an image.Rectangle.
//
// This method converts floating-point coordinates to integer coordinates
// suitable for image processing operations.
//
// Returns:
// - An image.Rectangle with canonicalized coordinates.
//
// @example
// box := BoundingBox{X1: 100.5, Y1: 100.5, X2: 200.5, Y2: 300.5}
// rect := box.ToRect()
// fmt.Printf("Rectangle: %v\n", rect) // Rectangle: (100,100)-(200,300)
func (b *BoundingBox) ToRect() image.Rectangle {
	return image.Rect(int(b.X1), int(b.Y1), int(b.X2), int(b.Y2)).Canon()
}

// Intersection calculates the intersection area between two bounding boxes.
//
// Arguments:
// - other: The other bounding box to calculate intersection with.
//
// Returns:
// - The area of intersection in pixels as float32.
//
// @example
// box1 := BoundingBox{X1: 0, Y1: 0, X2: 100, Y2: 100}
// box2 := BoundingBox{X1: 50, Y1: 50, X2: 150, Y2: 150}
// area := box1.Intersection(&box2) // Returns 2500.0 (50x50 overlap)
func (b *BoundingBox) Intersection(other *BoundingBox) float32 {
	r1 := b.ToRect()
	r2 := other.ToRect()
	intersected := r1.Intersect(r2).Canon().Size()
	return float32(intersected.X * intersected.Y)
}

// Union calculates the union area between two bounding boxes.
//
// Arguments:
// - other: The other bounding box to calculate union with.
//
// Returns:
// - The area of union in pixels as float32.
//
// @example
// box1 := BoundingBox{X1: 0, Y1: 0, X2: 100, Y2: 100}
// box2 := BoundingBox{X1: 50, Y1: 50, X2: 150, Y2: 150}
// area := box1.Union(&box2) // Returns 17500.0
func (b *BoundingBox) Union(other *BoundingBox) float32 {
	intersectArea := b.Intersection(other)
	r1 := b.ToRect()
	r2 := other.ToRect()
	size1 := r1.Size()
	size2 := r2.Size()
	totalArea := float32(size1.X*size1.Y + size2.X*size2.Y)
	return totalArea - intersectArea
}

// IoU calculates the Intersection over Union between two bounding boxes.
//
// This won't be entirely precise due to conversion to the integral
// rectangles from the image library, but we're only using it to estimate
// which regions overlap too much, so some imprecision is OK.
//
// Arguments:
// - other: The other bounding box to calculate IoU with.
//
// Returns:
// - The IoU value between 0 and 1.
//
// @example
// box1 := BoundingBox{X1: 0, Y1: 0, X2: 100, Y2: 100}
// box2 := BoundingBox{X1: 50, Y1: 50, X2: 150, Y2: 150}
// iou := box1.IoU(&box2) // Returns ~0.143 (2500/17500)
func (b *BoundingBox) IoU(other *BoundingBox) float32 {
	return b.Intersection(other) / b.Union(other)
}
