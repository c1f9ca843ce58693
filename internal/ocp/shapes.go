package ocp

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/mesh-intelligence/solid/pkg/types"
)

// Rectangle is a shape with a width and a height.
type Rectangle struct {
	Width  float64
	Height float64
}

// NewRectangle returns a rectangle, rejecting negative, infinite or NaN sides.
func NewRectangle(width, height float64) (Rectangle, error) {
	if !validDimension(width) || !validDimension(height) {
		return Rectangle{}, fmt.Errorf("rectangle %vx%v: %w", width, height, types.ErrInvalidDimension)
	}
	return Rectangle{Width: width, Height: height}, nil
}

func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Circle is a shape with a radius.
type Circle struct {
	Radius float64
}

// NewCircle returns a circle, rejecting a negative, infinite or NaN radius.
func NewCircle(radius float64) (Circle, error) {
	if !validDimension(radius) {
		return Circle{}, fmt.Errorf("circle r=%v: %w", radius, types.ErrInvalidDimension)
	}
	return Circle{Radius: radius}, nil
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

var (
	_ types.Shape = Rectangle{}
	_ types.Shape = Circle{}
)

func validDimension(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// TotalArea sums the areas of shapes. It works for any types.Shape, so new
// shapes need no change here.
func TotalArea(shapes ...types.Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}

// WriteArea writes "Area of <name>: <area>" using the shortest decimal
// representation that round-trips.
func WriteArea(w io.Writer, name string, s types.Shape) error {
	area := strconv.FormatFloat(s.Area(), 'f', -1, 64)
	return types.WriteLine(w, fmt.Sprintf(types.FormatArea, name, area))
}
