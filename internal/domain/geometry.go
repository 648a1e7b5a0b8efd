package domain

// Point is a 2D coordinate in viewport space.
type Point struct {
	X float64
	Y float64
}

// Add returns the point translated by p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the point translated by -p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Rect is an axis-aligned bounding box given by its origin and size.
// Zero-area rects are legal and represent empty or collapsed elements.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Top returns the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Left returns the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Center returns the midpoint of the rect's corners.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Translate returns the rect moved by the given offset.
func (r Rect) Translate(offset Point) Rect {
	return Rect{X: r.X + offset.X, Y: r.Y + offset.Y, Width: r.Width, Height: r.Height}
}

// Contains reports whether p lies within the rect, edges inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Direction classifies pointer movement between two samples.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Side identifies one edge of a rect.
type Side int

const (
	TopSide Side = iota
	BottomSide
	LeftSide
	RightSide
)

func (s Side) String() string {
	switch s {
	case TopSide:
		return "top"
	case BottomSide:
		return "bottom"
	case LeftSide:
		return "left"
	case RightSide:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionBetween classifies the movement from p1 to p2 by its dominant
// axis. A perfect diagonal (|dx| == |dy|, both nonzero) resolves to the
// vertical branch; list reordering is predominantly vertical, so ties
// favor up/down on purpose.
func DirectionBetween(p1, p2 Point) Direction {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	if dx == 0 && dy == 0 {
		return DirectionNone
	}

	if abs(dx) > abs(dy) {
		if dx > 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if dy > 0 {
		return DirectionDown
	}
	return DirectionUp
}

// HalfOf splits rect at its center line perpendicular to side and returns
// the half nearer to that side.
func HalfOf(side Side, rect Rect) Rect {
	center := rect.Center()
	switch side {
	case TopSide:
		return Rect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: center.Y - rect.Y}
	case BottomSide:
		return Rect{X: rect.X, Y: center.Y, Width: rect.Width, Height: rect.Bottom() - center.Y}
	case LeftSide:
		return Rect{X: rect.X, Y: rect.Y, Width: center.X - rect.X, Height: rect.Height}
	default:
		return Rect{X: center.X, Y: rect.Y, Width: rect.Right() - center.X, Height: rect.Height}
	}
}

// sideOf maps a movement direction to the same-named side of a target rect.
func sideOf(d Direction) Side {
	switch d {
	case DirectionUp:
		return TopSide
	case DirectionDown:
		return BottomSide
	case DirectionLeft:
		return LeftSide
	default:
		return RightSide
	}
}

// DetectSideIntersect reports whether the pointer, moving from p1 to p2,
// has entered the half of rect that lies in the direction of travel. A
// reorder commits only once the pointer crosses the target's midpoint,
// which keeps hovering near a boundary from flickering between orders.
func DetectSideIntersect(p1, p2 Point, rect Rect) bool {
	dir := DirectionBetween(p1, p2)
	if dir == DirectionNone {
		return false
	}
	return HalfOf(sideOf(dir), rect).Contains(p2)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
