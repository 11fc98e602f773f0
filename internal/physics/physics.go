// Package physics provides collision detection and distance utilities.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is strictly inside radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) < radius*radius
}

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// PointToSegmentDistance returns the distance from point (px,py) to the
// segment (x1,y1)-(x2,y2). The projection parameter is clamped to [0,1], so a
// zero-length segment degrades to the distance to its single point.
func PointToSegmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	cx := x2 - x1
	cy := y2 - y1

	lenSq := cx*cx + cy*cy
	t := -1.0
	if lenSq != 0 {
		t = ((px-x1)*cx + (py-y1)*cy) / lenSq
	}

	var nx, ny float64
	switch {
	case t < 0:
		nx, ny = x1, y1
	case t > 1:
		nx, ny = x2, y2
	default:
		nx = x1 + t*cx
		ny = y1 + t*cy
	}

	return Distance(px, py, nx, ny)
}

// SegmentEnd returns the end point of a segment of the given length that
// starts at (x,y) and points along angle.
func SegmentEnd(x, y, angle, length float64) (float64, float64) {
	return x + math.Cos(angle)*length, y + math.Sin(angle)*length
}
