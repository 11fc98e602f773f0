package physics

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           float64
	}{
		{"same point", 0, 0, 0, 0, 0},
		{"horizontal", 0, 0, 5, 0, 5},
		{"vertical", 0, 0, 0, 5, 5},
		{"diagonal", 0, 0, 3, 4, 5},
		{"negative", -1, -1, 2, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.x1, tt.y1, tt.x2, tt.y2); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(0, 0, 15, 50, 0, 40) {
		t.Error("circles 50 apart with radii 15+40 should overlap")
	}
	if CirclesOverlap(0, 0, 15, 55, 0, 40) {
		t.Error("touching circles should not overlap (strict <)")
	}
}

func TestPointInCircle(t *testing.T) {
	if !PointInCircle(10, 0, 0, 0, 40) {
		t.Error("point 10 from center of r=40 circle should be inside")
	}
	if PointInCircle(40, 0, 0, 0, 40) {
		t.Error("point on the rim should not count")
	}
}

func TestPointToSegmentDistance(t *testing.T) {
	tests := []struct {
		name                   string
		px, py, x1, y1, x2, y2 float64
		want                   float64
	}{
		{"perpendicular to middle", 5, 3, 0, 0, 10, 0, 3},
		{"beyond end clamps to end", 13, 4, 0, 0, 10, 0, 5},
		{"before start clamps to start", -3, 4, 0, 0, 10, 0, 5},
		{"on the segment", 4, 0, 0, 0, 10, 0, 0},
		{"zero length segment", 3, 4, 0, 0, 0, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointToSegmentDistance(tt.px, tt.py, tt.x1, tt.y1, tt.x2, tt.y2)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PointToSegmentDistance() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSegmentEnd(t *testing.T) {
	x, y := SegmentEnd(10, 10, -math.Pi/2, 100)
	if math.Abs(x-10) > 1e-9 || math.Abs(y+90) > 1e-9 {
		t.Errorf("SegmentEnd() = (%f, %f), want (10, -90)", x, y)
	}
}

func TestPointToSegmentDistance_NeverExceedsEndpoints(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		coord := rapid.Float64Range(-1000, 1000)
		px, py := coord.Draw(t, "px"), coord.Draw(t, "py")
		x1, y1 := coord.Draw(t, "x1"), coord.Draw(t, "y1")
		x2, y2 := coord.Draw(t, "x2"), coord.Draw(t, "y2")

		d := PointToSegmentDistance(px, py, x1, y1, x2, y2)
		if d < 0 {
			t.Fatalf("negative distance %f", d)
		}
		nearest := math.Min(Distance(px, py, x1, y1), Distance(px, py, x2, y2))
		if d > nearest+1e-6 {
			t.Fatalf("segment distance %f exceeds endpoint distance %f", d, nearest)
		}
	})
}
