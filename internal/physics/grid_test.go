package physics

import (
	"slices"
	"testing"

	"pgregory.net/rapid"
)

func TestSpatialGridQueryAround(t *testing.T) {
	g := NewSpatialGrid(100, 100, 10)
	g.Insert(5, 5, 0)   // cell (0,0)
	g.Insert(15, 5, 1)  // cell (1,0)
	g.Insert(55, 55, 2) // far away
	g.Insert(99, 99, 3) // last cell; must not wrap to (0,0)

	var got []int
	g.QueryAround(5, 5, func(i int) bool {
		got = append(got, i)
		return false
	})
	slices.Sort(got)
	if !slices.Equal(got, []int{0, 1}) {
		t.Errorf("QueryAround(5,5) = %v, want [0 1]", got)
	}
}

func TestSpatialGridClear(t *testing.T) {
	g := NewSpatialGrid(50, 50, 10)
	g.Insert(1, 1, 7)
	g.Clear()
	g.QueryAround(1, 1, func(i int) bool {
		t.Fatalf("unexpected item %d after Clear", i)
		return true
	})
}

func TestSpatialGridLowestMatch(t *testing.T) {
	g := NewSpatialGrid(100, 100, 10)
	g.Insert(12, 12, 4)
	g.Insert(8, 8, 2)
	g.Insert(11, 9, 9)

	idx, ok := g.LowestMatch(10, 10, func(i int) bool { return i != 2 })
	if !ok || idx != 4 {
		t.Errorf("LowestMatch = %d, %v; want 4, true", idx, ok)
	}

	if _, ok := g.LowestMatch(90, 90, func(int) bool { return true }); ok {
		t.Error("LowestMatch should find nothing in an empty neighborhood")
	}
}

// The grid must agree with a linear scan over circles no larger than the cell size.
func TestSpatialGridMatchesLinearScan(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		const w, h, cell = 300.0, 200.0, 40.0
		n := rapid.IntRange(0, 30).Draw(t, "n")
		xs := make([]float64, n)
		ys := make([]float64, n)
		rs := make([]float64, n)

		g := NewSpatialGrid(w, h, cell)
		for i := 0; i < n; i++ {
			xs[i] = rapid.Float64Range(0, w).Draw(t, "x")
			ys[i] = rapid.Float64Range(0, h).Draw(t, "y")
			rs[i] = rapid.Float64Range(1, cell).Draw(t, "r")
			g.Insert(xs[i], ys[i], i)
		}

		px := rapid.Float64Range(0, w).Draw(t, "px")
		py := rapid.Float64Range(0, h).Draw(t, "py")
		hit := func(i int) bool { return PointInCircle(px, py, xs[i], ys[i], rs[i]) }

		want := -1
		for i := 0; i < n; i++ {
			if hit(i) {
				want = i
				break
			}
		}

		got, ok := g.LowestMatch(px, py, hit)
		if !ok {
			got = -1
		}
		if got != want {
			t.Fatalf("LowestMatch = %d, linear scan = %d", got, want)
		}
	})
}
