package object

import (
	"github.com/tomz197/neonroids/internal/draw"
	"github.com/tomz197/neonroids/internal/physics"
)

// Laser is a beam anchored where it was fired. It grows every tick and
// damages everything it touches until its lifetime runs out.
type Laser struct {
	X, Y      float64 // Origin
	Angle     float64 // Fixed direction
	Life      int     // Ticks remaining
	Length    float64 // Current length
	MaxLength float64
	Growth    float64 // Length added per tick
}

// NewLaser creates a zero-length beam at (x,y) pointing along angle.
func NewLaser(x, y, angle float64, lifetime int, growth, maxLength float64) *Laser {
	return &Laser{
		X:         x,
		Y:         y,
		Angle:     angle,
		Life:      lifetime,
		MaxLength: maxLength,
		Growth:    growth,
	}
}

// Update ages the beam and extends it. It returns true when the beam has
// expired.
func (l *Laser) Update() (remove bool) {
	l.Life--
	if l.Length < l.MaxLength {
		l.Length += l.Growth
	}
	return l.Life <= 0
}

// End returns the current tip of the beam.
func (l *Laser) End() (float64, float64) {
	return physics.SegmentEnd(l.X, l.Y, l.Angle, l.Length)
}

// Touches reports whether a circle lies within its own radius of the beam.
func (l *Laser) Touches(cx, cy, radius float64) bool {
	ex, ey := l.End()
	return physics.PointToSegmentDistance(cx, cy, l.X, l.Y, ex, ey) < radius
}

// Draw renders the beam as a line.
func (l *Laser) Draw(ctx DrawContext) {
	ex, ey := l.End()
	ctx.Canvas.SetColor(ColorLaser)
	ctx.Canvas.DrawLine(draw.Point{X: l.X, Y: l.Y}, draw.Point{X: ex, Y: ey})
}
