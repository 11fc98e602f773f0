package object

// TextWriter places strings at 1-based terminal positions.
type TextWriter interface {
	WriteAt(col, row int, s string)
}

// Text is a simple drawable text label.
// Coordinates are 1-based terminal positions; when Centered is set, X is
// the column the label is centered on.
type Text struct {
	X        int
	Y        int
	Value    string
	Centered bool
}

// Draw writes the text at its position.
func (t Text) Draw(w TextWriter) {
	if t.Value == "" {
		return
	}
	x := t.X
	if t.Centered {
		x -= len(t.Value) / 2
	}
	y := t.Y
	if x < 1 {
		x = 1
	}
	if y < 1 {
		y = 1
	}
	w.WriteAt(x, y, t.Value)
}
