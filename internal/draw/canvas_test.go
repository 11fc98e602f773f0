package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestCanvasRenderHalfBlocks(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0) // top half of cell (1,1)
	c.Set(1, 1) // bottom half of cell (2,1)
	c.Set(2, 0)
	c.Set(2, 1) // both halves of cell (3,1)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	for _, want := range []string{"\033[1;1H\033[0m▀▄█", "\033[2;1H    "} {
		if !strings.Contains(out, want) {
			t.Errorf("first render %q missing %q", out, want)
		}
	}
}

func TestCanvasRenderOnlyChanges(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Set(1, 0)

	var first bytes.Buffer
	c.Render(&first)

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Errorf("unchanged frame wrote %q", second.String())
	}

	c.Clear()
	var third bytes.Buffer
	c.Render(&third)
	if got := third.String(); got != "\033[1;2H " {
		t.Errorf("cleared pixel render = %q, want a single space at (1,2)", got)
	}
}

func TestCanvasForceRedrawAndDirtyText(t *testing.T) {
	c := NewCanvas(5, 1)
	var buf bytes.Buffer
	c.Render(&buf)

	buf.Reset()
	c.MarkTextDirty(2, 1, 2)
	c.Render(&buf)
	if got := buf.String(); got != "\033[1;2H  " {
		t.Errorf("dirty text render = %q", got)
	}

	buf.Reset()
	c.ForceRedraw()
	c.Render(&buf)
	if got := buf.String(); got != "\033[1;1H     " {
		t.Errorf("forced redraw = %q", got)
	}
}

func TestCanvasColors(t *testing.T) {
	c := NewCanvas(3, 1)
	c.SetColor("#00ffff")
	c.Set(0, 0)
	c.Set(1, 0)
	c.SetColor("#ff00ff")
	c.Set(1, 1) // bottom half of a cyan-topped cell stays cyan
	c.Set(2, 1)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	want := "\033[1;1H\033[36m▀█\033[35m▄\033[0m"
	if out != want {
		t.Errorf("render = %q, want %q", out, want)
	}

	// Recoloring a pixel repaints its cell even though the glyph is the same.
	c.Clear()
	c.SetColor("#ffff00")
	c.Set(0, 0)
	c.SetColor("#00ffff")
	c.Set(1, 0)
	c.Set(1, 1)
	c.SetColor("#ff00ff")
	c.Set(2, 1)
	buf.Reset()
	c.Render(&buf)
	if got := buf.String(); got != "\033[1;1H\033[33m▀\033[0m" {
		t.Errorf("recolor render = %q", got)
	}
}

func TestScaledCanvas(t *testing.T) {
	// 800x600 world on a 80x30 terminal: 10 world units per column,
	// 10 world units per sub-pixel row.
	c := NewScaledCanvas(80, 30, 800, 600)

	var buf bytes.Buffer
	c.Render(&buf)
	buf.Reset()

	c.SetFloat(400, 300)
	c.Render(&buf)
	if !strings.Contains(buf.String(), "\033[16;41H\033[0m▀") {
		t.Errorf("scaled pixel not rendered where expected: %q", buf.String())
	}
}

func TestCanvasOffset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SetOffset(3, 4)
	c.Set(0, 0)

	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.HasPrefix(buf.String(), "\033[5;4H\033[0m▀") {
		t.Errorf("offset render = %q", buf.String())
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(Point{X: 0, Y: 0}, Point{X: 9, Y: 9})

	if c.pixels[0] == 0 || c.pixels[9*10+9] == 0 {
		t.Error("line endpoints not set")
	}
	for i := 0; i < 10; i++ {
		if c.pixels[i*10+i] == 0 {
			t.Errorf("diagonal pixel %d not set", i)
		}
	}
}

func TestFilledPolygon(t *testing.T) {
	c := NewCanvas(10, 5)
	c.SetColor("#00ff00")
	c.DrawPolygon([]Point{{X: 1, Y: 1}, {X: 8, Y: 1}, {X: 8, Y: 8}, {X: 1, Y: 8}}, true)

	if got := c.pixels[4*10+4]; got != penFor("#00ff00") {
		t.Errorf("interior pen = %d, want %d", got, penFor("#00ff00"))
	}
	if c.pixels[0] != 0 || c.pixels[9*10+9] != 0 {
		t.Error("fill leaked outside the polygon")
	}
}

func TestRenderBorder(t *testing.T) {
	c := NewCanvas(3, 2)

	var buf bytes.Buffer
	c.RenderBorder(&buf)
	if buf.Len() != 0 {
		t.Errorf("border drawn without spare room: %q", buf.String())
	}

	c.SetOffset(1, 1)
	c.RenderBorder(&buf)
	got := buf.String()
	for _, want := range []string{"\033[1;1H┌───┐", "\033[4;1H└───┘", "\033[2;1H│\033[2;5H│"} {
		if !strings.Contains(got, want) {
			t.Errorf("border missing %q in %q", want, got)
		}
	}
}

func TestChunkWriter(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 1)
	cw.WriteAt(3, 4, "hi")

	if out.Len() != 0 {
		t.Fatal("ChunkWriter wrote before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "\033[5;5Hhi" {
		t.Errorf("flushed %q", got)
	}
}

func TestColorFor(t *testing.T) {
	if ColorFor("#00ffff") != ColorCyan {
		t.Error("#00ffff should map to cyan")
	}
	if ColorFor("nope") != ColorReset {
		t.Error("unknown tags map to reset")
	}
}
