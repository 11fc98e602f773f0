package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color escape sequences used for the HUD and overlays.
const (
	ColorReset   = "\033[0m"
	ColorBold    = "\033[1m"
	ColorCyan    = "\033[36m"
	ColorMagenta = "\033[35m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorRed     = "\033[31m"
	ColorDim     = "\033[2m"
)

// palette holds the canvas pen colors. Index 0 means "no pixel".
var palette = [...]string{
	"",
	ColorReset,
	ColorCyan,
	ColorMagenta,
	ColorGreen,
	ColorYellow,
	ColorRed,
}

const penDefault uint8 = 1

// penFor maps an entity color tag to its palette index.
func penFor(tag string) uint8 {
	switch tag {
	case "#00ffff":
		return 2
	case "#ff00ff":
		return 3
	case "#00ff00":
		return 4
	case "#ffff00":
		return 5
	case "#ff0000":
		return 6
	}
	return penDefault
}

// ColorFor maps an entity color tag ("#rrggbb") to the closest basic ANSI
// foreground sequence. Unknown tags map to ColorReset.
func ColorFor(tag string) string {
	return palette[penFor(tag)]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
