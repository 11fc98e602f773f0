package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ChunkWriter collects one frame of terminal output (canvas cells, HUD text,
// color escapes) and writes it out in MTU-sized chunks on Flush.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and offsetRow
// are added to all MoveCursor coordinates (for canvas centering).
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based
// canvas coordinates; offset is applied automatically.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer for use with Canvas.Render and other writers.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteAt writes s at a 1-based canvas position.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// WriteColorAt writes s at a 1-based canvas position wrapped in an ANSI color
// sequence, resetting the color afterwards.
func (cw *ChunkWriter) WriteColorAt(col, row int, color, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(color)
	cw.buf.WriteString(s)
	cw.buf.WriteString(ColorReset)
}

// Ensure ChunkWriter satisfies io.Writer.
var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated frame to the underlying writer and resets
// the buffer.
func (cw *ChunkWriter) Flush() error {
	err := writeChunks(cw.bufw, cw.buf.String())
	cw.buf.Reset()
	if err != nil {
		return err
	}
	return cw.bufw.Flush()
}

// maxChunkSize is the maximum bytes to write at once. It stays under a
// typical 1500 byte MTU so SSH sessions see smooth frames.
const maxChunkSize = 1400

// writeChunks writes data to w in pieces of at most maxChunkSize bytes.
func writeChunks(w io.Writer, data string) error {
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := io.WriteString(w, data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Terminal control sequences.
const (
	SeqClear      = "\033[H\033[2J"
	SeqHideCursor = "\033[?25l"
	SeqShowCursor = "\033[?25h"
	SeqAltScreen  = "\033[?1049h"
	SeqMainScreen = "\033[?1049l"
)

// Emit writes control sequences to w, ignoring write errors; a broken
// connection surfaces on the next Flush.
func Emit(w io.Writer, seqs ...string) {
	for _, s := range seqs {
		io.WriteString(w, s)
	}
}
