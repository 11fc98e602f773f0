package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
// Left, Right and Thrust are held flags; the rest are edge-triggered and set
// only for the frame in which their key byte arrived.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Thrust  bool
	Fire    bool
	Shop    bool
	Restart bool
	Buy     int // 1..5 when a number key was pressed this frame, 0 otherwise
	Pressed []byte
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	left   time.Time
	right  time.Time
	thrust time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.parse(buf, time.Now())
	if s.closed {
		in.Quit = true
	}
	return in
}

// parse updates the held-key timestamps from buf and builds the frame input.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	in := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.thrust = now
			case 'C': // Right arrow
				s.state.right = now
			case 'D': // Left arrow
				s.state.left = now
			}
			i += 2
			continue
		}

		applyByte(&s.state, &in, b, now)
	}

	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	in.Thrust = now.Sub(s.state.thrust) < keyHoldDuration
	return in
}

// applyByte records a single key byte: held keys refresh their timestamp,
// action keys set their edge flag on in.
func applyByte(state *keyState, in *Input, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.thrust = now
	case ' ':
		in.Fire = true
	case 's', 'S':
		in.Shop = true
	case 'r', 'R', '\n', '\r':
		in.Restart = true
	case '1', '2', '3', '4', '5':
		in.Buy = int(b - '0')
	}
}
