// Package input reads raw terminal bytes on a background goroutine and
// turns them into per-frame key state, including escape-sequence parsing
// for arrow keys.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press. Terminals only deliver repeats, so a short hold window makes
// movement feel continuous.
const keyHoldDuration = 40 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Space  bool
	Enter  bool
	Escape bool
	Mute   bool
	Number int // 0-9, or -1 when no digit was pressed
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit      time.Time
	left      time.Time
	right     time.Time
	space     time.Time
	enter     time.Time
	escape    time.Time
	mute      time.Time
	number    time.Time
	numberVal int
}

// Stream delivers input bytes via a channel and tracks key state.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:    make(chan byte, 128),
		state: keyState{numberVal: -1},
	}
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

// ReadInput drains all available bytes from the stream (non-blocking) and
// builds the frame's input from the key state timestamps.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences for arrow keys: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	input := Input{
		Quit:   now.Sub(s.state.quit) < keyHoldDuration,
		Left:   now.Sub(s.state.left) < keyHoldDuration,
		Right:  now.Sub(s.state.right) < keyHoldDuration,
		Space:  now.Sub(s.state.space) < keyHoldDuration,
		Enter:  now.Sub(s.state.enter) < keyHoldDuration,
		Escape: now.Sub(s.state.escape) < keyHoldDuration,
		Mute:   now.Sub(s.state.mute) < keyHoldDuration,
		Number: -1,
	}
	if now.Sub(s.state.number) < keyHoldDuration {
		input.Number = s.state.numberVal
	}
	return input
}

// ResetKeyInput clears all held-key state, e.g. when switching screens so a
// held key does not leak into the next one.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{numberVal: -1}
}

// applyByteToState updates the key timestamps for a single byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'h', 'H', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L', 'k', 'K':
		state.right = now
	case 'm', 'M':
		state.mute = now
	case ' ':
		state.space = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		state.number = now
		state.numberVal = int(b - '0')
	}
}
