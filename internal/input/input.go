// Package input turns the raw byte stream of a terminal session into
// discrete key events, one event per physical tap.
package input

import "bufio"

// Event is a single decoded key action.
type Event int

const (
	EventActivate Event = iota // SPACE or ENTER: start a match or judge the pulse
	EventShape                 // S: cycle the target shape
	EventCopy                  // C: copy the share message
	EventQuit                  // Q or Ctrl-C: leave the game
)

// String returns the event name for log output.
func (e Event) String() string {
	switch e {
	case EventActivate:
		return "activate"
	case EventShape:
		return "shape"
	case EventCopy:
		return "copy"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Stream delivers session bytes via a channel so the frame loop can drain
// whatever arrived since the last frame without blocking.
type Stream struct {
	ch chan byte
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// The channel closes when the reader reaches EOF (session closed).
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

// ReadEvents drains all available bytes from the stream (non-blocking) and
// decodes them into events. closed reports that the session reader ended,
// which callers treat like a quit. Each activation byte yields exactly one
// event; duplicates within a single drain are coalesced so terminal key
// repeat cannot amplify one tap into several judgements in the same frame.
func (s *Stream) ReadEvents() (events []Event, closed bool) {
	var buf []byte
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return decode(buf), true
			}
			buf = append(buf, b)
		default:
			return decode(buf), false
		}
	}
}

// decode maps raw bytes to events. CSI escape sequences (arrow keys and
// the like) are consumed without producing events; a bare ESC is ignored
// too, so a mashed escape key cannot leak a stray activation.
func decode(buf []byte) []Event {
	var events []Event
	seen := [4]bool{}

	emit := func(e Event) {
		if seen[e] {
			return
		}
		seen[e] = true
		events = append(events, e)
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			if i+2 < len(buf) && buf[i+1] == '[' {
				i += 2 // Skip ESC [ <final>
			}
			continue
		}

		switch b {
		case ' ', '\n', '\r':
			emit(EventActivate)
		case 's', 'S':
			emit(EventShape)
		case 'c', 'C':
			emit(EventCopy)
		case 'q', 'Q', '\x03':
			emit(EventQuit)
		}
	}
	return events
}
