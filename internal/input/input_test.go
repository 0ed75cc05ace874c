package input

import (
	"bufio"
	"strings"
	"testing"
)

func TestDecodeMapsKeys(t *testing.T) {
	tests := []struct {
		name string
		buf  string
		want []Event
	}{
		{"space activates", " ", []Event{EventActivate}},
		{"enter activates", "\r", []Event{EventActivate}},
		{"newline activates", "\n", []Event{EventActivate}},
		{"shape key", "s", []Event{EventShape}},
		{"shape key upper", "S", []Event{EventShape}},
		{"copy key", "c", []Event{EventCopy}},
		{"quit key", "q", []Event{EventQuit}},
		{"ctrl-c quits", "\x03", []Event{EventQuit}},
		{"unbound keys ignored", "xyz123", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decode([]byte(tt.buf))
			if len(got) != len(tt.want) {
				t.Fatalf("decode(%q) = %v, want %v", tt.buf, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("decode(%q) = %v, want %v", tt.buf, got, tt.want)
				}
			}
		})
	}
}

func TestDecodeCoalescesKeyRepeat(t *testing.T) {
	// Held SPACE floods the buffer; one frame must judge at most once.
	got := decode([]byte("      "))
	if len(got) != 1 || got[0] != EventActivate {
		t.Fatalf("decode of repeated space = %v, want one activate", got)
	}
}

func TestDecodeSwallowsEscapeSequences(t *testing.T) {
	// Arrow keys must not leak events; the byte after the sequence still counts.
	got := decode([]byte("\x1b[A\x1b[D "))
	if len(got) != 1 || got[0] != EventActivate {
		t.Fatalf("decode with CSI sequences = %v, want one activate", got)
	}

	// A bare escape is ignored entirely.
	if got := decode([]byte{0x1b}); len(got) != 0 {
		t.Fatalf("decode of bare ESC = %v, want none", got)
	}
}

func TestDecodePreservesOrderOfDistinctEvents(t *testing.T) {
	got := decode([]byte("s q"))
	want := []Event{EventShape, EventActivate, EventQuit}
	if len(got) != len(want) {
		t.Fatalf("decode = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("decode = %v, want %v", got, want)
		}
	}
}

func TestStreamReportsClose(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader(" q")))

	var all []Event
	for {
		events, closed := s.ReadEvents()
		all = append(all, events...)
		if closed {
			break
		}
	}

	want := map[Event]bool{EventActivate: true, EventQuit: true}
	for _, e := range all {
		if !want[e] {
			t.Fatalf("unexpected event %v in %v", e, all)
		}
		delete(want, e)
	}
	if len(want) != 0 {
		t.Fatalf("missing events %v, got %v", want, all)
	}
}
