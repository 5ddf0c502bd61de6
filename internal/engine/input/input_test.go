package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestIsKeyPressed(t *testing.T) {
	in := New()
	in.events = append(in.events,
		Event{Type: EventKeyDown, Key: sdl.SCANCODE_F12},
		Event{Type: EventKeyDown, Key: sdl.SCANCODE_R, Repeat: true},
		Event{Type: EventKeyUp, Key: sdl.SCANCODE_ESCAPE},
	)

	tests := []struct {
		key  sdl.Scancode
		want bool
	}{
		{sdl.SCANCODE_F12, true},
		{sdl.SCANCODE_R, false},
		{sdl.SCANCODE_ESCAPE, false},
		{sdl.SCANCODE_SPACE, false},
	}
	for _, tt := range tests {
		if got := in.IsKeyPressed(tt.key); got != tt.want {
			t.Errorf("IsKeyPressed(%d) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
