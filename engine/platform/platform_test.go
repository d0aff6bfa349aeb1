package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/solids/engine/core"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want core.KeyCode
	}{
		{glfw.KeyX, core.KEY_X},
		{glfw.KeyY, core.KEY_Y},
		{glfw.KeyZ, core.KEY_Z},
		{glfw.KeyQ, core.KEY_Q},
		{glfw.KeyEscape, core.KEY_ESCAPE},
		{glfw.KeyKPEnter, core.KEY_ENTER},
		{glfw.KeyA, core.KEY_UNKNOWN},
		{glfw.KeyF12, core.KEY_UNKNOWN},
	}
	for _, tt := range tests {
		if got := translateKey(tt.key); got != tt.want {
			t.Errorf("translateKey(%d) = 0x%02x, want 0x%02x", tt.key, got, tt.want)
		}
	}
}

func TestTranslateButton(t *testing.T) {
	tests := []struct {
		button glfw.MouseButton
		want   core.Button
		ok     bool
	}{
		{glfw.MouseButtonLeft, core.BUTTON_LEFT, true},
		{glfw.MouseButtonMiddle, core.BUTTON_MIDDLE, true},
		{glfw.MouseButtonRight, core.BUTTON_RIGHT, true},
		{glfw.MouseButton4, core.BUTTON_MAX_BUTTONS, false},
	}
	for _, tt := range tests {
		got, ok := translateButton(tt.button)
		if got != tt.want || ok != tt.ok {
			t.Errorf("translateButton(%d) = (%d, %v), want (%d, %v)", tt.button, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyCallbackFeedsInput(t *testing.T) {
	core.EventSystemInitialize()
	defer core.EventSystemShutdown()
	if err := core.InputInitialize(); err != nil {
		t.Fatal(err)
	}
	defer core.InputShutdown()

	var pressed []core.KeyCode
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, func(ctx core.EventContext) bool {
		pressed = append(pressed, ctx.Data.(*core.KeyEvent).KeyCode)
		return false
	})

	keyCallback(nil, glfw.KeyZ, 0, glfw.Press, 0)
	keyCallback(nil, glfw.KeyZ, 0, glfw.Repeat, 0)
	keyCallback(nil, glfw.KeyZ, 0, glfw.Release, 0)

	if len(pressed) != 1 || pressed[0] != core.KEY_Z {
		t.Fatalf("pressed = %v, want [KEY_Z]", pressed)
	}
	if core.InputIsKeyDown(core.KEY_Z) {
		t.Error("KEY_Z still down after release")
	}
}
