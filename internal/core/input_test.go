package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionLaunch) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionLaunch)
	f.SetPointer(12)
	if !f.Has(ActionLaunch) {
		t.Error("Set action should be reported by Has")
	}
	if !f.HasPointer || f.PointerX != 12 {
		t.Errorf("pointer = (%d, %v), expected (12, true)", f.PointerX, f.HasPointer)
	}

	f.Clear()
	if f.Has(ActionLaunch) || f.HasPointer {
		t.Error("Clear should drop actions and pointer")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionMute.String() != "Mute" {
		t.Errorf("ActionMute.String() = %q", ActionMute.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

func TestTickSeconds(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).TickSeconds(); got != 0.02 {
		t.Errorf("TickSeconds() = %f, expected 0.02", got)
	}
	if got := (RuntimeConfig{}).TickSeconds(); got != 1.0/60 {
		t.Errorf("zero tick rate should fall back to 60fps, got %f", got)
	}
}
