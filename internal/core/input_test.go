package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionRotateCW)
	f.Push(ActionMoveLeft)
	f.Push(ActionHardDrop)

	want := []Action{ActionRotateCW, ActionMoveLeft, ActionHardDrop}
	if len(f.Actions) != len(want) {
		t.Fatalf("got %d actions, want %d", len(f.Actions), len(want))
	}
	for i, a := range want {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, want %v", i, f.Actions[i], a)
		}
	}
}

func TestInputFrameHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionPause) {
		t.Error("empty frame should not have Pause")
	}
	f.Push(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("frame should have Pause after Push")
	}
}

func TestInputFramePushNoneIgnored(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionNone)
	if !f.Empty() {
		t.Error("Push(ActionNone) should be a no-op")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionMoveRight)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if clone.Empty() || clone.Actions[0] != ActionMoveRight {
		t.Error("clone should be independent of the original")
	}
}
