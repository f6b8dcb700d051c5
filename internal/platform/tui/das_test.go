package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestMoveThrottlesSameDirection(t *testing.T) {
	k := NewKeyRepeat(50*time.Millisecond, 250*time.Millisecond)
	now := time.Now()

	if !k.Move(core.ActionMoveLeft, now) {
		t.Error("first press should pass")
	}
	if k.Move(core.ActionMoveLeft, now.Add(20*time.Millisecond)) {
		t.Error("repeat inside interval should be throttled")
	}
	if !k.Move(core.ActionMoveLeft, now.Add(60*time.Millisecond)) {
		t.Error("repeat past interval should pass")
	}
}

func TestMoveDirectionChangePasses(t *testing.T) {
	k := NewKeyRepeat(50*time.Millisecond, 250*time.Millisecond)
	now := time.Now()

	k.Move(core.ActionMoveLeft, now)
	if !k.Move(core.ActionMoveRight, now.Add(5*time.Millisecond)) {
		t.Error("direction change should always pass")
	}
	if !k.Move(core.ActionMoveLeft, now.Add(10*time.Millisecond)) {
		t.Error("changing back should also pass")
	}
}

func TestSoftDropStartAndRelease(t *testing.T) {
	k := NewKeyRepeat(50*time.Millisecond, 250*time.Millisecond)
	now := time.Now()

	if !k.SoftDropPress(now) {
		t.Error("first press should start the hold")
	}
	if k.SoftDropPress(now.Add(30 * time.Millisecond)) {
		t.Error("auto-repeat press should not restart the hold")
	}
	if !k.SoftDropHeld() {
		t.Error("hold should be active")
	}

	// Repeats keep arriving, no release yet
	if k.SoftDropExpired(now.Add(100 * time.Millisecond)) {
		t.Error("hold should not expire while repeats are fresh")
	}

	// Quiet past the timeout counts as release, exactly once
	releaseAt := now.Add(400 * time.Millisecond)
	if !k.SoftDropExpired(releaseAt) {
		t.Error("quiet hold should expire")
	}
	if k.SoftDropExpired(releaseAt.Add(time.Millisecond)) {
		t.Error("expiry should fire only once per hold")
	}
	if k.SoftDropHeld() {
		t.Error("hold should be cleared after expiry")
	}
}

func TestSoftDropRestartAfterRelease(t *testing.T) {
	k := NewKeyRepeat(50*time.Millisecond, 250*time.Millisecond)
	now := time.Now()

	k.SoftDropPress(now)
	k.SoftDropExpired(now.Add(time.Second))

	if !k.SoftDropPress(now.Add(2 * time.Second)) {
		t.Error("press after release should start a new hold")
	}
}

func TestKeyRepeatDefaults(t *testing.T) {
	k := NewKeyRepeat(0, 0)
	if k.repeatInterval != 50*time.Millisecond {
		t.Errorf("repeatInterval = %v, want 50ms", k.repeatInterval)
	}
	if k.holdTimeout != 250*time.Millisecond {
		t.Errorf("holdTimeout = %v, want 250ms", k.holdTimeout)
	}
}

func TestKeyRepeatReset(t *testing.T) {
	k := NewKeyRepeat(50*time.Millisecond, 250*time.Millisecond)
	now := time.Now()

	k.Move(core.ActionMoveLeft, now)
	k.SoftDropPress(now)
	k.Reset()

	if k.SoftDropHeld() {
		t.Error("reset should clear the soft-drop hold")
	}
	if !k.Move(core.ActionMoveLeft, now.Add(time.Millisecond)) {
		t.Error("reset should clear move throttling")
	}
}
