package tui

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyRepeat shapes raw terminal key traffic into game input. Terminals only
// report presses (the OS auto-repeats them) and never report releases, so two
// things need reconstruction here:
//
//   - held shift keys repeat at the terminal's rate, which may be far faster
//     than a playable auto-shift; Move throttles them to the configured
//     repeat interval
//   - soft drop has start/end semantics; a press begins the hold and a gap
//     in the repeat stream longer than the hold timeout counts as release
type KeyRepeat struct {
	repeatInterval time.Duration
	holdTimeout    time.Duration

	lastMoveDir core.Action
	lastMoveAt  time.Time

	softHeld   bool
	lastSoftAt time.Time
}

// NewKeyRepeat creates a repeat shaper with the given auto-shift repeat
// interval and soft-drop hold timeout. Non-positive values get defaults.
func NewKeyRepeat(repeatInterval, holdTimeout time.Duration) *KeyRepeat {
	if repeatInterval <= 0 {
		repeatInterval = 50 * time.Millisecond
	}
	if holdTimeout <= 0 {
		holdTimeout = 250 * time.Millisecond
	}
	return &KeyRepeat{
		repeatInterval: repeatInterval,
		holdTimeout:    holdTimeout,
	}
}

// Move reports whether a shift event in the given direction should reach the
// game. Direction changes always pass; same-direction events pass at most
// once per repeat interval.
func (k *KeyRepeat) Move(dir core.Action, now time.Time) bool {
	if dir == k.lastMoveDir && now.Sub(k.lastMoveAt) < k.repeatInterval {
		return false
	}
	k.lastMoveDir = dir
	k.lastMoveAt = now
	return true
}

// SoftDropPress registers a soft-drop key event and reports whether it is
// the start of a new hold (i.e. the game should see SoftDropStart).
func (k *KeyRepeat) SoftDropPress(now time.Time) bool {
	started := !k.softHeld
	k.softHeld = true
	k.lastSoftAt = now
	return started
}

// SoftDropExpired reports whether a running soft-drop hold has gone quiet
// past the timeout. It clears the hold, so the caller emits exactly one
// SoftDropEnd per hold.
func (k *KeyRepeat) SoftDropExpired(now time.Time) bool {
	if !k.softHeld || now.Sub(k.lastSoftAt) < k.holdTimeout {
		return false
	}
	k.softHeld = false
	return true
}

// SoftDropHeld reports whether a soft-drop hold is currently active.
func (k *KeyRepeat) SoftDropHeld() bool {
	return k.softHeld
}

// Reset clears all tracked key state, for game restarts.
func (k *KeyRepeat) Reset() {
	k.lastMoveDir = core.ActionNone
	k.lastMoveAt = time.Time{}
	k.softHeld = false
}
