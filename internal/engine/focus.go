package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FocusAnimation flies a camera position toward a target over a fixed
// duration with eased motion, as used when double-clicking an object in
// a hierarchy panel.
type FocusAnimation struct {
	tween  *gween.Tween
	start  rl.Vector3
	target rl.Vector3
	pos    rl.Vector3
	done   bool
}

// NewFocusAnimation starts an animation from the current camera
// position toward target.
func NewFocusAnimation(from, target rl.Vector3, duration float32) *FocusAnimation {
	return &FocusAnimation{
		tween:  gween.New(0, 1, duration, ease.OutCubic),
		start:  from,
		target: target,
		pos:    from,
	}
}

// Update advances the animation and returns the interpolated position
// and whether the flight has finished.
func (f *FocusAnimation) Update(deltaTime float32) (rl.Vector3, bool) {
	if f.done {
		return f.pos, true
	}
	t, finished := f.tween.Update(deltaTime)
	f.pos = rl.Vector3Lerp(f.start, f.target, t)
	f.done = finished
	return f.pos, f.done
}

// Done reports whether the animation has completed.
func (f *FocusAnimation) Done() bool {
	return f.done
}
