package motion

import (
	"fmt"
	"math"
)

// defaultBPM is the tempo used when a config omits or zeroes its bpm.
const defaultBPM = 120

// ConfigError reports a structural problem in an animation config that has
// no safe fallback, such as a non-positive transition duration. It is
// returned from NewAnimator only; the per-frame path never fails.
type ConfigError struct {
	// Transition is the index of the offending transition.
	Transition int

	// Reason describes what is wrong with it.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("animation config: transition %d: %s", e.Transition, e.Reason)
}

// transition is a fully resolved animation step: a real-time duration, three
// concrete easing curves and a total target pose.
type transition struct {
	duration float64
	curves   curveSet
	target   Pose
}

// Animator owns the authoritative, time-driven pose for one moving object.
//
// It is a cyclic state machine over the resolved transition sequence: the
// active transition interpolates from the pose it started at toward its
// target; completing the last transition wraps back to the start pose,
// closing the loop. There is no terminal state, moving geometry loops
// forever.
//
// An Animator is single-threaded by design. The host calls Advance once per
// frame tick and reads CurrentPose; separate animators are fully independent.
type Animator struct {
	secondsPerBeat float64
	startPose      Pose
	transitions    []transition

	carryRemainder bool

	// index and progress locate the state machine: progress is the
	// fraction of transitions[index] elapsed, in [0,1).
	index    int
	progress float64

	// current is the pose the active transition interpolates from.
	current Pose

	// color is the discrete palette index last applied at a transition
	// boundary. Color is a step function of time, never interpolated.
	color int

	// elapsed is total advanced time in seconds, for diagnostics only.
	elapsed float64
}

// NewAnimator resolves a parsed animation config into a ready animator.
//
// Resolution happens once, here: the start state merges onto the pose
// defaults, and each transition's partial target merges onto the running
// baseline (the resolved target of the previous transition), so targets are
// relative to the cumulative state rather than the original start pose.
// After construction every pose in the animator is total.
//
// Cosmetic problems (unknown easing names, malformed control points, color
// indexes outside the palette) degrade silently. Structural problems return
// a *ConfigError naming the offending transition: a non-positive duration
// would corrupt the state machine and has no safe substitute.
func NewAnimator(cfg Config) (*Animator, error) {
	bpm := cfg.BPM
	if bpm <= 0 || math.IsNaN(bpm) {
		bpm = defaultBPM
	}
	secondsPerBeat := 60 / bpm

	startPose := mergePose(DefaultPose(), cfg.StartState)
	startPose.ColorIndex = validColor(startPose.ColorIndex, cfg.PaletteSize)

	transitions, err := resolveTransitions(cfg.Transitions, startPose, secondsPerBeat, cfg.PaletteSize)
	if err != nil {
		return nil, err
	}

	return &Animator{
		secondsPerBeat: secondsPerBeat,
		startPose:      startPose,
		transitions:    transitions,
		current:        startPose,
		color:          startPose.ColorIndex,
	}, nil
}

// resolveTransitions folds the partial transition specs into total
// transitions. The accumulator is the running baseline pose; each resolved
// target becomes the baseline for the next spec, and the color index rides
// along inside the baseline, carried forward whenever a spec does not name a
// new one.
func resolveTransitions(specs []TransitionSpec, start Pose, secondsPerBeat float64, paletteSize int) ([]transition, error) {
	transitions := make([]transition, 0, len(specs))
	baseline := start

	for i, spec := range specs {
		beats := 1.0
		if spec.Beats != nil {
			beats = *spec.Beats
		}
		if math.IsNaN(beats) || beats <= 0 {
			return nil, &ConfigError{Transition: i, Reason: fmt.Sprintf("beats must be > 0, got %v", beats)}
		}

		target := mergePose(baseline, spec.Transforms)
		target.ColorIndex = validColor(target.ColorIndex, paletteSize)

		transitions = append(transitions, transition{
			duration: beats * secondsPerBeat,
			curves:   resolveEasing(spec.Easing),
			target:   target,
		})
		baseline = target
	}

	return transitions, nil
}

// validColor degrades an out-of-palette color index to NoColor. A bad index
// is cosmetic: the object keeps its material instead of failing the load.
func validColor(index, paletteSize int) int {
	if index == NoColor {
		return NoColor
	}
	if index < 0 || (paletteSize > 0 && index >= paletteSize) {
		return NoColor
	}
	return index
}

// SetCarryRemainder switches the completion policy for transition
// boundaries.
//
// By default the fraction of a delta that overshoots a transition's end is
// discarded: progress resets to exactly 0. That matches the historical
// behavior but drifts from true beat time when frame deltas are coarse.
// With carry enabled the overshoot is converted to seconds and fed into the
// next transition, which keeps long-run beat sync and lets a single large
// delta (for example after a pause) skip across several transitions.
func (a *Animator) SetCarryRemainder(enabled bool) {
	a.carryRemainder = enabled
}

// Inert reports whether the animator has no transitions. An inert animator
// ignores Advance and always reports its start pose.
func (a *Animator) Inert() bool {
	return len(a.transitions) == 0
}

// Advance moves the state machine forward by dt seconds. It is a no-op for
// inert animators. dt may be arbitrarily large; at most one transition
// boundary is crossed per call under the default discard policy, while the
// carry policy consumes as many boundaries as the delta covers.
func (a *Animator) Advance(dt float64) {
	if a.Inert() {
		return
	}
	a.elapsed += dt
	a.progress += dt / a.transitions[a.index].duration
	if a.progress < 1 {
		return
	}

	if !a.carryRemainder {
		// Historical policy: the overshoot past the boundary is lost.
		a.progress = 0
		a.completeCurrent()
		return
	}

	for a.progress >= 1 {
		overshoot := (a.progress - 1) * a.transitions[a.index].duration
		a.completeCurrent()
		a.progress = overshoot / a.transitions[a.index].duration
	}
}

// completeCurrent advances the transition index, wrapping past the end back
// to the start pose, and applies the incoming transition's color index as a
// discrete event.
func (a *Animator) completeCurrent() {
	finished := a.index
	a.index++
	if a.index >= len(a.transitions) {
		// Closing the loop: the cycle restarts from the start pose.
		a.index = 0
		a.current = a.startPose
	} else {
		a.current = a.transitions[finished].target
	}
	if c := a.transitions[a.index].target.ColorIndex; c != NoColor {
		a.color = c
	}
}

// CurrentPose computes the interpolated pose at the animator's current
// state. Each transform type eases independently; the eased parameter is
// not clamped, so overshoot curves legitimately push an axis beyond both
// endpoints. The color index is whatever the last boundary event set.
func (a *Animator) CurrentPose() Pose {
	if a.Inert() {
		return a.startPose
	}
	tr := &a.transitions[a.index]
	return Pose{
		Translate:  lerpVec3(a.current.Translate, tr.target.Translate, tr.curves.translate.Evaluate(a.progress)),
		Scale:      lerpVec3(a.current.Scale, tr.target.Scale, tr.curves.scale.Evaluate(a.progress)),
		Rotate:     lerpVec3(a.current.Rotate, tr.target.Rotate, tr.curves.rotate.Evaluate(a.progress)),
		ColorIndex: a.color,
	}
}

// StartPose returns the resolved start pose.
func (a *Animator) StartPose() Pose {
	return a.startPose
}

// TransitionIndex returns the index of the active transition. Diagnostics
// only; inert animators report 0.
func (a *Animator) TransitionIndex() int {
	return a.index
}

// Progress returns the elapsed fraction of the active transition.
func (a *Animator) Progress() float64 {
	return a.progress
}

// Elapsed returns the total time fed to Advance, in seconds.
func (a *Animator) Elapsed() float64 {
	return a.elapsed
}

// TransitionDuration returns the resolved real-time duration in seconds of
// the transition at index i, or 0 for an out-of-range index.
func (a *Animator) TransitionDuration(i int) float64 {
	if i < 0 || i >= len(a.transitions) {
		return 0
	}
	return a.transitions[i].duration
}

// CycleDuration returns the summed duration of one full transition cycle in
// seconds, or 0 for an inert animator.
func (a *Animator) CycleDuration() float64 {
	total := 0.0
	for _, tr := range a.transitions {
		total += tr.duration
	}
	return total
}
