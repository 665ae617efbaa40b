// Package motion implements the beat-synchronized transform animator that
// drives moving level geometry.
//
// An Animator owns a start pose and a cyclic sequence of timed transitions.
// The host advances it by the frame delta and reads back a fully resolved
// Pose (translate, scale, rotate, palette color index) to apply to its own
// mesh and physics representation. The package is a deterministic function
// of elapsed time and configuration: it does no rendering, owns no scene
// objects and never reads the clock itself.
package motion

// NoColor marks a pose as having no color control. Poses with NoColor leave
// the object's material untouched.
const NoColor = -1

// Vec3 is a three-component vector. It is used for translate offsets,
// scale factors and rotation angles (radians).
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Pose is a fully resolved instantaneous transform state. Every axis has a
// concrete value: partial level data is merged against defaults or the prior
// target when the config is resolved, never at evaluation time.
type Pose struct {
	// Translate is the offset from the object's fixed base position.
	Translate Vec3

	// Scale is the per-axis size multiplier.
	Scale Vec3

	// Rotate is the per-axis rotation in radians.
	Rotate Vec3

	// ColorIndex selects a color from the level palette, or NoColor when
	// the pose does not control color. Colors change discretely at
	// transition boundaries and are never interpolated.
	ColorIndex int
}

// DefaultPose returns the baseline every start state is merged onto:
// zero offset, unit scale, zero rotation, no color control.
func DefaultPose() Pose {
	return Pose{
		Scale:      Vec3{X: 1, Y: 1, Z: 1},
		ColorIndex: NoColor,
	}
}

// PartialVec3 is a vector with optional components. A nil field means
// "keep the incoming value unchanged". This mirrors how level data is
// authored: a transition that only moves an object along Y specifies y and
// nothing else.
type PartialVec3 struct {
	X *float64
	Y *float64
	Z *float64
}

// PartialPose is a pose with every part optional. Nil fields inherit from
// the pose being merged onto (the start-state defaults or the previous
// transition's target).
type PartialPose struct {
	Translate  *PartialVec3
	Scale      *PartialVec3
	Rotate     *PartialVec3
	ColorIndex *int
}

// mergeVec3 resolves an optional vector override onto a base vector.
// Unspecified components keep the base value.
func mergeVec3(base Vec3, override *PartialVec3) Vec3 {
	if override == nil {
		return base
	}
	out := base
	if override.X != nil {
		out.X = *override.X
	}
	if override.Y != nil {
		out.Y = *override.Y
	}
	if override.Z != nil {
		out.Z = *override.Z
	}
	return out
}

// mergePose resolves a partial pose onto a base pose, producing a pose that
// is total again. Each transform type merges independently; the color index
// carries over unless the override names a new one.
func mergePose(base Pose, override PartialPose) Pose {
	out := Pose{
		Translate:  mergeVec3(base.Translate, override.Translate),
		Scale:      mergeVec3(base.Scale, override.Scale),
		Rotate:     mergeVec3(base.Rotate, override.Rotate),
		ColorIndex: base.ColorIndex,
	}
	if override.ColorIndex != nil {
		out.ColorIndex = *override.ColorIndex
	}
	return out
}

// lerpVec3 linearly interpolates each axis by the eased parameter t.
// t is deliberately not clamped: overshoot easings produce t outside [0,1]
// and the resulting motion past the endpoints is the intended effect.
func lerpVec3(from, to Vec3, t float64) Vec3 {
	return Vec3{
		X: from.X + (to.X-from.X)*t,
		Y: from.Y + (to.Y-from.Y)*t,
		Z: from.Z + (to.Z-from.Z)*t,
	}
}
