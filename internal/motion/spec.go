package motion

import "github.com/gonewx/beatform/internal/easing"

// EasingSpec is the loosely shaped easing field as it appears in animation
// configs. Level data may give an easing in three shapes:
//
//   - a catalog name: "easeInOutBack"
//   - four custom bezier control points: [x1, y1, x2, y2]
//   - a record with independent specs per transform type
//
// The shape is inspected exactly once, when the animator resolves its
// transitions into concrete curves; the per-frame path never sees it.
type EasingSpec struct {
	// Name is a curve name from the easing catalog.
	Name string

	// Points holds custom control points when exactly 4 values are given.
	// Points take precedence over Name.
	Points []float64

	// Per-type overrides. If any of these is set the spec is treated as a
	// per-type record and Name/Points on the outer spec are ignored.
	Translate *EasingSpec
	Scale     *EasingSpec
	Rotate    *EasingSpec
}

// perType reports whether the spec carries independent per-type curves.
func (s *EasingSpec) perType() bool {
	return s != nil && (s.Translate != nil || s.Scale != nil || s.Rotate != nil)
}

// curveSet holds the three concrete curves a transition interpolates with.
type curveSet struct {
	translate easing.Curve
	scale     easing.Curve
	rotate    easing.Curve
}

// resolveEasing converts an optional easing spec into three concrete curves.
// A nil spec, an unknown name or a malformed points array all degrade to the
// catalog default; easing is cosmetic and must never fail a level load.
func resolveEasing(spec *EasingSpec) curveSet {
	if spec.perType() {
		return curveSet{
			translate: resolveSingle(spec.Translate),
			scale:     resolveSingle(spec.Scale),
			rotate:    resolveSingle(spec.Rotate),
		}
	}
	c := resolveSingle(spec)
	return curveSet{translate: c, scale: c, rotate: c}
}

func resolveSingle(spec *EasingSpec) easing.Curve {
	if spec == nil {
		return easing.Default()
	}
	return easing.Resolve(spec.Name, spec.Points)
}

// TransitionSpec is one step of an animation sequence as parsed from level
// data, before resolution.
type TransitionSpec struct {
	// Beats is the transition length in beats. Nil defaults to 1.
	// Zero or negative beats are a structural config error.
	Beats *float64

	// Easing shapes the interpolation toward the target. Nil uses the
	// catalog default curve for all three transform types.
	Easing *EasingSpec

	// Transforms is the partial target pose. Unspecified axes keep the
	// value the transition starts from.
	Transforms PartialPose
}

// Config is the parsed animation description for one moving object. It is
// the already-decoded form of the per-object animation record in level data;
// file decoding lives in pkg/config.
type Config struct {
	// BPM is the level tempo driving beat durations. Values <= 0 (or
	// unset) fall back to 120.
	BPM float64

	// StartState is the partial pose merged onto the pose defaults to
	// produce the animator's start pose.
	StartState PartialPose

	// Transitions is the ordered, cyclic transition sequence. An empty
	// sequence produces a permanently inert animator.
	Transitions []TransitionSpec

	// PaletteSize is the number of colors in the level palette. Color
	// indexes outside [0, PaletteSize) degrade to NoColor. Zero means the
	// palette size is unknown and indexes pass through unchecked.
	PaletteSize int
}
