// Package easing provides cubic bezier easing curves used to shape the
// interpolation of beat-synchronized transform animations.
//
// A curve maps a normalized progress value t in [0,1] to an eased progress
// value. The eased value may leave [0,1] for overshoot curves (the "back"
// family), which is how bounce-style motion is produced.
package easing

// Curve is a cubic bezier easing curve with fixed endpoints (0,0) and (1,1)
// and two free control points (x1,y1) and (x2,y2).
//
// The X components of the control points are clamped to [0,1] so the curve
// stays a function of time. The Y components are unconstrained, allowing the
// eased value to overshoot.
type Curve struct {
	x1, y1, x2, y2 float64
}

// newtonIterations is the fixed iteration count used to invert the bezier
// X component.
const newtonIterations = 8

// New creates a Curve from four control point coordinates.
//
// x1 and x2 are silently clamped into [0,1]. Malformed curves authored in
// level data should degrade instead of aborting the load, so this function
// never fails.
func New(x1, y1, x2, y2 float64) Curve {
	return Curve{
		x1: clamp01(x1),
		y1: y1,
		x2: clamp01(x2),
		y2: y2,
	}
}

// Evaluate maps the normalized progress t to the eased progress value.
//
// t=0 and t=1 return exactly 0 and 1, bypassing the numeric solver so the
// endpoints are exact regardless of iteration error. For 0 < t < 1 the
// bezier parameter u with X(u) = t is found by Newton-Raphson iteration
// seeded at u = t, then the Y component is evaluated at u. The two-step
// solve is required because a cubic bezier is not directly invertible as
// y = f(x).
func (c Curve) Evaluate(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	// Solve X(u) = t for u.
	u := t
	for i := 0; i < newtonIterations; i++ {
		d := c.sampleDerivativeX(u)
		if d == 0 {
			break
		}
		u -= (c.sampleX(u) - t) / d
	}

	return c.sampleY(u)
}

// sampleX evaluates the bezier X component at parameter u.
func (c Curve) sampleX(u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*c.x1 + 3*inv*u*u*c.x2 + u*u*u
}

// sampleY evaluates the bezier Y component at parameter u.
func (c Curve) sampleY(u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*c.y1 + 3*inv*u*u*c.y2 + u*u*u
}

// sampleDerivativeX evaluates dX/du at parameter u.
func (c Curve) sampleDerivativeX(u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*c.x1 + 6*inv*u*(c.x2-c.x1) + 3*u*u*(1-c.x2)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
