package easing

// DefaultName is the curve used whenever a transition omits its easing or
// names a curve that does not exist.
const DefaultName = "easeOutQuart"

// catalog maps curve names to their control point constants. The constants
// are the standard CSS/Penner values for each family.
var catalog = map[string]Curve{
	"linear":    New(0, 0, 1, 1),
	"easeIn":    New(0.42, 0, 1, 1),
	"easeOut":   New(0, 0, 0.58, 1),
	"easeInOut": New(0.42, 0, 0.58, 1),

	"easeInQuad":    New(0.55, 0.085, 0.68, 0.53),
	"easeOutQuad":   New(0.25, 0.46, 0.45, 0.94),
	"easeInOutQuad": New(0.455, 0.03, 0.515, 0.955),

	"easeInCubic":    New(0.55, 0.055, 0.675, 0.19),
	"easeOutCubic":   New(0.215, 0.61, 0.355, 1),
	"easeInOutCubic": New(0.645, 0.045, 0.355, 1),

	"easeInQuart":    New(0.895, 0.03, 0.685, 0.22),
	"easeOutQuart":   New(0.165, 0.84, 0.44, 1),
	"easeInOutQuart": New(0.77, 0, 0.175, 1),

	// The back family overshoots: y control points outside [0,1].
	"easeInBack":    New(0.6, -0.28, 0.735, 0.045),
	"easeOutBack":   New(0.175, 0.885, 0.32, 1.275),
	"easeInOutBack": New(0.68, -0.55, 0.265, 1.55),
}

// Default returns the curve used when no valid easing is specified.
func Default() Curve {
	return catalog[DefaultName]
}

// Named looks up a curve by catalog name.
// The second return value reports whether the name is known.
func Named(name string) (Curve, bool) {
	c, ok := catalog[name]
	return c, ok
}

// Resolve converts a loosely specified easing into a concrete Curve.
// Animation configs may give either a catalog name or four custom control
// point values; this resolves both shapes and never fails:
//
//   - points with exactly 4 values → custom curve (x components clamped)
//   - otherwise, a known name → the named curve
//   - anything else → Default()
//
// Lookups must never fail because easing is authored by level designers;
// a typo degrades the motion but must not break the level.
func Resolve(name string, points []float64) Curve {
	if len(points) == 4 {
		return New(points[0], points[1], points[2], points[3])
	}
	if c, ok := Named(name); ok {
		return c
	}
	return Default()
}

// Names returns the catalog names in no particular order.
// Used by the verify tools to enumerate available curves.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	return names
}
