// Package main measures how far the animator's transition clock drifts from
// ideal beat time under coarse frame deltas.
//
// Completing a transition resets progress to exactly 0 and discards the
// fraction of the delta that overshot the boundary. Per-boundary loss is at
// most one frame delta, but it accumulates every cycle; this tool makes the
// size of that drift visible for a given config and frame rate, and shows
// the carry-remainder policy eliminating it.
//
// Usage:
//
//	go run cmd/verify_beatsync/main.go [flags]
//
// Flags:
//
//	--config <path>   Motion YAML to simulate (default assets/motion/bounce_platform.yaml)
//	--fps <n>         Simulated frame rate (default 60)
//	--loops <n>       Number of full cycles of ideal time to simulate (default 100)
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/gonewx/beatform/internal/motion"
	"github.com/gonewx/beatform/pkg/config"
)

var (
	configFlag = flag.String("config", "assets/motion/bounce_platform.yaml", "motion YAML to simulate")
	fpsFlag    = flag.Float64("fps", 60, "simulated frame rate")
	loopsFlag  = flag.Int("loops", 100, "full cycles of ideal time to simulate")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadMotionConfig(*configFlag)
	if err != nil {
		log.Fatalf("[VerifyBeatSync] %v", err)
	}

	discard := newAnimator(cfg, false)
	carry := newAnimator(cfg, true)
	if discard.Inert() {
		log.Fatalf("[VerifyBeatSync] %s has no transitions, nothing to measure", *configFlag)
	}

	cycle := discard.CycleDuration()
	dt := 1 / *fpsFlag
	total := cycle * float64(*loopsFlag)
	frames := int(total / dt)

	for i := 0; i < frames; i++ {
		discard.Advance(dt)
		carry.Advance(dt)
	}

	simulated := float64(frames) * dt
	fmt.Printf("config:      %s\n", *configFlag)
	fmt.Printf("cycle:       %.4fs  frame delta: %.5fs  simulated: %.2fs (%d frames)\n",
		cycle, dt, simulated, frames)
	fmt.Println()
	report("discard (default)", discard, simulated, cycle)
	report("carry remainder  ", carry, simulated, cycle)
}

func newAnimator(cfg *config.MotionConfig, carryRemainder bool) *motion.Animator {
	a, err := motion.NewAnimator(cfg.ToMotion())
	if err != nil {
		log.Fatalf("[VerifyBeatSync] %v", err)
	}
	a.SetCarryRemainder(carryRemainder)
	return a
}

// report prints where the animator's beat clock ended up against the ideal
// clock. beatTime reconstructs the animation-local time from the state
// machine; the drift is how far it lags the wall clock fed to Advance.
func report(label string, a *motion.Animator, simulated, cycle float64) {
	idealPhase := math.Mod(simulated, cycle)
	actualPhase := phase(a)
	drift := idealPhase - actualPhase

	fmt.Printf("%s  transition=%d progress=%.4f  phase=%.4fs ideal=%.4fs  drift=%+.4fs\n",
		label, a.TransitionIndex(), a.Progress(), actualPhase, idealPhase, drift)
}

// phase converts (transition index, progress) back into seconds within the
// current cycle.
func phase(a *motion.Animator) float64 {
	elapsed := 0.0
	for i := 0; i < a.TransitionIndex(); i++ {
		elapsed += a.TransitionDuration(i)
	}
	return elapsed + a.Progress()*a.TransitionDuration(a.TransitionIndex())
}
