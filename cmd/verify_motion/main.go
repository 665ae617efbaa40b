// Package main provides a visual verification tool for beat-synchronized
// motion configs.
//
// It loads every motion YAML under a directory, registers one mover per
// file and renders them as colored rectangles so designers can check beat
// sync, easing shape and discrete color changes before a config ships in a
// level.
//
// Usage:
//
//	go run cmd/verify_motion/main.go [flags]
//
// Flags:
//
//	--dir <path>      Directory of motion YAML files (default assets/motion)
//	--speed <factor>  Time scale factor (default 1.0)
//	--paused          Start paused
//
// Controls:
//
//	Space             - Toggle pause
//	Right Arrow       - Step one frame (1/60s) while paused
//	Up/Down Arrow     - Double/halve the time scale
//	C                 - Toggle carry-remainder completion policy
//	Q/Escape          - Quit
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"sort"

	"github.com/gonewx/beatform/internal/motion"
	"github.com/gonewx/beatform/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 960
	screenHeight = 540

	// pixelsPerUnit converts engine translate units to screen pixels.
	pixelsPerUnit = 40

	// baseSize is the unscaled rectangle edge in pixels.
	baseSize = 48
)

var (
	dirFlag    = flag.String("dir", "assets/motion", "directory of motion YAML files")
	speedFlag  = flag.Float64("speed", 1.0, "time scale factor")
	pausedFlag = flag.Bool("paused", false, "start paused")
)

// VerifyMotionGame renders one mover per loaded config.
type VerifyMotionGame struct {
	manager *game.MoverManager

	unit *ebiten.Image

	paused bool
	speed  float64
	carry  bool
}

func NewVerifyMotionGame(dir string) (*VerifyMotionGame, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no motion configs found in %s", dir)
	}
	sort.Strings(paths)

	manager := game.NewMoverManager()
	spacing := float64(screenWidth) / float64(len(paths)+1) / pixelsPerUnit
	for i, path := range paths {
		name := filepath.Base(path)
		base := motion.Vec3{X: spacing * float64(i+1)}
		if _, err := manager.AddFromFile(name, base, path); err != nil {
			// Structural errors skip the mover, same as level loading.
			log.Printf("[VerifyMotion] Skipping %s: %v", name, err)
			continue
		}
		log.Printf("[VerifyMotion] Loaded %s", name)
	}
	if manager.Count() == 0 {
		return nil, fmt.Errorf("no usable motion configs in %s", dir)
	}

	unit := ebiten.NewImage(1, 1)
	unit.Fill(color.White)

	return &VerifyMotionGame{
		manager: manager,
		unit:    unit,
		paused:  *pausedFlag,
		speed:   *speedFlag,
	}, nil
}

func (g *VerifyMotionGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.speed *= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.speed /= 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.carry = !g.carry
		for _, m := range g.manager.Movers() {
			m.Animator.SetCarryRemainder(g.carry)
		}
		log.Printf("[VerifyMotion] Carry remainder: %v", g.carry)
	}

	step := g.paused && inpututil.IsKeyJustPressed(ebiten.KeyRight)
	if !g.paused || step {
		g.manager.Update(g.speed / float64(ebiten.TPS()))
	}
	return nil
}

func (g *VerifyMotionGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})

	groundY := float64(screenHeight) * 0.75
	for _, m := range g.manager.Movers() {
		pose := m.Pose()
		pos := m.WorldPosition()

		w := baseSize * pose.Scale.X
		h := baseSize * pose.Scale.Y

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w, h)
		op.GeoM.Translate(-w/2, -h/2)
		// Screen-facing projection: only the Z rotation is visible in 2D.
		op.GeoM.Rotate(pose.Rotate.Z)
		op.GeoM.Translate(pos.X*pixelsPerUnit, groundY-pos.Y*pixelsPerUnit)

		c := color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
		if mc, ok := m.Color(); ok {
			c = mc
		}
		op.ColorScale.ScaleWithColor(c)
		screen.DrawImage(g.unit, op)
	}

	hud := fmt.Sprintf("movers: %d  speed: %.2fx  paused: %v  carry: %v",
		g.manager.Count(), g.speed, g.paused, g.carry)
	ebitenutil.DebugPrint(screen, hud)
}

func (g *VerifyMotionGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	g, err := NewVerifyMotionGame(*dirFlag)
	if err != nil {
		log.Fatalf("[VerifyMotion] %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Motion Verify")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
