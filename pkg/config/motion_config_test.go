package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/beatform/internal/motion"
)

func TestParseMotionConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *MotionConfig)
	}{
		{
			name: "valid config",
			yamlContent: `
bpm: 96
colorPalette: ["#ff4060", "#3c78ff", "#ffd23c"]
startState:
  translate: {y: 1.5}
  colorIndex: 0
transitions:
  - beats: 2
    easing: easeInOutQuad
    transforms:
      translate: {y: 4}
  - beats: 1
    transforms:
      translate: {y: 1.5}
      colorIndex: 2
`,
			wantErr: false,
			validate: func(t *testing.T, cfg *MotionConfig) {
				if cfg.BPM != 96 {
					t.Errorf("expected bpm = 96, got %v", cfg.BPM)
				}
				if len(cfg.ColorPalette) != 3 {
					t.Errorf("expected 3 palette colors, got %d", len(cfg.ColorPalette))
				}
				if cfg.StartState.Translate == nil || cfg.StartState.Translate.Y == nil || *cfg.StartState.Translate.Y != 1.5 {
					t.Errorf("expected startState.translate.y = 1.5, got %+v", cfg.StartState.Translate)
				}
				if len(cfg.Transitions) != 2 {
					t.Fatalf("expected 2 transitions, got %d", len(cfg.Transitions))
				}
				if cfg.Transitions[0].Easing == nil || cfg.Transitions[0].Easing.Name != "easeInOutQuad" {
					t.Errorf("expected easing name easeInOutQuad, got %+v", cfg.Transitions[0].Easing)
				}
				if cfg.Transitions[1].Transforms.ColorIndex == nil || *cfg.Transitions[1].Transforms.ColorIndex != 2 {
					t.Errorf("expected transition 1 colorIndex = 2, got %+v", cfg.Transitions[1].Transforms.ColorIndex)
				}
			},
		},
		{
			name: "bpm defaults to 120",
			yamlContent: `
transitions:
  - transforms:
      rotate: {z: 3.14}
`,
			wantErr: false,
			validate: func(t *testing.T, cfg *MotionConfig) {
				if cfg.BPM != 120 {
					t.Errorf("expected default bpm = 120, got %v", cfg.BPM)
				}
			},
		},
		{
			name: "custom bezier easing points",
			yamlContent: `
transitions:
  - easing: [0.6, -0.28, 0.735, 0.045]
    transforms:
      scale: {x: 2, y: 2}
`,
			wantErr: false,
			validate: func(t *testing.T, cfg *MotionConfig) {
				e := cfg.Transitions[0].Easing
				if e == nil || len(e.Points) != 4 {
					t.Fatalf("expected 4 easing points, got %+v", e)
				}
				if e.Points[1] != -0.28 {
					t.Errorf("expected points[1] = -0.28, got %v", e.Points[1])
				}
			},
		},
		{
			name: "per-type easing record",
			yamlContent: `
transitions:
  - easing:
      translate: linear
      rotate: [0.1, 0.2, 0.3, 0.4]
    transforms:
      translate: {x: 3}
`,
			wantErr: false,
			validate: func(t *testing.T, cfg *MotionConfig) {
				e := cfg.Transitions[0].Easing
				if e == nil || e.Translate == nil || e.Translate.Name != "linear" {
					t.Fatalf("expected per-type translate easing linear, got %+v", e)
				}
				if e.Rotate == nil || len(e.Rotate.Points) != 4 {
					t.Errorf("expected per-type rotate easing points, got %+v", e.Rotate)
				}
				if e.Scale != nil {
					t.Errorf("expected unspecified scale easing to stay nil, got %+v", e.Scale)
				}
			},
		},
		{
			name: "malformed easing degrades instead of failing",
			yamlContent: `
transitions:
  - easing: [bad, values, here]
    transforms:
      translate: {x: 1}
`,
			wantErr: false,
			validate: func(t *testing.T, cfg *MotionConfig) {
				e := cfg.Transitions[0].Easing
				if e == nil {
					t.Fatal("expected easing field to be present")
				}
				if len(e.Points) != 0 || e.Name != "" {
					t.Errorf("expected malformed easing to decode empty, got %+v", e)
				}
			},
		},
		{
			name: "zero beats rejected",
			yamlContent: `
transitions:
  - beats: 0
    transforms:
      translate: {x: 1}
`,
			wantErr:     true,
			errContains: "transition 0",
		},
		{
			name: "negative beats rejected with index",
			yamlContent: `
transitions:
  - beats: 1
    transforms: {translate: {x: 1}}
  - beats: -3
    transforms: {translate: {x: 2}}
`,
			wantErr:     true,
			errContains: "transition 1",
		},
		{
			name:        "empty transitions allowed",
			yamlContent: `bpm: 140`,
			wantErr:     false,
			validate: func(t *testing.T, cfg *MotionConfig) {
				if len(cfg.Transitions) != 0 {
					t.Errorf("expected no transitions, got %d", len(cfg.Transitions))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseMotionConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error = %q, want it to contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMotionConfig failed: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadMotionConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motion.yaml")
	content := `
bpm: 60
transitions:
  - beats: 4
    transforms:
      translate: {x: 2}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadMotionConfig(path)
	if err != nil {
		t.Fatalf("LoadMotionConfig failed: %v", err)
	}
	if cfg.BPM != 60 {
		t.Errorf("expected bpm = 60, got %v", cfg.BPM)
	}

	if _, err := LoadMotionConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoadMotionConfig_SampleAssets(t *testing.T) {
	samples, err := filepath.Glob("../../assets/motion/*.yaml")
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(samples) == 0 {
		t.Fatal("expected sample motion configs under assets/motion")
	}

	for _, path := range samples {
		cfg, err := LoadMotionConfig(path)
		if err != nil {
			t.Errorf("sample %s failed to load: %v", path, err)
			continue
		}
		// 每个示例配置都必须能构建动画器
		if _, err := motion.NewAnimator(cfg.ToMotion()); err != nil {
			t.Errorf("sample %s failed to build an animator: %v", path, err)
		}
	}
}

func TestMotionConfig_ToMotion(t *testing.T) {
	cfg, err := ParseMotionConfig([]byte(`
bpm: 90
colorPalette: ["#102030", "#405060"]
startState:
  scale: {x: 2}
transitions:
  - beats: 2
    easing: linear
    transforms:
      translate: {y: 3}
      colorIndex: 1
`))
	if err != nil {
		t.Fatalf("ParseMotionConfig failed: %v", err)
	}

	mc := cfg.ToMotion()
	if mc.BPM != 90 {
		t.Errorf("expected BPM = 90, got %v", mc.BPM)
	}
	if mc.PaletteSize != 2 {
		t.Errorf("expected PaletteSize = 2, got %d", mc.PaletteSize)
	}
	if mc.StartState.Scale == nil || mc.StartState.Scale.X == nil || *mc.StartState.Scale.X != 2 {
		t.Errorf("expected start scale.x = 2, got %+v", mc.StartState.Scale)
	}
	if len(mc.Transitions) != 1 {
		t.Fatalf("expected 1 transition spec, got %d", len(mc.Transitions))
	}
	if mc.Transitions[0].Easing == nil || mc.Transitions[0].Easing.Name != "linear" {
		t.Errorf("expected linear easing spec, got %+v", mc.Transitions[0].Easing)
	}

	a, err := motion.NewAnimator(mc)
	if err != nil {
		t.Fatalf("NewAnimator failed: %v", err)
	}
	a.Advance(2.0 / 3.0) // 2 beats at 90 bpm = 4/3s, half of it
	if got := a.CurrentPose().Translate.Y; got < 1.49 || got > 1.51 {
		t.Errorf("expected Translate.Y ≈ 1.5 at half progress, got %v", got)
	}
}

func TestMotionConfig_Colors(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want color.RGBA
	}{
		{"With hash", "#ff4060", color.RGBA{R: 0xff, G: 0x40, B: 0x60, A: 0xff}},
		{"Without hash", "3c78ff", color.RGBA{R: 0x3c, G: 0x78, B: 0xff, A: 0xff}},
		{"Bad length", "#fff", fallbackColor},
		{"Not hex", "#zzzzzz", fallbackColor},
		{"Empty", "", fallbackColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &MotionConfig{ColorPalette: []string{tt.hex}}
			got := cfg.Colors()
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Colors() = %v, want [%v]", got, tt.want)
			}
		})
	}
}
