package config

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gonewx/beatform/internal/motion"
	"gopkg.in/yaml.v3"
)

// MotionConfig 单个运动物体的动画配置
// 描述起始姿态与按节拍循环的过渡序列，由关卡文件的 motion 段加载
type MotionConfig struct {
	BPM          float64            `yaml:"bpm"`          // 关卡节拍速度（每分钟节拍数），默认 120
	ColorPalette []string           `yaml:"colorPalette"` // 调色板，十六进制颜色列表，如 ["#ff4060", "#3c78ff"]
	StartState   PoseSpec           `yaml:"startState"`   // 起始姿态（可部分指定，缺省轴使用默认值）
	Transitions  []TransitionConfig `yaml:"transitions"`  // 过渡序列，空列表表示物体静止
}

// PoseSpec 部分姿态定义
// 所有字段均可省略，省略的轴继承默认值或上一个过渡的结果
type PoseSpec struct {
	Translate  *VecSpec `yaml:"translate"`  // 相对基准位置的偏移
	Scale      *VecSpec `yaml:"scale"`      // 各轴缩放倍数
	Rotate     *VecSpec `yaml:"rotate"`     // 各轴旋转（弧度）
	ColorIndex *int     `yaml:"colorIndex"` // 调色板颜色索引
}

// VecSpec 部分三维向量，省略的分量保持原值
type VecSpec struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
	Z *float64 `yaml:"z"`
}

// TransitionConfig 单个过渡步骤配置
type TransitionConfig struct {
	Beats      *float64     `yaml:"beats"`      // 过渡时长（节拍数），默认 1，必须 > 0
	Easing     *EasingField `yaml:"easing"`     // 缓动曲线，省略时使用默认曲线
	Transforms PoseSpec     `yaml:"transforms"` // 目标姿态（可部分指定）
}

// EasingField 缓动字段，兼容三种书写格式：
//
//	easing: easeInOutBack              # 曲线名称
//	easing: [0.6, -0.28, 0.735, 0.045] # 自定义贝塞尔控制点
//	easing:                            # 按变换类型分别指定
//	  translate: linear
//	  rotate: easeOutBack
//
// 格式错误属于外观级问题：字段静默退化为默认曲线，不中断关卡加载
type EasingField struct {
	Name   string
	Points []float64

	Translate *EasingField
	Scale     *EasingField
	Rotate    *EasingField
}

// UnmarshalYAML 按节点类型分发三种书写格式
func (f *EasingField) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		// 曲线名称；解码失败留空，退化为默认曲线
		_ = node.Decode(&f.Name)
	case yaml.SequenceNode:
		var points []float64
		if err := node.Decode(&points); err == nil {
			f.Points = points
		}
	case yaml.MappingNode:
		var perType struct {
			Translate *EasingField `yaml:"translate"`
			Scale     *EasingField `yaml:"scale"`
			Rotate    *EasingField `yaml:"rotate"`
		}
		if err := node.Decode(&perType); err == nil {
			f.Translate = perType.Translate
			f.Scale = perType.Scale
			f.Rotate = perType.Rotate
		}
	}
	return nil
}

// LoadMotionConfig 从 YAML 文件加载运动动画配置
func LoadMotionConfig(filePath string) (*MotionConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read motion config file %s: %w", filePath, err)
	}

	cfg, err := ParseMotionConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid motion config in %s: %w", filePath, err)
	}
	return cfg, nil
}

// ParseMotionConfig 解析 YAML 数据并应用默认值与结构校验
func ParseMotionConfig(data []byte) (*MotionConfig, error) {
	var cfg MotionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse motion config YAML: %w", err)
	}

	applyMotionDefaults(&cfg)

	if err := validateMotionConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyMotionDefaults 为缺失的可选字段设置默认值
func applyMotionDefaults(cfg *MotionConfig) {
	if cfg.BPM <= 0 || math.IsNaN(cfg.BPM) {
		cfg.BPM = 120
	}
}

// validateMotionConfig 校验结构级字段
// 外观级问题（未知曲线名、坏的颜色值）不在此处理，加载后静默退化
func validateMotionConfig(cfg *MotionConfig) error {
	for i, tr := range cfg.Transitions {
		if tr.Beats != nil && (math.IsNaN(*tr.Beats) || *tr.Beats <= 0) {
			return fmt.Errorf("transition %d: beats must be > 0, got %v", i, *tr.Beats)
		}
	}
	return nil
}

// ToMotion 将配置转换为动画引擎的输入记录
func (cfg *MotionConfig) ToMotion() motion.Config {
	specs := make([]motion.TransitionSpec, 0, len(cfg.Transitions))
	for _, tr := range cfg.Transitions {
		specs = append(specs, motion.TransitionSpec{
			Beats:      tr.Beats,
			Easing:     tr.Easing.toMotion(),
			Transforms: tr.Transforms.toMotion(),
		})
	}
	return motion.Config{
		BPM:         cfg.BPM,
		StartState:  cfg.StartState.toMotion(),
		Transitions: specs,
		PaletteSize: len(cfg.ColorPalette),
	}
}

func (p PoseSpec) toMotion() motion.PartialPose {
	return motion.PartialPose{
		Translate:  p.Translate.toMotion(),
		Scale:      p.Scale.toMotion(),
		Rotate:     p.Rotate.toMotion(),
		ColorIndex: p.ColorIndex,
	}
}

func (v *VecSpec) toMotion() *motion.PartialVec3 {
	if v == nil {
		return nil
	}
	return &motion.PartialVec3{X: v.X, Y: v.Y, Z: v.Z}
}

func (f *EasingField) toMotion() *motion.EasingSpec {
	if f == nil {
		return nil
	}
	return &motion.EasingSpec{
		Name:      f.Name,
		Points:    f.Points,
		Translate: f.Translate.toMotion(),
		Scale:     f.Scale.toMotion(),
		Rotate:    f.Rotate.toMotion(),
	}
}

// fallbackColor 调色板解析失败时的替代颜色（不中断加载）
var fallbackColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Colors 解析调色板为 RGBA 颜色列表
// 支持 "#RRGGBB" 与 "RRGGBB" 两种写法，坏的颜色值退化为白色
func (cfg *MotionConfig) Colors() []color.RGBA {
	colors := make([]color.RGBA, len(cfg.ColorPalette))
	for i, hex := range cfg.ColorPalette {
		colors[i] = parseHexColor(hex)
	}
	return colors
}

func parseHexColor(s string) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallbackColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallbackColor
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}
