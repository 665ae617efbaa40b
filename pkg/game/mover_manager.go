package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/beatform/internal/motion"
	"github.com/gonewx/beatform/pkg/config"
)

// Mover 一个由节拍动画驱动的运动物体
// 持有动画器、基准位置和关卡调色板，宿主每帧读取其世界姿态
type Mover struct {
	// Name 物体标识（用于日志与调试）
	Name string

	// Base 物体的固定基准位置，动画的 translate 是相对它的偏移
	Base motion.Vec3

	// Animator 驱动该物体的动画状态机
	Animator *motion.Animator

	palette []color.RGBA
}

// Pose 返回当前插值姿态
func (m *Mover) Pose() motion.Pose {
	return m.Animator.CurrentPose()
}

// WorldPosition 返回基准位置加当前平移偏移后的世界坐标
func (m *Mover) WorldPosition() motion.Vec3 {
	p := m.Animator.CurrentPose()
	return motion.Vec3{
		X: m.Base.X + p.Translate.X,
		Y: m.Base.Y + p.Translate.Y,
		Z: m.Base.Z + p.Translate.Z,
	}
}

// Color 返回当前调色板颜色
// 第二个返回值为 false 表示该物体当前不受颜色控制
func (m *Mover) Color() (color.RGBA, bool) {
	idx := m.Animator.CurrentPose().ColorIndex
	if idx == motion.NoColor || idx < 0 || idx >= len(m.palette) {
		return color.RGBA{}, false
	}
	return m.palette[idx], true
}

// MoverManager 管理一个关卡内的所有运动物体
// 宿主在更新循环中调用 Update 推进全部动画器；各物体相互独立
type MoverManager struct {
	movers []*Mover
}

// NewMoverManager 创建空的运动物体管理器
func NewMoverManager() *MoverManager {
	return &MoverManager{}
}

// Add 根据动画配置注册一个运动物体
// 结构级配置错误（如非法过渡时长）返回错误且不注册物体；
// 宿主可以选择跳过该物体或中止加载
func (mm *MoverManager) Add(name string, base motion.Vec3, cfg *config.MotionConfig) (*Mover, error) {
	animator, err := motion.NewAnimator(cfg.ToMotion())
	if err != nil {
		return nil, fmt.Errorf("mover %s: %w", name, err)
	}

	m := &Mover{
		Name:     name,
		Base:     base,
		Animator: animator,
		palette:  cfg.Colors(),
	}
	mm.movers = append(mm.movers, m)
	return m, nil
}

// AddFromFile 从 YAML 文件加载配置并注册运动物体
func (mm *MoverManager) AddFromFile(name string, base motion.Vec3, path string) (*Mover, error) {
	cfg, err := config.LoadMotionConfig(path)
	if err != nil {
		return nil, fmt.Errorf("mover %s: %w", name, err)
	}
	return mm.Add(name, base, cfg)
}

// AddOrSkip 与 Add 相同，但对结构级错误采用跳过策略：
// 记录日志后继续加载关卡，该物体保持静止缺席
func (mm *MoverManager) AddOrSkip(name string, base motion.Vec3, cfg *config.MotionConfig) *Mover {
	m, err := mm.Add(name, base, cfg)
	if err != nil {
		log.Printf("[MoverManager] Skipping mover: %v", err)
		return nil
	}
	return m
}

// Update 推进所有运动物体 dt 秒
func (mm *MoverManager) Update(dt float64) {
	for _, m := range mm.movers {
		m.Animator.Advance(dt)
	}
}

// Movers 返回已注册的运动物体列表（按注册顺序）
func (mm *MoverManager) Movers() []*Mover {
	return mm.movers
}

// Count 返回已注册的运动物体数量
func (mm *MoverManager) Count() int {
	return len(mm.movers)
}
