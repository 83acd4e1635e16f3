package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"math"
	"os"

	"github.com/decker502/breakout/pkg/embedded"
	"github.com/decker502/breakout/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultArenaConfigPath 默认竞技场配置路径（磁盘上不存在时读取嵌入的同名文件）
const DefaultArenaConfigPath = "data/arena.yaml"

// ArenaConfig 竞技场配置
//
// 不为每个实体单独配置，只提供生成实体所需的常量：
// 初始位置、速度、尺寸、颜色，以及按钮网格的布局。
//
// 配置文件位置: data/arena.yaml
type ArenaConfig struct {
	Arena  ArenaBounds  `yaml:"arena"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	Bricks BricksConfig `yaml:"bricks"`
	Score  ScoreConfig  `yaml:"score"`
	Colors ColorsConfig `yaml:"colors"`
	Grid   GridConfig   `yaml:"grid"`

	// Applicability 可选：覆盖默认适用性矩阵
	// key: 类别名称（如 "Ball"），value: 组件种类名称列表
	Applicability map[string][]string `yaml:"applicability"`
}

// ArenaBounds 竞技场边界（竞技场坐标，原点在中心，Y 轴向上）
type ArenaBounds struct {
	LeftWall      float64 `yaml:"leftWall"`
	RightWall     float64 `yaml:"rightWall"`
	BottomWall    float64 `yaml:"bottomWall"`
	TopWall       float64 `yaml:"topWall"`
	WallThickness float64 `yaml:"wallThickness"`
	// OriginX, OriginY 竞技场中心在屏幕上的位置
	OriginX float64 `yaml:"originX"`
	OriginY float64 `yaml:"originY"`
}

// PaddleConfig 挡板配置
type PaddleConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	GapToFloor float64 `yaml:"gapToFloor"` // 挡板与底墙的距离
	Speed      float64 `yaml:"speed"`
	Padding    float64 `yaml:"padding"` // 挡板与侧墙的最小间距
}

// BallConfig 球配置
type BallConfig struct {
	StartX    float64    `yaml:"startX"`
	StartY    float64    `yaml:"startY"`
	Size      float64    `yaml:"size"`
	Speed     float64    `yaml:"speed"`
	Direction [2]float64 `yaml:"direction"` // 初始方向（不要求归一化）
}

// BricksConfig 砖块阵列配置
type BricksConfig struct {
	Rows      int     `yaml:"rows"`
	Columns   int     `yaml:"columns"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Gap       float64 `yaml:"gap"`
	TopOffset float64 `yaml:"topOffset"` // 第一行砖块与顶墙的距离
	Health    int     `yaml:"health"`
	Points    int     `yaml:"points"`
}

// ScoreConfig 计分板配置
type ScoreConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Label  string  `yaml:"label"`
}

// RGB 以 0.0 ~ 1.0 的浮点分量表示颜色
type RGB [3]float64

// RGBA 转换为 8 位颜色
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{
		R: channel(c[0]),
		G: channel(c[1]),
		B: channel(c[2]),
		A: 255,
	}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// ColorsConfig 颜色配置
type ColorsConfig struct {
	Background RGB `yaml:"background"`
	Paddle     RGB `yaml:"paddle"`
	Ball       RGB `yaml:"ball"`
	Brick      RGB `yaml:"brick"`
	Wall       RGB `yaml:"wall"`
	Text       RGB `yaml:"text"`
	Score      RGB `yaml:"score"`

	// 按钮颜色
	ButtonNormal   RGB `yaml:"buttonNormal"`   // 激活状态
	ButtonHovered  RGB `yaml:"buttonHovered"`  // 激活状态 + 悬停
	ButtonOn       RGB `yaml:"buttonOn"`       // 停放状态
	ButtonDisabled RGB `yaml:"buttonDisabled"` // 不适用的组合
}

// GridConfig 按钮网格布局（屏幕坐标）
// 列为类别，行为组件种类
type GridConfig struct {
	OriginX      float64 `yaml:"originX"`
	OriginY      float64 `yaml:"originY"`
	CellWidth    float64 `yaml:"cellWidth"`
	CellHeight   float64 `yaml:"cellHeight"`
	Gap          float64 `yaml:"gap"`
	HeaderHeight float64 `yaml:"headerHeight"` // 列标题高度
	LabelWidth   float64 `yaml:"labelWidth"`   // 行标题宽度
	// ShowInapplicable 为 true 时绘制完整的 5×7 网格，不适用的组合显示为禁用按钮
	ShowInapplicable bool `yaml:"showInapplicable"`
}

// LoadArenaConfig 加载竞技场配置
//
// 优先读取磁盘上的文件；文件不存在时读取嵌入的同名文件。
//
// 参数:
//   - path: 配置文件路径（如 "data/arena.yaml"）
//
// 返回:
//   - *ArenaConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadArenaConfig(path string) (*ArenaConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena config: %w", err)
	}
	return ParseArenaConfig(data)
}

// ParseArenaConfig 解析 YAML 格式的竞技场配置
// 文件中缺失的字段使用 DefaultArenaConfig 的值
func ParseArenaConfig(data []byte) (*ArenaConfig, error) {
	config := DefaultArenaConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse arena config: %w", err)
	}

	// 验证配置
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arena config: %w", err)
	}

	return config, nil
}

// readConfigFile 读取磁盘文件，不存在时回退到嵌入资源
func readConfigFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) || !embedded.IsInitialized() {
		return nil, err
	}
	return embedded.ReadFile(path)
}

// DefaultArenaConfig 返回默认竞技场配置
func DefaultArenaConfig() *ArenaConfig {
	return &ArenaConfig{
		Arena: ArenaBounds{
			LeftWall:      -450,
			RightWall:     450,
			BottomWall:    -300,
			TopWall:       300,
			WallThickness: 10,
			OriginX:       470,
			OriginY:       360,
		},
		Paddle: PaddleConfig{
			Width:      120,
			Height:     20,
			GapToFloor: 60,
			Speed:      500,
			Padding:    10,
		},
		Ball: BallConfig{
			StartX:    0,
			StartY:    -50,
			Size:      30,
			Speed:     400,
			Direction: [2]float64{0.5, -0.5},
		},
		Bricks: BricksConfig{
			Rows:      3,
			Columns:   8,
			Width:     90,
			Height:    24,
			Gap:       10,
			TopOffset: 60,
			Health:    1,
			Points:    10,
		},
		Score: ScoreConfig{
			X:      -360,
			Y:      270,
			Width:  150,
			Height: 24,
			Label:  "Score",
		},
		Colors: ColorsConfig{
			Background:     RGB{0.9, 0.9, 0.9},
			Paddle:         RGB{0.3, 0.3, 0.7},
			Ball:           RGB{1.0, 0.5, 0.5},
			Brick:          RGB{0.5, 0.5, 1.0},
			Wall:           RGB{0.8, 0.8, 0.8},
			Text:           RGB{0.5, 0.5, 1.0},
			Score:          RGB{1.0, 0.5, 0.5},
			ButtonNormal:   RGB{0.15, 0.15, 0.15},
			ButtonHovered:  RGB{0.25, 0.25, 0.25},
			ButtonOn:       RGB{0.35, 0.75, 0.35},
			ButtonDisabled: RGB{0.6, 0.6, 0.6},
		},
		Grid: GridConfig{
			OriginX:          960,
			OriginY:          80,
			CellWidth:        64,
			CellHeight:       36,
			Gap:              6,
			HeaderHeight:     20,
			LabelWidth:       96,
			ShowInapplicable: false,
		},
	}
}

// Validate 验证配置有效性
func (c *ArenaConfig) Validate() error {
	a := c.Arena
	if a.LeftWall >= a.RightWall {
		return fmt.Errorf("arena walls invalid: left(%.1f) >= right(%.1f)", a.LeftWall, a.RightWall)
	}
	if a.BottomWall >= a.TopWall {
		return fmt.Errorf("arena walls invalid: bottom(%.1f) >= top(%.1f)", a.BottomWall, a.TopWall)
	}
	if a.WallThickness <= 0 {
		return fmt.Errorf("wall thickness must be positive, got %.1f", a.WallThickness)
	}

	// 挡板必须能放进两面墙之间
	inner := a.RightWall - a.LeftWall - a.WallThickness - 2*c.Paddle.Padding
	if c.Paddle.Width <= 0 || c.Paddle.Width > inner {
		return fmt.Errorf("paddle width %.1f does not fit the arena (max %.1f)", c.Paddle.Width, inner)
	}
	if c.Paddle.Speed < 0 {
		return fmt.Errorf("paddle speed must not be negative, got %.1f", c.Paddle.Speed)
	}

	if c.Ball.Size <= 0 {
		return fmt.Errorf("ball size must be positive, got %.1f", c.Ball.Size)
	}
	if !isFinite(c.Ball.Speed) || c.Ball.Speed < 0 {
		return fmt.Errorf("ball speed must be finite and non-negative, got %g", c.Ball.Speed)
	}
	for i, d := range c.Ball.Direction {
		if !isFinite(d) {
			return fmt.Errorf("ball direction[%d] must be finite, got %g", i, d)
		}
	}
	if vx, vy := c.BallVelocity(); !isFinite(vx) || !isFinite(vy) {
		return fmt.Errorf("ball velocity overflows: (%g, %g)", vx, vy)
	}
	if c.Bricks.Rows < 0 || c.Bricks.Columns < 0 {
		return fmt.Errorf("brick grid invalid: %dx%d", c.Bricks.Rows, c.Bricks.Columns)
	}
	if c.Grid.CellWidth <= 0 || c.Grid.CellHeight <= 0 {
		return fmt.Errorf("button cell size invalid: %.1fx%.1f", c.Grid.CellWidth, c.Grid.CellHeight)
	}

	if _, err := c.ApplicabilityTable(); err != nil {
		return err
	}
	return nil
}

// ApplicabilityTable 解析适用性矩阵覆盖
// 未配置时返回 (nil, nil)，调用者使用默认矩阵
func (c *ArenaConfig) ApplicabilityTable() (map[types.Archetype][]types.ComponentKind, error) {
	if len(c.Applicability) == 0 {
		return nil, nil
	}

	table := make(map[types.Archetype][]types.ComponentKind, len(c.Applicability))
	for archetypeName, kindNames := range c.Applicability {
		archetype, err := types.ParseArchetype(archetypeName)
		if err != nil {
			return nil, fmt.Errorf("applicability: %w", err)
		}
		kinds := make([]types.ComponentKind, 0, len(kindNames))
		for _, name := range kindNames {
			kind, err := types.ParseComponentKind(name)
			if err != nil {
				return nil, fmt.Errorf("applicability[%s]: %w", archetypeName, err)
			}
			kinds = append(kinds, kind)
		}
		table[archetype] = kinds
	}
	return table, nil
}

// BallVelocity 返回球的初始速度（方向 × 速率）
func (c *ArenaConfig) BallVelocity() (vx, vy float64) {
	return c.Ball.Direction[0] * c.Ball.Speed, c.Ball.Direction[1] * c.Ball.Speed
}

// PaddleY 返回挡板中心的 Y 坐标
func (c *ArenaConfig) PaddleY() float64 {
	return c.Arena.BottomWall + c.Paddle.GapToFloor
}

// PaddleBounds 返回挡板中心 X 坐标的可移动范围
func (c *ArenaConfig) PaddleBounds() (left, right float64) {
	return c.Arena.PaddleRange(c.Paddle.Width, c.Paddle.Padding)
}

// PaddleRange 返回宽度为 width 的挡板中心 X 坐标的可移动范围
// 挡板与墙内侧保留 padding 的间距
func (a ArenaBounds) PaddleRange(width, padding float64) (left, right float64) {
	left = a.LeftWall + a.WallThickness/2 + width/2 + padding
	right = a.RightWall - a.WallThickness/2 - width/2 - padding
	return left, right
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
