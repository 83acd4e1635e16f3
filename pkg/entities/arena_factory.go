package entities

import (
	"errors"

	"github.com/decker502/breakout/pkg/components"
	"github.com/decker502/breakout/pkg/config"
	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/types"
)

// 绘制层级
const (
	zWall   = 0
	zBrick  = 1
	zPaddle = 2
	zScore  = 3
	zBall   = 4
)

// NewBall 创建球实体
// 参数:
//   - s: 实体生成器
//   - cfg: 竞技场配置（尺寸、颜色）
//   - x, y: 中心位置（竞技场坐标）
//   - vx, vy: 初始速度
func NewBall(s *Spawner, cfg *config.ArenaConfig, x, y, vx, vy float64) (ecs.EntityID, error) {
	size := cfg.Ball.Size
	return s.Spawn(types.ArchetypeBall,
		&components.SpriteComponent{Color: cfg.Colors.Ball.RGBA()},
		&components.TransformComponent{X: x, Y: y, Z: zBall, Width: size, Height: size},
		&components.ColliderComponent{Width: size, Height: size},
		&components.VelocityComponent{VX: vx, VY: vy},
		&components.DestructorComponent{Damage: 1},
	)
}

// NewStartingBall 在配置的初始位置以初始速度创建球
func NewStartingBall(s *Spawner, cfg *config.ArenaConfig) (ecs.EntityID, error) {
	vx, vy := cfg.BallVelocity()
	return NewBall(s, cfg, cfg.Ball.StartX, cfg.Ball.StartY, vx, vy)
}

// NewPaddle 创建挡板实体（位于底墙上方，水平居中）
func NewPaddle(s *Spawner, cfg *config.ArenaConfig) (ecs.EntityID, error) {
	p := cfg.Paddle
	return s.Spawn(types.ArchetypePaddle,
		&components.SpriteComponent{Color: cfg.Colors.Paddle.RGBA()},
		&components.TransformComponent{X: 0, Y: cfg.PaddleY(), Z: zPaddle, Width: p.Width, Height: p.Height},
		&components.ColliderComponent{Width: p.Width, Height: p.Height},
		&components.ControllableComponent{Speed: p.Speed, Padding: p.Padding},
	)
}

// NewWalls 创建四面墙（左、右、下、上）
// 竖墙的高度和横墙的宽度都包含墙厚，保证四角闭合
func NewWalls(s *Spawner, cfg *config.ArenaConfig) ([]ecs.EntityID, error) {
	a := cfg.Arena
	width := a.RightWall - a.LeftWall + a.WallThickness
	height := a.TopWall - a.BottomWall + a.WallThickness
	centerX := (a.LeftWall + a.RightWall) / 2
	centerY := (a.BottomWall + a.TopWall) / 2

	walls := []components.TransformComponent{
		{X: a.LeftWall, Y: centerY, Width: a.WallThickness, Height: height},
		{X: a.RightWall, Y: centerY, Width: a.WallThickness, Height: height},
		{X: centerX, Y: a.BottomWall, Width: width, Height: a.WallThickness},
		{X: centerX, Y: a.TopWall, Width: width, Height: a.WallThickness},
	}

	ids := make([]ecs.EntityID, 0, len(walls))
	for i := range walls {
		tr := walls[i]
		tr.Z = zWall
		id, err := s.Spawn(types.ArchetypeWall,
			&components.SpriteComponent{Color: cfg.Colors.Wall.RGBA()},
			&tr,
			&components.ColliderComponent{Width: tr.Width, Height: tr.Height},
		)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// NewBrickGrid 创建砖块阵列
// 阵列水平居中，第一行距离顶墙 TopOffset
func NewBrickGrid(s *Spawner, cfg *config.ArenaConfig) ([]ecs.EntityID, error) {
	b := cfg.Bricks
	if b.Rows == 0 || b.Columns == 0 {
		return nil, nil
	}

	totalWidth := float64(b.Columns)*b.Width + float64(b.Columns-1)*b.Gap
	centerX := (cfg.Arena.LeftWall + cfg.Arena.RightWall) / 2
	startX := centerX - totalWidth/2 + b.Width/2
	startY := cfg.Arena.TopWall - b.TopOffset

	ids := make([]ecs.EntityID, 0, b.Rows*b.Columns)
	var errs []error
	for row := 0; row < b.Rows; row++ {
		y := startY - float64(row)*(b.Height+b.Gap)
		for col := 0; col < b.Columns; col++ {
			x := startX + float64(col)*(b.Width+b.Gap)
			id, err := s.Spawn(types.ArchetypeBrick,
				&components.SpriteComponent{Color: cfg.Colors.Brick.RGBA()},
				&components.TransformComponent{X: x, Y: y, Z: zBrick, Width: b.Width, Height: b.Height},
				&components.ColliderComponent{Width: b.Width, Height: b.Height},
				&components.DestructableComponent{Health: b.Health, Points: b.Points},
			)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			ids = append(ids, id)
		}
	}
	return ids, errors.Join(errs...)
}

// NewScoreboard 创建计分板实体
func NewScoreboard(s *Spawner, cfg *config.ArenaConfig) (ecs.EntityID, error) {
	sc := cfg.Score
	id, err := s.Spawn(types.ArchetypeScore,
		&components.SpriteComponent{Color: cfg.Colors.Score.RGBA()},
		&components.TransformComponent{X: sc.X, Y: sc.Y, Z: zScore, Width: sc.Width, Height: sc.Height},
	)
	if err != nil {
		return 0, err
	}
	// 计分文字不参与开关
	s.EntityManager().AddComponent(id, &components.ScoreComponent{Label: sc.Label})
	return id, nil
}

// PopulateArena 生成竞技场的全部初始实体：墙、砖块、挡板、计分板和一个球
func PopulateArena(s *Spawner, cfg *config.ArenaConfig) error {
	var errs []error
	if _, err := NewWalls(s, cfg); err != nil {
		errs = append(errs, err)
	}
	if _, err := NewBrickGrid(s, cfg); err != nil {
		errs = append(errs, err)
	}
	if _, err := NewPaddle(s, cfg); err != nil {
		errs = append(errs, err)
	}
	if _, err := NewScoreboard(s, cfg); err != nil {
		errs = append(errs, err)
	}
	if _, err := NewStartingBall(s, cfg); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
