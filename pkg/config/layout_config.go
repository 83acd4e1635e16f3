package config

// 布局与时序常量
// 本文件定义了与配置文件无关的固定参数

const (
	// TimeStep 物理步长（秒），与 ebiten 固定 TPS 对应
	TimeStep = 1.0 / 60.0

	// DefaultTPS 每秒逻辑更新次数
	DefaultTPS = 60

	// GameWindowWidth 默认逻辑屏幕宽度（竞技场 + 按钮网格）
	GameWindowWidth = 1440

	// GameWindowHeight 默认逻辑屏幕高度
	GameWindowHeight = 720
)
