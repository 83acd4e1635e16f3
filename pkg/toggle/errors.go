package toggle

import "errors"

// 组件开关引擎的错误类型
// 所有错误都是非致命的：调用者记录日志后继续帧循环
var (
	// ErrInvalidToggle 请求的 (类别, 组件种类) 不在适用性矩阵中
	ErrInvalidToggle = errors.New("toggle: component kind not applicable to archetype")
	// ErrAlreadyParked 保险库中已存在该 (实体, 组件种类) 的条目
	ErrAlreadyParked = errors.New("toggle: component already parked")
	// ErrNotParked 保险库中不存在该 (实体, 组件种类) 的条目
	ErrNotParked = errors.New("toggle: component not parked")
	// ErrUnknownEntity 实体未被索引跟踪（或已被销毁）
	ErrUnknownEntity = errors.New("toggle: unknown entity")
	// ErrNotApplicable 组件种类不适用于该实体的类别
	ErrNotApplicable = errors.New("toggle: component kind not applicable to entity")
	// ErrAlreadyRegistered 实体已被索引跟踪
	ErrAlreadyRegistered = errors.New("toggle: entity already registered")
	// ErrComponentMissing 宿主引擎上找不到应当挂载的组件
	ErrComponentMissing = errors.New("toggle: live component missing")
)
