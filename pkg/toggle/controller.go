// Package toggle 实现动态组件开关引擎
//
// 用户通过按钮网格按类别开关实体的组件（如让所有球失去 Velocity），
// 被关闭的组件数据原样保存在 Vault 中，重新打开时不做任何变换地挂回实体。
//
// 组成部分（自底向上）：
//   - Matrix: 适用性矩阵，哪些类别可以携带哪些组件种类
//   - Vault: 保存被摘除组件的数据
//   - AggregateTable: 每个 (类别, 组件种类) 的聚合开关状态
//   - Index: 按类别跟踪存活实体及其每种组件的状态
//   - Controller: 处理开关请求并在实体间扇出
//
// 所有操作都在帧循环的输入阶段同步执行，不需要加锁。
package toggle

import (
	"errors"
	"fmt"

	"github.com/decker502/breakout/pkg/types"
	"go.uber.org/zap"
)

// Listener 在聚合开关成功翻转后调用
type Listener func(archetype types.Archetype, kind types.ComponentKind, parked bool)

// Controller 开关控制器
type Controller struct {
	matrix    *Matrix
	index     *Index
	aggregate *AggregateTable
	logger    *zap.Logger
	listeners []Listener
}

// NewController 创建开关控制器
// index 必须与 aggregate 共享同一张聚合开关表
func NewController(matrix *Matrix, index *Index, aggregate *AggregateTable, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		matrix:    matrix,
		index:     index,
		aggregate: aggregate,
		logger:    logger.Named("toggle"),
	}
}

// OnToggle 注册翻转监听器
func (c *Controller) OnToggle(listener Listener) {
	c.listeners = append(c.listeners, listener)
}

// Toggle 翻转 (类别, 组件种类) 的聚合开关，并应用到该类别的所有存活实体
//
// 不适用的组合返回 ErrInvalidToggle，不改变任何状态。
// 单个实体处理失败时该实体保持原状，已处理的实体不回滚，其余实体继续处理；
// 所有失败合并后返回。
func (c *Controller) Toggle(archetype types.Archetype, kind types.ComponentKind) error {
	if !c.matrix.Permits(archetype, kind) {
		c.logger.Debug("忽略不适用的开关请求",
			zap.Stringer("archetype", archetype),
			zap.Stringer("kind", kind))
		return fmt.Errorf("%w: %s/%s", ErrInvalidToggle, archetype, kind)
	}

	parked := c.aggregate.flip(archetype, kind)

	var errs []error
	processed := 0
	for entity := range c.index.EntitiesOf(archetype) {
		if err := c.index.drive(entity, kind, parked); err != nil {
			errs = append(errs, err)
			continue
		}
		processed++
	}

	c.logger.Info("组件开关已翻转",
		zap.Stringer("archetype", archetype),
		zap.Stringer("kind", kind),
		zap.Bool("parked", parked),
		zap.Int("entities", processed),
		zap.Int("failed", len(errs)))

	for _, listener := range c.listeners {
		listener(archetype, kind, parked)
	}

	if len(errs) > 0 {
		err := errors.Join(errs...)
		c.logger.Error("部分实体开关失败", zap.Error(err))
		return err
	}
	return nil
}

// IsParked 返回 (类别, 组件种类) 当前是否处于停放状态
func (c *Controller) IsParked(archetype types.Archetype, kind types.ComponentKind) bool {
	return c.aggregate.IsParked(archetype, kind)
}

// Snapshot 返回当前聚合开关表的快照（用于存档）
func (c *Controller) Snapshot() Preset {
	return c.aggregate.Snapshot()
}

// Apply 把聚合开关表推进到 preset 描述的状态
// 只翻转与 preset 不一致的组合；preset 中不适用的组合被忽略
func (c *Controller) Apply(preset Preset) error {
	var errs []error
	for _, archetype := range types.AllArchetypes {
		for _, kind := range c.matrix.KindsOf(archetype) {
			if preset.Contains(archetype, kind) == c.aggregate.IsParked(archetype, kind) {
				continue
			}
			if err := c.Toggle(archetype, kind); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Reset 恢复所有停放的组件（所有组合回到激活状态）
func (c *Controller) Reset() error {
	return c.Apply(Preset{})
}
