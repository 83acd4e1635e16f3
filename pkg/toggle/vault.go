package toggle

import (
	"fmt"

	"github.com/decker502/breakout/pkg/ecs"
	"github.com/decker502/breakout/pkg/types"
)

// Vault 组件保险库
// 保存被摘除组件的数据，直到它被重新挂回实体。
// 存取过程不复制、不修改数据：Restore 返回的就是 Park 时传入的值。
type Vault struct {
	entries map[ecs.EntityID]map[types.ComponentKind]any
	size    int
}

// NewVault 创建空的保险库
func NewVault() *Vault {
	return &Vault{
		entries: make(map[ecs.EntityID]map[types.ComponentKind]any),
	}
}

// Park 以 (实体, 组件种类) 为键保存数据
// 键已存在时返回 ErrAlreadyParked，原数据不会被覆盖
func (v *Vault) Park(entity ecs.EntityID, kind types.ComponentKind, payload any) error {
	byKind, ok := v.entries[entity]
	if !ok {
		byKind = make(map[types.ComponentKind]any)
		v.entries[entity] = byKind
	}
	if _, exists := byKind[kind]; exists {
		return fmt.Errorf("%w: entity %d kind %s", ErrAlreadyParked, entity, kind)
	}
	byKind[kind] = payload
	v.size++
	return nil
}

// Restore 移除并返回保存的数据
// 键不存在时返回 ErrNotParked
func (v *Vault) Restore(entity ecs.EntityID, kind types.ComponentKind) (any, error) {
	byKind, ok := v.entries[entity]
	if !ok {
		return nil, fmt.Errorf("%w: entity %d kind %s", ErrNotParked, entity, kind)
	}
	payload, exists := byKind[kind]
	if !exists {
		return nil, fmt.Errorf("%w: entity %d kind %s", ErrNotParked, entity, kind)
	}
	delete(byKind, kind)
	if len(byKind) == 0 {
		delete(v.entries, entity)
	}
	v.size--
	return payload, nil
}

// Peek 读取保存的数据但不移除
func (v *Vault) Peek(entity ecs.EntityID, kind types.ComponentKind) (any, bool) {
	payload, ok := v.entries[entity][kind]
	return payload, ok
}

// Purge 移除某个实体的所有条目（实体销毁时调用），没有条目时什么也不做
func (v *Vault) Purge(entity ecs.EntityID) {
	byKind, ok := v.entries[entity]
	if !ok {
		return
	}
	v.size -= len(byKind)
	delete(v.entries, entity)
}

// CountFor 返回某个实体的条目数量
func (v *Vault) CountFor(entity ecs.EntityID) int {
	return len(v.entries[entity])
}

// Len 返回条目总数
func (v *Vault) Len() int {
	return v.size
}
