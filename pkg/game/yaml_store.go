package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// yamlStore 把一个 yaml 文档保存为 gdata 的对象属性
// manager 为 nil 时（降级模式）读取返回不存在，保存什么也不做
type yamlStore struct {
	manager  *gdata.Manager
	object   string
	property string
}

// load 读取并解析文档；不存在时返回 false
func (s yamlStore) load(v any) (bool, error) {
	if s.manager == nil || !s.manager.ObjectPropExists(s.object, s.property) {
		return false, nil
	}
	raw, err := s.manager.LoadObjectProp(s.object, s.property)
	if err != nil {
		return false, fmt.Errorf("failed to load %s/%s: %w", s.object, s.property, err)
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s/%s: %w", s.object, s.property, err)
	}
	return true, nil
}

// save 序列化并写入文档
func (s yamlStore) save(v any) error {
	if s.manager == nil {
		return nil
	}
	raw, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", s.object, s.property, err)
	}
	if err := s.manager.SaveObjectProp(s.object, s.property, raw); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", s.object, s.property, err)
	}
	return nil
}
