package game

import (
	"fmt"
	"sort"

	"github.com/decker502/breakout/pkg/toggle"
	"github.com/decker502/breakout/pkg/types"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
)

// 存储位置与格式版本
const (
	presetObject   = "toggles"
	presetProperty = "aggregate"
	presetVersion  = 1
)

// presetData 聚合开关表的存档格式
// parked: 类别名称 → 停放的组件种类名称
type presetData struct {
	Version int                 `yaml:"version"`
	Parked  map[string][]string `yaml:"parked"`
}

// PresetManager 在两次运行之间保存聚合开关表
//
// 只保存聚合状态，不保存组件数据：重启后实体重新生成，
// 再通过 Controller.Apply 把开关推进到保存时的状态。
type PresetManager struct {
	store  yamlStore
	logger *zap.Logger
}

// NewPresetManager 创建开关存档管理器
// gdataManager 为 nil 时进入降级模式，不持久化
func NewPresetManager(gdataManager *gdata.Manager, logger *zap.Logger) *PresetManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PresetManager{
		store:  yamlStore{manager: gdataManager, object: presetObject, property: presetProperty},
		logger: logger.Named("presets"),
	}
}

// Load 读取保存的聚合开关表
// 降级模式或没有存档时返回空表；无法识别的名称被跳过
func (pm *PresetManager) Load() (toggle.Preset, error) {
	preset := make(toggle.Preset)
	var data presetData
	ok, err := pm.store.load(&data)
	if err != nil || !ok {
		return preset, err
	}
	if data.Version != presetVersion {
		return preset, fmt.Errorf("unsupported toggle preset version %d", data.Version)
	}

	for archetypeName, kindNames := range data.Parked {
		archetype, err := types.ParseArchetype(archetypeName)
		if err != nil {
			pm.logger.Warn("跳过未知类别", zap.String("archetype", archetypeName))
			continue
		}
		for _, kindName := range kindNames {
			kind, err := types.ParseComponentKind(kindName)
			if err != nil {
				pm.logger.Warn("跳过未知组件种类",
					zap.String("archetype", archetypeName),
					zap.String("kind", kindName))
				continue
			}
			preset[archetype] = append(preset[archetype], kind)
		}
	}
	return preset, nil
}

// Save 保存聚合开关表
// 降级模式下不报错
func (pm *PresetManager) Save(preset toggle.Preset) error {
	data := presetData{
		Version: presetVersion,
		Parked:  make(map[string][]string, len(preset)),
	}
	for archetype, kinds := range preset {
		if len(kinds) == 0 {
			continue
		}
		names := make([]string, 0, len(kinds))
		for _, kind := range kinds {
			names = append(names, kind.String())
		}
		sort.Strings(names)
		data.Parked[archetype.String()] = names
	}

	if err := pm.store.save(&data); err != nil {
		return err
	}

	pm.logger.Debug("开关存档已保存", zap.Int("archetypes", len(data.Parked)))
	return nil
}
