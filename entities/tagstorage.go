package entities

import "github.com/zooyer/dxfdraw/core"

// TagStorage 不支持的原始实体：仅保留标签数据，永远不会被绘制
type TagStorage struct {
	BaseEntity
	Tags []core.Tag
}

// FindTag 返回第一个匹配组码的标签
func (t *TagStorage) FindTag(code int) (core.Tag, bool) {
	for _, tag := range t.Tags {
		if tag.Code == code {
			return tag, true
		}
	}

	return core.Tag{}, false
}
