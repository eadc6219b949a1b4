package draw

import (
	"github.com/zooyer/dxfdraw/core"
	"github.com/zooyer/dxfdraw/entities"
)

// mtextLineHeightFactor 多行文字基准行高与字高之比（DXF 约定 5/3）
const mtextLineHeightFactor = 5.0 / 3.0

// textChunk 简化后的单行文字块：内容 + 摆放变换 + 字高
type textChunk struct {
	Line      string
	Transform core.Matrix
	CapHeight float64
}

// simplifiedTextChunks 将文字类实体拆成独立的单行文字块
// 字形轮廓由后端处理，这里只负责拆行与摆放
func simplifiedTextChunks(entity entities.Entity) []textChunk {
	switch e := entity.(type) {
	case *entities.Text:
		return placeLines(e.Lines(), e.Location, e.Rotation, e.Height, 0)
	case *entities.Attrib:
		return placeLines(e.Lines(), e.Location, e.Rotation, e.Height, 0)
	case *entities.MText:
		lineHeight := e.CharHeight * mtextLineHeightFactor * e.LineSpacing
		return placeLines(e.Lines(), e.Location, e.Rotation, e.CharHeight, lineHeight)
	default:
		panic("dxfdraw: 非文字实体进入文字拆分")
	}
}

// placeLines 逐行向下排布后整体旋转、平移到插入点
func placeLines(lines []string, location core.Point, rotation, capHeight, lineHeight float64) []textChunk {
	var (
		place  = core.Rotate(core.Radians(rotation)).Mul(core.Translate(location.X, location.Y))
		chunks = make([]textChunk, 0, len(lines))
	)

	for i, line := range lines {
		if line == "" {
			continue
		}

		transform := core.Translate(0, -float64(i)*lineHeight).Mul(place)
		chunks = append(chunks, textChunk{
			Line:      line,
			Transform: transform,
			CapHeight: capHeight,
		})
	}

	return chunks
}
