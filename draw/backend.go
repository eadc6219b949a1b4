package draw

import (
	"github.com/zooyer/dxfdraw/core"
	"github.com/zooyer/dxfdraw/entities"
)

// Feature 后端能力集合（位标志）
type Feature uint

const (
	// FeatureSplines 后端原生支持样条曲线，
	// 不支持时前端会采样为折线段
	FeatureSplines Feature = 1 << iota
)

// Has 判断能力集合是否包含指定能力
func (f Feature) Has(feature Feature) bool {
	return f&feature != 0
}

// Backend 渲染后端契约，由外部实现
// 前端保证：组合实体永远不会直接出现在绘制调用里，
// StartPolyline/EndPolyline 成对包裹应视为一条连续曲线的线段序列
type Backend interface {
	// Features 后端声明的能力集合
	Features() Feature

	// SetCurrentEntity 通知当前正在绘制的实体及其祖先链
	SetCurrentEntity(entity entities.Entity, ancestors Ancestors)
	// ClearCurrentEntity 当前实体绘制结束
	ClearCurrentEntity()

	DrawLine(start, end core.Point, properties Properties)
	// DrawArc 绘制椭圆弧，angles 为 nil 表示整圆/整椭圆
	DrawArc(center core.Point, width, height, majorAxisAngle float64, angles *core.DrawAngles, properties Properties)
	DrawPoint(location core.Point, properties Properties)
	DrawFilledPolygon(points []core.Point, properties Properties)
	DrawText(text string, transform core.Matrix, properties Properties, capHeight float64)
	// DrawSpline 仅在声明 FeatureSplines 时被调用
	DrawSpline(spline *core.BSpline, properties Properties)

	StartPolyline()
	EndPolyline()

	// IgnoredEntity 不支持的实体被跳过
	IgnoredEntity(entity entities.Entity)

	SetBackground(color string)
	Finalize()
}

// Ancestors 遍历期间生效的祖先实体链，按值传递、不可变：
// Push 返回新链，兄弟子树之间互不可见
type Ancestors []entities.Entity

// Push 追加一个祖先，原链不受影响
func (a Ancestors) Push(entity entities.Entity) Ancestors {
	return append(a[:len(a):len(a)], entity)
}
