package draw

import (
	"github.com/zooyer/dxfdraw/core"
	"github.com/zooyer/dxfdraw/entities"
)

// RecordKind 录制的调用类型
type RecordKind int

const (
	RecordLine RecordKind = iota
	RecordArc
	RecordPoint
	RecordFilledPolygon
	RecordText
	RecordSpline
	RecordStartPolyline
	RecordEndPolyline
	RecordIgnored
	RecordBackground
	RecordFinalize
)

// Record 一次后端调用的完整参数快照
type Record struct {
	Kind       RecordKind
	Start, End core.Point
	Center     core.Point
	Width      float64
	Height     float64
	AxisAngle  float64
	Angles     *core.DrawAngles
	Points     []core.Point
	Text       string
	Transform  core.Matrix
	CapHeight  float64
	Spline     *core.BSpline
	Color      string
	Properties Properties

	// Entity 录制时刻的当前实体与祖先链
	Entity    entities.Entity
	Ancestors Ancestors
}

// Recorder 录制后端：按顺序记录全部绘制调用，供测试和调试回放
type Recorder struct {
	features Feature

	current   entities.Entity
	ancestors Ancestors

	Records []Record

	// IgnoredTypes 被跳过实体的 DXF 类型名，按出现顺序
	IgnoredTypes []string
	// Background 最后一次设置的背景色
	Background string
	// Finalized 收尾调用次数
	Finalized int
}

// NewRecorder 构造录制后端，features 声明回放目标的能力
func NewRecorder(features Feature) *Recorder {
	return &Recorder{features: features}
}

func (r *Recorder) record(rec Record) {
	rec.Entity = r.current
	rec.Ancestors = r.ancestors
	r.Records = append(r.Records, rec)
}

func (r *Recorder) Features() Feature { return r.features }

func (r *Recorder) SetCurrentEntity(entity entities.Entity, ancestors Ancestors) {
	r.current = entity
	r.ancestors = ancestors
}

func (r *Recorder) ClearCurrentEntity() {
	r.current = nil
	r.ancestors = nil
}

func (r *Recorder) DrawLine(start, end core.Point, properties Properties) {
	r.record(Record{Kind: RecordLine, Start: start, End: end, Properties: properties})
}

func (r *Recorder) DrawArc(center core.Point, width, height, majorAxisAngle float64, angles *core.DrawAngles, properties Properties) {
	r.record(Record{
		Kind:       RecordArc,
		Center:     center,
		Width:      width,
		Height:     height,
		AxisAngle:  majorAxisAngle,
		Angles:     angles,
		Properties: properties,
	})
}

func (r *Recorder) DrawPoint(location core.Point, properties Properties) {
	r.record(Record{Kind: RecordPoint, Start: location, Properties: properties})
}

func (r *Recorder) DrawFilledPolygon(points []core.Point, properties Properties) {
	r.record(Record{Kind: RecordFilledPolygon, Points: points, Properties: properties})
}

func (r *Recorder) DrawText(text string, transform core.Matrix, properties Properties, capHeight float64) {
	r.record(Record{
		Kind:       RecordText,
		Text:       text,
		Transform:  transform,
		CapHeight:  capHeight,
		Properties: properties,
	})
}

func (r *Recorder) DrawSpline(spline *core.BSpline, properties Properties) {
	r.record(Record{Kind: RecordSpline, Spline: spline, Properties: properties})
}

func (r *Recorder) StartPolyline() {
	r.record(Record{Kind: RecordStartPolyline})
}

func (r *Recorder) EndPolyline() {
	r.record(Record{Kind: RecordEndPolyline})
}

func (r *Recorder) IgnoredEntity(entity entities.Entity) {
	r.IgnoredTypes = append(r.IgnoredTypes, entity.Type())
	r.record(Record{Kind: RecordIgnored})
}

func (r *Recorder) SetBackground(color string) {
	r.Background = color
	r.record(Record{Kind: RecordBackground, Color: color})
}

func (r *Recorder) Finalize() {
	r.Finalized++
	r.record(Record{Kind: RecordFinalize})
}

// Count 统计指定类型的调用次数
func (r *Recorder) Count(kind RecordKind) (n int) {
	for _, rec := range r.Records {
		if rec.Kind == kind {
			n++
		}
	}

	return
}

// Filter 取出指定类型的全部调用，保持顺序
func (r *Recorder) Filter(kind RecordKind) (records []Record) {
	for _, rec := range r.Records {
		if rec.Kind == kind {
			records = append(records, rec)
		}
	}

	return
}

// Vertices 汇总全部绘制调用涉及的顶点，供包围盒计算
func (r *Recorder) Vertices() (points []core.Point) {
	for _, rec := range r.Records {
		switch rec.Kind {
		case RecordLine:
			points = append(points, rec.Start, rec.End)
		case RecordPoint:
			points = append(points, rec.Start)
		case RecordFilledPolygon:
			points = append(points, rec.Points...)
		case RecordArc:
			points = append(points,
				rec.Center.Sub(core.Point{X: rec.Width / 2, Y: rec.Height / 2}),
				rec.Center.Add(core.Point{X: rec.Width / 2, Y: rec.Height / 2}))
		case RecordSpline:
			points = append(points, rec.Spline.ControlPoints...)
		}
	}

	return
}
