package entities

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/zooyer/dxfdraw/core"
)

// Dimension 标注实体：自身不直接绘制，展开为匿名几何块
type Dimension struct {
	BaseEntity
	DimType           int        // 组码 70 低 3 位（关键：区分标注类型）
	StyleName         string     // 组码 3（标注样式名称）
	Style             *DimStyle  // 关联的标注样式
	ActualMeasurement float64    // 组码 42
	Text              string     // 组码 1
	Angle             float64    // 组码 50
	TextMidPoint      core.Point // 组码 11（中间的点）
	DefPoint          core.Point // 组码 10（标注线起点）
	MeasureStart      core.Point // 组码 13（被测量的起点）
	MeasureEnd        core.Point // 组码 14（被测量的终点）
	Geometry          *Block     // 渲染用匿名块，缺省时按定义点合成
}

func init() {
	Register("DIMENSION", func() Entity {
		return &Dimension{BaseEntity: BaseEntity{TypeName: "DIMENSION"}}
	})
}

// GetExtensionPoints 计算标注线上的两个转角点
// 返回：对应 P13 的转角点, 对应 P14 的转角点
func (d *Dimension) GetExtensionPoints() (p13Corner, p14Corner core.Point) {
	rad := core.Radians(d.Angle)
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	// 标注线的单位方向向量
	v := core.Point{X: cos, Y: sin}

	// 向量 (P13 - P10) 在方向向量 v 上的投影
	dx13 := d.MeasureStart.X - d.DefPoint.X
	dy13 := d.MeasureStart.Y - d.DefPoint.Y
	dot13 := dx13*v.X + dy13*v.Y

	p13Corner = core.Point{
		X: d.DefPoint.X + v.X*dot13,
		Y: d.DefPoint.Y + v.Y*dot13,
	}

	dx14 := d.MeasureEnd.X - d.DefPoint.X
	dy14 := d.MeasureEnd.Y - d.DefPoint.Y
	dot14 := dx14*v.X + dy14*v.Y

	p14Corner = core.Point{
		X: d.DefPoint.X + v.X*dot14,
		Y: d.DefPoint.Y + v.Y*dot14,
	}

	return
}

// GetCleanVal 正则提取数值（文字覆盖里可能混着格式控制符）
func (d *Dimension) GetCleanVal() float64 {
	val := d.ActualMeasurement
	if val <= 0 && d.Text != "" {
		reFormat := regexp.MustCompile(`\\[A-Z].*?;`)
		cleanText := reFormat.ReplaceAllString(d.Text, "")
		reNum := regexp.MustCompile(`[0-9.]+`)
		if match := reNum.FindString(cleanText); match != "" {
			parsed, _ := strconv.ParseFloat(match, 64)
			val = parsed
		}
	}

	return val
}

// VirtualEntities 展开为匿名几何：优先使用关联的渲染块，
// 否则按定义点合成延伸线、标注线与文字
func (d *Dimension) VirtualEntities() ([]Entity, error) {
	if d.Geometry != nil {
		return append([]Entity(nil), d.Geometry.Entities...), nil
	}

	return d.synthesize()
}

// synthesize 合成标注几何：两条延伸线 + 一条标注线 + 测量文字
func (d *Dimension) synthesize() ([]Entity, error) {
	if d.MeasureStart == d.MeasureEnd && d.DefPoint == (core.Point{}) {
		return nil, fmt.Errorf("标注 (handle=%q) 缺少定义点，无法合成几何", d.Handle)
	}

	c13, c14 := d.GetExtensionPoints()

	var (
		textHeight = d.textHeight()
		children   = []Entity{
			&Line{BaseEntity: childBase(&d.BaseEntity, "LINE"), Start: d.MeasureStart, End: c13},
			&Line{BaseEntity: childBase(&d.BaseEntity, "LINE"), Start: d.MeasureEnd, End: c14},
			&Line{BaseEntity: childBase(&d.BaseEntity, "LINE"), Start: c13, End: c14},
		}
	)

	if text := d.displayText(); text != "" {
		children = append(children, &Text{
			BaseEntity: childBase(&d.BaseEntity, "TEXT"),
			Location:   d.TextMidPoint,
			Content:    text,
			Height:     textHeight,
			Rotation:   d.Angle,
			Extrusion:  core.ZAxis,
		})
	}

	return children, nil
}

func (d *Dimension) textHeight() float64 {
	height := 2.5
	if d.Style != nil && d.Style.Scale > 0 {
		height *= d.Style.Scale
	}

	return height
}

// displayText 标注显示文字：手动覆盖优先，<> 占位符替换为实测值
func (d *Dimension) displayText() string {
	var (
		precision = 0
		value     = d.ActualMeasurement
	)

	if d.Style != nil {
		precision = d.Style.Precision
	}

	measured := strconv.FormatFloat(value, 'f', precision, 64)

	switch {
	case d.Text == "":
		return measured
	case strings.Contains(d.Text, "<>"):
		return strings.ReplaceAll(d.Text, "<>", measured)
	default:
		return d.Text
	}
}
