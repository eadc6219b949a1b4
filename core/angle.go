package core

import "math"

// Tau 一个完整圆周的弧度
const Tau = 2 * math.Pi

// NormalizeAngle 将角度归一化到 [0, 2π)
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, Tau)
	if angle < 0 {
		angle += Tau
	}

	return angle
}

// Radians 角度转弧度（DXF 中圆弧角度以角度制存储）
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees 弧度转角度
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// DrawAngles 绘制用起止角（弧度，世界坐标系下逆时针）
// 不做归一化，整圆保持 2π 跨度，与零跨度的退化弧可区分
type DrawAngles struct {
	Start, End float64
}

// GetDrawAngles 根据拉伸方向推导圆/弧的绘制起止角
// 圆弧角度在对象坐标系内度量，-Z 拉伸下对象 X 轴映射为世界 (-1,0,0)，
// 对象角 θ 对应世界角 π-θ，交换起止顺序保证绘制方向仍为逆时针。
// 拉伸方向倾斜出平面属于调度错误，直接 panic。
func GetDrawAngles(start, end float64, extrusion Point) DrawAngles {
	switch {
	case extrusion.IsClose(ZAxis, 1e-9) || extrusion == (Point{}):
		return DrawAngles{Start: start, End: end}
	case extrusion.IsClose(NegZAxis, 1e-9):
		return DrawAngles{Start: math.Pi - end, End: math.Pi - start}
	default:
		panic("dxfdraw: 倾斜拉伸方向不能推导平面绘制角")
	}
}

// GetEllipseDrawAngles 椭圆参数角的绘制起止角
// 参数角相对世界坐标长轴度量且绕拉伸方向逆时针，
// -Z 拉伸只翻转短轴方向，参数 t 对应世界绘制角 -t
func GetEllipseDrawAngles(start, end float64, extrusion Point) DrawAngles {
	switch {
	case extrusion.IsClose(ZAxis, 1e-9) || extrusion == (Point{}):
		return DrawAngles{Start: start, End: end}
	case extrusion.IsClose(NegZAxis, 1e-9):
		return DrawAngles{Start: Tau - end, End: Tau - start}
	default:
		panic("dxfdraw: 倾斜拉伸方向不能推导平面绘制角")
	}
}

// IsSpatial 判断拉伸方向是否倾斜出绘图平面（既非 +Z 也非 -Z）
func IsSpatial(extrusion Point) bool {
	if extrusion == (Point{}) {
		return false
	}

	return !extrusion.IsClose(ZAxis, 1e-9) && !extrusion.IsClose(NegZAxis, 1e-9)
}

// Linspace 在 [start, end] 上均匀取 num 个参数值，num 至少为 2
func Linspace(start, end float64, num int) []float64 {
	if num < 2 {
		num = 2
	}

	var (
		values = make([]float64, num)
		step   = (end - start) / float64(num-1)
	)

	for i := range values {
		values[i] = start + step*float64(i)
	}
	values[num-1] = end

	return values
}
