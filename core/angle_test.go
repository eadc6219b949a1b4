package core

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{Tau, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{3 * Tau, 0},
		{math.Pi, math.Pi},
	}

	for _, c := range cases {
		if got := NormalizeAngle(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("NormalizeAngle(%v) = %v, 期望 %v", c.in, got, c.want)
		}
	}
}

func TestGetDrawAngles(t *testing.T) {
	const epsilon = 1e-9

	// +Z 拉伸：角度原样透传
	up := GetDrawAngles(0, math.Pi/2, ZAxis)
	if math.Abs(up.Start-0) > epsilon || math.Abs(up.End-math.Pi/2) > epsilon {
		t.Errorf("+Z 起止角不符: %+v", up)
	}

	// -Z 拉伸：对象角 θ 对应世界角 π-θ，交换起止保持逆时针
	down := GetDrawAngles(0, math.Pi/2, NegZAxis)
	if math.Abs(down.Start-math.Pi/2) > epsilon || math.Abs(down.End-math.Pi) > epsilon {
		t.Errorf("-Z 起止角不符: %+v", down)
	}

	// 绘制端点必须落在实体的真实世界端点上
	var (
		ocs       = NewOCS(NegZAxis)
		wantStart = ocs.ToWCS(Point{X: 1}) // 对象角 0
		wantEnd   = ocs.ToWCS(Point{Y: 1}) // 对象角 π/2
		drawFirst = Point{X: math.Cos(down.Start), Y: math.Sin(down.Start)}
		drawLast  = Point{X: math.Cos(down.End), Y: math.Sin(down.End)}
	)
	if !drawFirst.IsClose(wantEnd, epsilon) || !drawLast.IsClose(wantStart, epsilon) {
		t.Errorf("-Z 绘制端点不符: %+v %+v, 期望 %+v %+v", drawFirst, drawLast, wantEnd, wantStart)
	}

	// 零值拉伸按 +Z 处理
	zero := GetDrawAngles(1, 2, Point{})
	if zero != (DrawAngles{Start: 1, End: 2}) {
		t.Errorf("零值拉伸起止角不符: %+v", zero)
	}
}

func TestGetDrawAngles_FullCircle(t *testing.T) {
	// 整圆 (0, 2π) 不归一化，跨度保持 2π，与零跨度弧可区分
	full := GetDrawAngles(0, Tau, ZAxis)
	if full.End-full.Start != Tau {
		t.Errorf("+Z 整圆跨度不符: %+v", full)
	}

	down := GetDrawAngles(0, Tau, NegZAxis)
	if math.Abs(down.End-down.Start-Tau) > 1e-9 {
		t.Errorf("-Z 整圆跨度不符: %+v", down)
	}
}

func TestGetEllipseDrawAngles(t *testing.T) {
	const epsilon = 1e-9

	// +Z 拉伸：参数角原样透传
	up := GetEllipseDrawAngles(0, math.Pi/2, ZAxis)
	if math.Abs(up.Start-0) > epsilon || math.Abs(up.End-math.Pi/2) > epsilon {
		t.Errorf("+Z 参数角不符: %+v", up)
	}

	// -Z 拉伸只翻转短轴方向，参数 t 的真实点为 (a·cos t, -b·sin t)，
	// 即绘制角 -t，交换起止保持逆时针
	down := GetEllipseDrawAngles(0, math.Pi/2, NegZAxis)
	if math.Abs(down.Start-3*math.Pi/2) > epsilon || math.Abs(down.End-Tau) > epsilon {
		t.Errorf("-Z 参数角不符: %+v", down)
	}
}

func TestGetDrawAngles_SpatialPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("倾斜拉伸方向应当 panic")
		}
	}()

	GetDrawAngles(0, 1, Point{X: 1, Y: 1, Z: 1})
}

func TestIsSpatial(t *testing.T) {
	if IsSpatial(ZAxis) || IsSpatial(NegZAxis) || IsSpatial(Point{}) {
		t.Error("±Z 与零向量不应判定为倾斜")
	}
	if !IsSpatial(Point{X: 1, Z: 1}) {
		t.Error("倾斜法向量判定失败")
	}
}

func TestLinspace(t *testing.T) {
	values := Linspace(0, 1, 5)
	if len(values) != 5 {
		t.Fatalf("采样数不符: %d", len(values))
	}
	if values[0] != 0 || values[4] != 1 {
		t.Errorf("端点不精确: %v", values)
	}
	if math.Abs(values[2]-0.5) > 1e-12 {
		t.Errorf("中点不符: %v", values[2])
	}

	// num 不足时至少取 2 个
	if got := Linspace(3, 7, 0); len(got) != 2 || got[0] != 3 || got[1] != 7 {
		t.Errorf("最小采样数处理不符: %v", got)
	}
}
