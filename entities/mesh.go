package entities

import "github.com/zooyer/dxfdraw/core"

// Mesh 网格实体
type Mesh struct {
	BaseEntity
	Vertices []core.Point
	Faces    [][]int
}

func init() {
	Register("MESH", func() Entity { return &Mesh{BaseEntity: BaseEntity{TypeName: "MESH"}} })
}

// MeshBuilder 构造面/顶点结构
func (m *Mesh) MeshBuilder() *core.MeshBuilder {
	builder := core.NewMeshBuilder()
	builder.Vertices = append(builder.Vertices, m.Vertices...)
	for _, face := range m.Faces {
		builder.AddIndexedFace(face...)
	}

	return builder
}
