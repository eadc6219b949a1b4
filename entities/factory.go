package entities

// EntityFactory 定义了如何创建一个带默认值的实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, factory EntityFactory) {
	registry[typeName] = factory
}

// New 根据实体名称生产对应的结构体
// 未注册的名称视为不支持的实体，以 TagStorage 形式保留
func New(typeName string) Entity {
	if factory, ok := registry[typeName]; ok {
		return factory()
	}

	return &TagStorage{BaseEntity: BaseEntity{TypeName: typeName}}
}

// Supported 判断实体类型是否已注册
func Supported(typeName string) bool {
	_, ok := registry[typeName]
	return ok
}
