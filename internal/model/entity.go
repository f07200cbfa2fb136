package model

// 目录实体种类
const (
	KindPlanet    = "planet"
	KindCharacter = "character"
	KindVehicle   = "vehicle"
)

// Entity 目录实体（星球、角色、载具）的公共行为
type Entity interface {
	EntityKind() string
	EntityID() int64
	SetEntityID(id int64)
	// UniqueName 返回唯一名称字段的值
	UniqueName() string
}

// EntityPtr 约束 *T 实现 Entity，供泛型仓储和服务使用
type EntityPtr[T any] interface {
	*T
	Entity
}

// Link 收藏关联行的公共行为
type Link interface {
	LinkID() int64
	SetLinkID(id int64)
	OwnerID() int64
	TargetID() int64
}

// LinkPtr 约束 *L 实现 Link
type LinkPtr[L any] interface {
	*L
	Link
}

var kindLabels = map[string]string{
	KindPlanet:    "Planet",
	KindCharacter: "Character",
	KindVehicle:   "Vehicle",
}

// KindLabel 返回面向客户端提示信息中的实体名，如 Planet
func KindLabel(kind string) string {
	if label, ok := kindLabels[kind]; ok {
		return label
	}
	return kind
}
