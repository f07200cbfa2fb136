package model

// Vehicle 载具模型
type Vehicle struct {
	ID           int64  `gorm:"column:vehicle_id;primaryKey;autoIncrement;comment:载具标识" json:"vehicle_id"`
	VehicleName  string `gorm:"size:25;not null;uniqueIndex:uq_vehicles_vehicle_name;comment:载具名称" json:"vehicle_name"`
	Passengers   int    `gorm:"not null;comment:载客量" json:"passengers"`
	LoadCapacity int    `gorm:"not null;comment:载重" json:"load_capacity"`
	Armament     string `gorm:"size:50;not null;comment:武器配置" json:"armament"`
	Length       int    `gorm:"not null;comment:长度" json:"length"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) EntityKind() string   { return KindVehicle }
func (v *Vehicle) EntityID() int64      { return v.ID }
func (v *Vehicle) SetEntityID(id int64) { v.ID = id }
func (v *Vehicle) UniqueName() string   { return v.VehicleName }
