package dto

import "starwars-api/internal/model"

// PlanetInput 星球创建/更新请求体
type PlanetInput struct {
	PlanetName     *string `json:"planet_name" validate:"omitempty,max=25"`
	Diameter       *int    `json:"diameter" validate:"omitempty,gte=0,lte=2147483647"`
	RotationPeriod *int    `json:"rotation_period" validate:"omitempty,gte=0,lte=2147483647"`
	OrbitalPeriod  *int    `json:"orbital_period" validate:"omitempty,gte=0,lte=2147483647"`
	Climate        *string `json:"climate" validate:"omitempty,max=25"`
}

func (in *PlanetInput) Columns() map[string]any {
	cols := make(map[string]any, 5)
	putString(cols, "planet_name", in.PlanetName)
	putInt(cols, "diameter", in.Diameter)
	putInt(cols, "rotation_period", in.RotationPeriod)
	putInt(cols, "orbital_period", in.OrbitalPeriod)
	putString(cols, "climate", in.Climate)
	return cols
}

func (in *PlanetInput) Apply(p *model.Planet) {
	setString(&p.PlanetName, in.PlanetName)
	setInt(&p.Diameter, in.Diameter)
	setInt(&p.RotationPeriod, in.RotationPeriod)
	setInt(&p.OrbitalPeriod, in.OrbitalPeriod)
	setString(&p.Climate, in.Climate)
}

// CharacterInput 角色创建/更新请求体
type CharacterInput struct {
	CharacterName *string `json:"character_name" validate:"omitempty,max=25"`
	SkinColor     *string `json:"skin_color" validate:"omitempty,max=25"`
	HairColor     *string `json:"hair_color" validate:"omitempty,max=25"`
	Gender        *string `json:"gender" validate:"omitempty,max=25"`
	Age           *int    `json:"age" validate:"omitempty,gte=0,lte=2147483647"`
}

func (in *CharacterInput) Columns() map[string]any {
	cols := make(map[string]any, 5)
	putString(cols, "character_name", in.CharacterName)
	putString(cols, "skin_color", in.SkinColor)
	putString(cols, "hair_color", in.HairColor)
	putString(cols, "gender", in.Gender)
	putInt(cols, "age", in.Age)
	return cols
}

func (in *CharacterInput) Apply(c *model.Character) {
	setString(&c.CharacterName, in.CharacterName)
	setString(&c.SkinColor, in.SkinColor)
	setString(&c.HairColor, in.HairColor)
	setString(&c.Gender, in.Gender)
	setInt(&c.Age, in.Age)
}

// VehicleInput 载具创建/更新请求体
type VehicleInput struct {
	VehicleName  *string `json:"vehicle_name" validate:"omitempty,max=25"`
	Passengers   *int    `json:"passengers" validate:"omitempty,gte=0,lte=2147483647"`
	LoadCapacity *int    `json:"load_capacity" validate:"omitempty,gte=0,lte=2147483647"`
	Armament     *string `json:"armament" validate:"omitempty,max=50"`
	Length       *int    `json:"length" validate:"omitempty,gte=0,lte=2147483647"`
}

func (in *VehicleInput) Columns() map[string]any {
	cols := make(map[string]any, 5)
	putString(cols, "vehicle_name", in.VehicleName)
	putInt(cols, "passengers", in.Passengers)
	putInt(cols, "load_capacity", in.LoadCapacity)
	putString(cols, "armament", in.Armament)
	putInt(cols, "length", in.Length)
	return cols
}

func (in *VehicleInput) Apply(v *model.Vehicle) {
	setString(&v.VehicleName, in.VehicleName)
	setInt(&v.Passengers, in.Passengers)
	setInt(&v.LoadCapacity, in.LoadCapacity)
	setString(&v.Armament, in.Armament)
	setInt(&v.Length, in.Length)
}

func putString(cols map[string]any, key string, v *string) {
	if v != nil {
		cols[key] = *v
	}
}

func putInt(cols map[string]any, key string, v *int) {
	if v != nil {
		cols[key] = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
