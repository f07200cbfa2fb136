package model

// Planet 星球模型
type Planet struct {
	ID             int64  `gorm:"column:planet_id;primaryKey;autoIncrement;comment:星球标识" json:"planet_id"`
	PlanetName     string `gorm:"size:25;not null;uniqueIndex:uq_planets_planet_name;comment:星球名称" json:"planet_name"`
	Diameter       int    `gorm:"not null;comment:直径" json:"diameter"`
	RotationPeriod int    `gorm:"not null;comment:自转周期" json:"rotation_period"`
	OrbitalPeriod  int    `gorm:"not null;comment:公转周期" json:"orbital_period"`
	Climate        string `gorm:"size:25;not null;comment:气候" json:"climate"`
}

func (Planet) TableName() string {
	return "planets"
}

func (p *Planet) EntityKind() string   { return KindPlanet }
func (p *Planet) EntityID() int64      { return p.ID }
func (p *Planet) SetEntityID(id int64) { p.ID = id }
func (p *Planet) UniqueName() string   { return p.PlanetName }
