package model

import "time"

// FavoritePlanet 用户收藏星球
type FavoritePlanet struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:收藏记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_planet_favorite;index:idx_favorite_planets_user_id;comment:用户ID" json:"-"`
	PlanetID  int64     `gorm:"not null;uniqueIndex:uq_user_planet_favorite;comment:星球ID" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:收藏时间" json:"-"`

	// 关联关系，序列化时展开目标星球
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Planet Planet `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE" json:"planet"`
}

func (FavoritePlanet) TableName() string {
	return "favorite_planets"
}

func (f *FavoritePlanet) LinkID() int64      { return f.ID }
func (f *FavoritePlanet) SetLinkID(id int64) { f.ID = id }
func (f *FavoritePlanet) OwnerID() int64     { return f.UserID }
func (f *FavoritePlanet) TargetID() int64    { return f.PlanetID }

// FavoriteCharacter 用户收藏角色
type FavoriteCharacter struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:收藏记录ID" json:"id"`
	UserID      int64     `gorm:"not null;uniqueIndex:uq_user_character_favorite;index:idx_favorite_characters_user_id;comment:用户ID" json:"-"`
	CharacterID int64     `gorm:"not null;uniqueIndex:uq_user_character_favorite;comment:角色ID" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime;comment:收藏时间" json:"-"`

	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Character Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"character"`
}

func (FavoriteCharacter) TableName() string {
	return "favorite_characters"
}

func (f *FavoriteCharacter) LinkID() int64      { return f.ID }
func (f *FavoriteCharacter) SetLinkID(id int64) { f.ID = id }
func (f *FavoriteCharacter) OwnerID() int64     { return f.UserID }
func (f *FavoriteCharacter) TargetID() int64    { return f.CharacterID }

// FavoriteVehicle 用户收藏载具
type FavoriteVehicle struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:收藏记录ID" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_user_vehicle_favorite;index:idx_favorite_vehicles_user_id;comment:用户ID" json:"-"`
	VehicleID int64     `gorm:"not null;uniqueIndex:uq_user_vehicle_favorite;comment:载具ID" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:收藏时间" json:"-"`

	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Vehicle Vehicle `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"vehicle"`
}

func (FavoriteVehicle) TableName() string {
	return "favorite_vehicles"
}

func (f *FavoriteVehicle) LinkID() int64      { return f.ID }
func (f *FavoriteVehicle) SetLinkID(id int64) { f.ID = id }
func (f *FavoriteVehicle) OwnerID() int64     { return f.UserID }
func (f *FavoriteVehicle) TargetID() int64    { return f.VehicleID }
