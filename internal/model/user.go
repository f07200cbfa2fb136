package model

// User 用户模型，只做软删除（is_active=false）
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	UserName string `gorm:"size:50;not null;uniqueIndex:uq_users_user_name;comment:用户名" json:"user_name"`
	Email    string `gorm:"size:120;not null;uniqueIndex:uq_users_email;comment:邮箱" json:"email"`
	Password string `gorm:"size:80;not null;comment:密码" json:"-"` // json:"-" 序列化时忽略密码
	IsActive bool   `gorm:"not null;comment:激活标识" json:"is_active"`

	// 关联关系
	FavoritePlanets    []FavoritePlanet    `gorm:"foreignKey:UserID" json:"-"`
	FavoriteCharacters []FavoriteCharacter `gorm:"foreignKey:UserID" json:"-"`
	FavoriteVehicles   []FavoriteVehicle   `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
