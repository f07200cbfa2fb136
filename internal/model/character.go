package model

// Character 角色模型
type Character struct {
	ID            int64  `gorm:"column:character_id;primaryKey;autoIncrement;comment:角色标识" json:"character_id"`
	CharacterName string `gorm:"size:25;not null;uniqueIndex:uq_characters_character_name;comment:角色名称" json:"character_name"`
	SkinColor     string `gorm:"size:25;not null;comment:肤色" json:"skin_color"`
	HairColor     string `gorm:"size:25;not null;comment:发色" json:"hair_color"`
	Gender        string `gorm:"size:25;not null;comment:性别" json:"gender"`
	Age           int    `gorm:"not null;comment:年龄" json:"age"`
}

func (Character) TableName() string {
	return "characters"
}

func (c *Character) EntityKind() string   { return KindCharacter }
func (c *Character) EntityID() int64      { return c.ID }
func (c *Character) SetEntityID(id int64) { c.ID = id }
func (c *Character) UniqueName() string   { return c.CharacterName }
