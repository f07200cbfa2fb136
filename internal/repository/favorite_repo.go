package repository

import (
	"context"

	"starwars-api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LinkRepository 用户收藏关联表的通用仓储
type LinkRepository[L any] struct {
	db           *gorm.DB
	targetColumn string
	preload      string
	newLink      func(userID, targetID int64) *L
}

func NewLinkRepository[L any](db *gorm.DB, targetColumn, preload string, newLink func(userID, targetID int64) *L) *LinkRepository[L] {
	return &LinkRepository[L]{db: db, targetColumn: targetColumn, preload: preload, newLink: newLink}
}

func NewFavoritePlanetRepository(db *gorm.DB) *LinkRepository[model.FavoritePlanet] {
	return NewLinkRepository(db, "planet_id", "Planet", func(userID, targetID int64) *model.FavoritePlanet {
		return &model.FavoritePlanet{UserID: userID, PlanetID: targetID}
	})
}

func NewFavoriteCharacterRepository(db *gorm.DB) *LinkRepository[model.FavoriteCharacter] {
	return NewLinkRepository(db, "character_id", "Character", func(userID, targetID int64) *model.FavoriteCharacter {
		return &model.FavoriteCharacter{UserID: userID, CharacterID: targetID}
	})
}

func NewFavoriteVehicleRepository(db *gorm.DB) *LinkRepository[model.FavoriteVehicle] {
	return NewLinkRepository(db, "vehicle_id", "Vehicle", func(userID, targetID int64) *model.FavoriteVehicle {
		return &model.FavoriteVehicle{UserID: userID, VehicleID: targetID}
	})
}

func (r *LinkRepository[L]) Exists(ctx context.Context, userID, targetID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(L)).
		Where("user_id = ? AND "+r.targetColumn+" = ?", userID, targetID).Count(&count).Error
	return count > 0, err
}

func (r *LinkRepository[L]) Create(ctx context.Context, userID, targetID int64) (*L, error) {
	link := r.newLink(userID, targetID)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(link).Error; err != nil {
		return nil, translate(err)
	}
	return link, nil
}

func (r *LinkRepository[L]) Delete(ctx context.Context, userID, targetID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND "+r.targetColumn+" = ?", userID, targetID).Delete(new(L))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListByUser 获取用户的收藏列表，目标实体随结果一起加载
func (r *LinkRepository[L]) ListByUser(ctx context.Context, userID int64) ([]L, error) {
	links := make([]L, 0)
	err := r.db.WithContext(ctx).Preload(r.preload).
		Where("user_id = ?", userID).Order("id").Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}
