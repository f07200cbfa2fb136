package dto

import "starwars-api/internal/model"

// UserFavoritesData 用户收藏汇总，每条收藏展开为目标实体
type UserFavoritesData struct {
	FavoritePlanets    []model.FavoritePlanet    `json:"favorite_planets"`
	FavoriteCharacters []model.FavoriteCharacter `json:"favorite_characters"`
	FavoriteVehicles   []model.FavoriteVehicle   `json:"favorite_vehicles"`
	UserData           *model.User               `json:"user_data"`
}
