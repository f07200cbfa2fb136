package service

import "starwars-api/internal/model"

// Stores 服务层依赖的全部存储
type Stores struct {
	Users              UserStore
	Planets            CatalogStore[model.Planet]
	Characters         CatalogStore[model.Character]
	Vehicles           CatalogStore[model.Vehicle]
	FavoritePlanets    LinkStore[model.FavoritePlanet]
	FavoriteCharacters LinkStore[model.FavoriteCharacter]
	FavoriteVehicles   LinkStore[model.FavoriteVehicle]
}

// Services 按 Repository -> Service 组装好的服务集合
type Services struct {
	Users              *UserService
	Planets            *CatalogService[model.Planet, *model.Planet]
	Characters         *CatalogService[model.Character, *model.Character]
	Vehicles           *CatalogService[model.Vehicle, *model.Vehicle]
	FavoritePlanets    *FavoriteService[model.FavoritePlanet]
	FavoriteCharacters *FavoriteService[model.FavoriteCharacter]
	FavoriteVehicles   *FavoriteService[model.FavoriteVehicle]
}

func NewServices(stores Stores, cache Cache, events EventPublisher) *Services {
	return &Services{
		Users: NewUserService(stores.Users, FavoriteLists{
			Planets:    stores.FavoritePlanets,
			Characters: stores.FavoriteCharacters,
			Vehicles:   stores.FavoriteVehicles,
		}),
		Planets:            NewPlanetService(stores.Planets, cache, events),
		Characters:         NewCharacterService(stores.Characters, cache, events),
		Vehicles:           NewVehicleService(stores.Vehicles, cache, events),
		FavoritePlanets:    NewFavoriteService(stores.Users, stores.Planets, stores.FavoritePlanets, model.KindPlanet),
		FavoriteCharacters: NewFavoriteService(stores.Users, stores.Characters, stores.FavoriteCharacters, model.KindCharacter),
		FavoriteVehicles:   NewFavoriteService(stores.Users, stores.Vehicles, stores.FavoriteVehicles, model.KindVehicle),
	}
}
