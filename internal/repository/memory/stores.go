package memory

import (
	"context"

	"starwars-api/internal/model"
)

// Stores 一组互相关联的内存存储，目录实体删除时级联清理收藏
type Stores struct {
	Users              *UserStore
	Planets            *CatalogStore[model.Planet, *model.Planet]
	Characters         *CatalogStore[model.Character, *model.Character]
	Vehicles           *CatalogStore[model.Vehicle, *model.Vehicle]
	FavoritePlanets    *LinkStore[model.FavoritePlanet, *model.FavoritePlanet]
	FavoriteCharacters *LinkStore[model.FavoriteCharacter, *model.FavoriteCharacter]
	FavoriteVehicles   *LinkStore[model.FavoriteVehicle, *model.FavoriteVehicle]
}

func NewStores() *Stores {
	s := &Stores{
		Users:      NewUserStore(),
		Planets:    NewCatalogStore[model.Planet, *model.Planet](),
		Characters: NewCatalogStore[model.Character, *model.Character](),
		Vehicles:   NewCatalogStore[model.Vehicle, *model.Vehicle](),
	}

	s.FavoritePlanets = NewLinkStore[model.FavoritePlanet, *model.FavoritePlanet](
		func(userID, targetID int64) *model.FavoritePlanet {
			return &model.FavoritePlanet{UserID: userID, PlanetID: targetID}
		},
		func(ctx context.Context, l *model.FavoritePlanet) error {
			p, err := s.Planets.GetByID(ctx, l.PlanetID)
			if err != nil {
				return err
			}
			l.Planet = *p
			return nil
		},
	)
	s.FavoriteCharacters = NewLinkStore[model.FavoriteCharacter, *model.FavoriteCharacter](
		func(userID, targetID int64) *model.FavoriteCharacter {
			return &model.FavoriteCharacter{UserID: userID, CharacterID: targetID}
		},
		func(ctx context.Context, l *model.FavoriteCharacter) error {
			c, err := s.Characters.GetByID(ctx, l.CharacterID)
			if err != nil {
				return err
			}
			l.Character = *c
			return nil
		},
	)
	s.FavoriteVehicles = NewLinkStore[model.FavoriteVehicle, *model.FavoriteVehicle](
		func(userID, targetID int64) *model.FavoriteVehicle {
			return &model.FavoriteVehicle{UserID: userID, VehicleID: targetID}
		},
		func(ctx context.Context, l *model.FavoriteVehicle) error {
			v, err := s.Vehicles.GetByID(ctx, l.VehicleID)
			if err != nil {
				return err
			}
			l.Vehicle = *v
			return nil
		},
	)

	s.Planets.OnDelete(s.FavoritePlanets.DeleteByTarget)
	s.Characters.OnDelete(s.FavoriteCharacters.DeleteByTarget)
	s.Vehicles.OnDelete(s.FavoriteVehicles.DeleteByTarget)
	return s
}
