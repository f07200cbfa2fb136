package app

import (
	"starwars-api/internal/repository"
	"starwars-api/internal/repository/memory"
	"starwars-api/internal/service"

	"gorm.io/gorm"
)

// GormStores 基于 PostgreSQL 的存储
func GormStores(db *gorm.DB) service.Stores {
	return service.Stores{
		Users:              repository.NewUserRepository(db),
		Planets:            repository.NewPlanetRepository(db),
		Characters:         repository.NewCharacterRepository(db),
		Vehicles:           repository.NewVehicleRepository(db),
		FavoritePlanets:    repository.NewFavoritePlanetRepository(db),
		FavoriteCharacters: repository.NewFavoriteCharacterRepository(db),
		FavoriteVehicles:   repository.NewFavoriteVehicleRepository(db),
	}
}

// MemoryStores 进程内存储，数据随进程退出丢失
func MemoryStores() service.Stores {
	m := memory.NewStores()
	return service.Stores{
		Users:              m.Users,
		Planets:            m.Planets,
		Characters:         m.Characters,
		Vehicles:           m.Vehicles,
		FavoritePlanets:    m.FavoritePlanets,
		FavoriteCharacters: m.FavoriteCharacters,
		FavoriteVehicles:   m.FavoriteVehicles,
	}
}
