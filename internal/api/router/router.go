package router

import (
	"starwars-api/internal/api/handler"
	"starwars-api/internal/model"
	"starwars-api/internal/service"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(r *gin.Engine, services *service.Services) {
	userHandler := handler.NewUserHandler(services.Users)

	// --- 用户模块 ---
	users := r.Group("/user")
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
		users.GET("/:id/favorites", userHandler.GetFavorites)
	}

	// --- 目录模块 ---
	registerCatalog(r.Group("/"+model.KindPlanet), handler.NewCatalogHandler(services.Planets))
	registerCatalog(r.Group("/"+model.KindCharacter), handler.NewCatalogHandler(services.Characters))
	registerCatalog(r.Group("/"+model.KindVehicle), handler.NewCatalogHandler(services.Vehicles))

	// --- 收藏模块 ---
	favorites := r.Group("/favorite")
	{
		registerFavorite(favorites.Group("/"+model.KindPlanet), handler.NewFavoriteHandler(services.FavoritePlanets))
		registerFavorite(favorites.Group("/"+model.KindCharacter), handler.NewFavoriteHandler(services.FavoriteCharacters))
		registerFavorite(favorites.Group("/"+model.KindVehicle), handler.NewFavoriteHandler(services.FavoriteVehicles))
	}

	r.NoRoute(handler.NotFound)
}

type catalogRoutes interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func registerCatalog(g *gin.RouterGroup, h catalogRoutes) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

type favoriteRoutes interface {
	Add(c *gin.Context)
	Remove(c *gin.Context)
}

func registerFavorite(g *gin.RouterGroup, h favoriteRoutes) {
	g.POST("/:target_id/:user_id", h.Add)
	g.DELETE("/:target_id/:user_id", h.Remove)
}
