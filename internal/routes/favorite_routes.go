package routes

import (
	"journey_compass/internal/controllers"
	"journey_compass/internal/middleware"

	"github.com/gin-gonic/gin"
)

func FavoriteRoutes(r *gin.Engine) {
	fav := r.Group("/favorites")
	fav.Use(middleware.RequireAuth())
	{
		fav.GET("", controllers.ListFavorites)
		fav.POST("/:routeId/toggle", controllers.ToggleFavorite)
	}
}
