package routes

import (
	"journey_compass/internal/controllers"
	"journey_compass/internal/middleware"

	"github.com/gin-gonic/gin"
)

func PointRoutes(r *gin.Engine) {
	pois := r.Group("/pois")
	{
		pois.GET("", controllers.ListPoints)
		pois.GET("/:id", controllers.GetPoint)
	}

	authed := r.Group("/pois")
	authed.Use(middleware.RequireAuth())
	{
		authed.POST("", controllers.CreatePoint)
	}
}
