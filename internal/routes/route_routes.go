package routes

import (
	"journey_compass/internal/controllers"
	"journey_compass/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RouteRoutes(r *gin.Engine) {
	public := r.Group("/routes")
	public.Use(middleware.OptionalAuth())
	{
		public.GET("", controllers.ListRoutes)
		public.GET("/:id", controllers.GetRoute)
	}

	authed := r.Group("/routes")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/recommended", controllers.RecommendedRoutes)
		authed.POST("", controllers.CreateRoute)
		authed.PUT("/:id", controllers.UpdateRoute)
		authed.DELETE("/:id", controllers.DeleteRoute)
		authed.POST("/:id/share", controllers.CreateShareLink)
	}
}
