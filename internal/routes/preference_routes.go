package routes

import (
	"journey_compass/internal/controllers"
	"journey_compass/internal/middleware"

	"github.com/gin-gonic/gin"
)

func PreferenceRoutes(r *gin.Engine) {
	prefs := r.Group("/preferences")
	prefs.Use(middleware.RequireAuth())
	{
		prefs.GET("", controllers.GetPreferences)
		prefs.PUT("", controllers.UpdatePreferences)
	}
}
