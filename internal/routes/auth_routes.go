package routes

import (
	"journey_compass/internal/controllers"
	"journey_compass/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", controllers.SignupUser)
		auth.POST("/login", controllers.LoginUser)
	}

	me := r.Group("/auth")
	me.Use(middleware.RequireAuth())
	{
		me.GET("/me", controllers.Me)
		me.PUT("/profile", controllers.UpdateProfile)
		me.PUT("/password", controllers.ChangePassword)
	}
}
