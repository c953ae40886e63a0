package routes

import (
	"journey_compass/internal/controllers"

	"github.com/gin-gonic/gin"
)

func CategoryRoutes(r *gin.Engine) {
	r.GET("/categories", controllers.ListCategories)
}
