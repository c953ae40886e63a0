package routes

import (
	"journey_compass/internal/controllers"

	"github.com/gin-gonic/gin"
)

// ShareRoutes resolves share codes; creating a link lives under /routes.
func ShareRoutes(r *gin.Engine) {
	r.GET("/share/:code", controllers.ResolveShareLink)
}
