package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

// SetupRouter registers recovery and request logging, then every route group.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	RouteRoutes(r)
	ReviewRoutes(r)
	FavoriteRoutes(r)
	CategoryRoutes(r)
	PointRoutes(r)
	PreferenceRoutes(r)
	ShareRoutes(r)

	return r
}
