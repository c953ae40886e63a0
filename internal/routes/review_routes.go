package routes

import (
	"journey_compass/internal/controllers"
	"journey_compass/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ReviewRoutes nests review endpoints under their route.
func ReviewRoutes(r *gin.Engine) {
	public := r.Group("/routes")
	{
		public.GET("/:id/reviews", controllers.ListReviews)
	}

	authed := r.Group("/routes")
	authed.Use(middleware.RequireAuth())
	{
		authed.POST("/:id/reviews", controllers.CreateReview)
		authed.PUT("/:id/reviews/:reviewId", controllers.UpdateReview)
		authed.DELETE("/:id/reviews/:reviewId", controllers.DeleteReview)
	}
}
