// ================== internal/features/courses/routes.go ==================
package courses

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/debanjo31/uLearnApi/internal/config"
	"github.com/debanjo31/uLearnApi/internal/features/auth"
	"github.com/debanjo31/uLearnApi/internal/middleware"
)

// RegisterRoutes registers the course routes and initializes dependencies
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	authenticated := middleware.Auth(cfg.JWTSecret)
	instructorOnly := middleware.RequireRoles(auth.RoleInstructor, auth.RoleAdmin)

	coursesGroup := router.Group("/courses")
	{
		coursesGroup.GET("", handler.List)

		// Static routes registered before /:id so gin matches them first
		coursesGroup.GET("/instructor", authenticated, instructorOnly, handler.ListMine)
		coursesGroup.GET("/stats", authenticated, instructorOnly, handler.Stats)

		coursesGroup.GET("/:id", handler.Get)

		coursesGroup.POST("", authenticated, instructorOnly, handler.Create)
		coursesGroup.PUT("/:id", authenticated, instructorOnly, handler.Update)
		coursesGroup.PATCH("/:id/status", authenticated, instructorOnly, handler.UpdateStatus)
		coursesGroup.DELETE("/:id", authenticated, instructorOnly, handler.Delete)
	}
}
