// ================== internal/features/content/routes.go ==================
package content

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/debanjo31/uLearnApi/internal/config"
	"github.com/debanjo31/uLearnApi/internal/features/auth"
	"github.com/debanjo31/uLearnApi/internal/middleware"
)

// RegisterRoutes registers the content hierarchy routes and initializes
// dependencies
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	authenticated := middleware.Auth(cfg.JWTSecret)
	instructorOnly := middleware.RequireRoles(auth.RoleInstructor, auth.RoleAdmin)

	contentGroup := router.Group("/content")
	{
		// Sections, scoped to their course
		contentGroup.POST("/:courseId/sections", authenticated, instructorOnly, handler.CreateSection)
		contentGroup.GET("/:courseId/sections", handler.GetSections)
		contentGroup.POST("/:courseId/sections/reorder", authenticated, instructorOnly, handler.ReorderSections)
		contentGroup.GET("/:courseId/sections/:sectionId", handler.GetSection)
		contentGroup.PUT("/:courseId/sections/:sectionId", authenticated, instructorOnly, handler.UpdateSection)
		contentGroup.DELETE("/:courseId/sections/:sectionId", authenticated, instructorOnly, handler.DeleteSection)

		// Modules, scoped to their section; ownership is resolved by
		// walking section to course
		contentGroup.POST("/sections/:sectionId/modules", authenticated, instructorOnly, handler.CreateModule)
		contentGroup.GET("/sections/:sectionId/modules", handler.GetModules)
		contentGroup.POST("/sections/:sectionId/modules/reorder", authenticated, instructorOnly, handler.ReorderModules)
		contentGroup.GET("/sections/:sectionId/modules/:moduleId", handler.GetModule)
		contentGroup.PUT("/sections/:sectionId/modules/:moduleId", authenticated, instructorOnly, handler.UpdateModule)
		contentGroup.DELETE("/sections/:sectionId/modules/:moduleId", authenticated, instructorOnly, handler.DeleteModule)
	}
}
