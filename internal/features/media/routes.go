// ================== internal/features/media/routes.go ==================
package media

import (
	"github.com/gin-gonic/gin"

	"github.com/debanjo31/uLearnApi/internal/config"
	"github.com/debanjo31/uLearnApi/internal/features/auth"
	"github.com/debanjo31/uLearnApi/internal/middleware"
	"github.com/debanjo31/uLearnApi/internal/pkg/cloudinary"
	"github.com/debanjo31/uLearnApi/internal/pkg/logger"
)

// RegisterRoutes registers the media routes. Uploads stay registered but
// answer 503 when Cloudinary credentials are absent.
func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	uploads, err := cloudinary.NewService(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		"ulearn",
	)
	if err != nil {
		logger.Warn("cloudinary not configured, uploads disabled: %v", err)
	}

	handler := NewHandler(uploads)

	authenticated := middleware.Auth(cfg.JWTSecret)
	instructorOnly := middleware.RequireRoles(auth.RoleInstructor, auth.RoleAdmin)

	mediaGroup := router.Group("/media")
	{
		mediaGroup.POST("/upload", authenticated, instructorOnly, handler.Upload)
	}
}
