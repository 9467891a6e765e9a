package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/debanjo31/uLearnApi/internal/config"
	"github.com/debanjo31/uLearnApi/internal/features/auth"
	"github.com/debanjo31/uLearnApi/internal/features/content"
	"github.com/debanjo31/uLearnApi/internal/features/courses"
	"github.com/debanjo31/uLearnApi/internal/features/media"
)

// SetupRoutes wires every feature under the /api group
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	api := router.Group("/api")

	auth.RegisterRoutes(api, db, cfg)
	courses.RegisterRoutes(api, db, cfg)
	content.RegisterRoutes(api, db, cfg)
	media.RegisterRoutes(api, cfg)
}
