// ================== internal/features/auth/routes.go ==================
package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/debanjo31/uLearnApi/internal/config"
	"github.com/debanjo31/uLearnApi/internal/middleware"
	"github.com/debanjo31/uLearnApi/internal/pkg/ratelimit"
	"github.com/debanjo31/uLearnApi/internal/pkg/token"
)

// RegisterRoutes registers the auth routes and initializes dependencies
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)

	tokenCfg := token.DefaultConfig(cfg.JWTSecret)
	tokenCfg.AccessExpiry = cfg.JWTAccessExpiry
	tokenCfg.RefreshExpiry = cfg.JWTRefreshExpiry

	handler := NewHandler(repo, tokenCfg)

	// Credential endpoints are rate limited per IP to slow brute force
	credentialLimiter := ratelimit.New(10, time.Minute)

	auth := router.Group("/auth")
	{
		auth.POST("/register/student", ratelimit.Middleware(credentialLimiter), handler.RegisterStudent)
		auth.POST("/register/instructor", ratelimit.Middleware(credentialLimiter), handler.RegisterInstructor)
		auth.POST("/login", ratelimit.Middleware(credentialLimiter), handler.Login)
		auth.POST("/refresh-token", handler.Refresh)
		auth.POST("/logout", handler.Logout)

		auth.GET("/profile", middleware.Auth(cfg.JWTSecret), handler.GetProfile)
		auth.PUT("/profile", middleware.Auth(cfg.JWTSecret), handler.UpdateProfile)
		auth.PUT("/password", middleware.Auth(cfg.JWTSecret), handler.ChangePassword)
	}
}
