// ================== internal/features/auth/handler.go ==================
package auth

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/debanjo31/uLearnApi/internal/pkg/response"
	"github.com/debanjo31/uLearnApi/internal/pkg/token"
)

type Handler struct {
	repo     *Repository
	tokenCfg *token.Config
}

func NewHandler(repo *Repository, tokenCfg *token.Config) *Handler {
	return &Handler{
		repo:     repo,
		tokenCfg: tokenCfg,
	}
}

// RegisterStudent godoc
// @Summary Register a new student account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /auth/register/student [post]
func (h *Handler) RegisterStudent(c *gin.Context) {
	h.register(c, RoleStudent)
}

// RegisterInstructor godoc
// @Summary Register a new instructor account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /auth/register/instructor [post]
func (h *Handler) RegisterInstructor(c *gin.Context) {
	h.register(c, RoleInstructor)
}

func (h *Handler) register(c *gin.Context, role string) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateRegister(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	user := &User{
		Email:    NormalizeEmail(req.Email),
		Password: string(hashedPassword),
		Name:     req.Name,
		Role:     role,
		Bio:      req.Bio,
	}

	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		response.FromError(c, err, "Email already registered")
		return
	}

	accessToken, refreshToken, err := token.GeneratePair(user.ID.Hex(), user.Email, user.Role, h.tokenCfg)
	if err != nil {
		response.InternalServerError(c, "Failed to generate tokens")
		return
	}

	response.Created(c, AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "Account registered successfully")
}

// Login godoc
// @Summary Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	user, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.InternalServerError(c, "Something went wrong")
		return
	}

	// Unknown email and wrong password share one message so accounts
	// cannot be enumerated.
	if user == nil {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid email or password")
		return
	}

	accessToken, refreshToken, err := token.GeneratePair(user.ID.Hex(), user.Email, user.Role, h.tokenCfg)
	if err != nil {
		response.InternalServerError(c, "Failed to generate tokens")
		return
	}

	response.Success(c, AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "Logged in successfully")
}

// Refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/refresh-token [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	claims, err := token.ValidateToken(req.RefreshToken, h.tokenCfg.Secret)
	if err != nil {
		response.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	// The account must still exist for the refresh to succeed.
	user, err := h.repo.FindByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	accessToken, refreshToken, err := token.GeneratePair(user.ID.Hex(), user.Email, user.Role, h.tokenCfg)
	if err != nil {
		response.InternalServerError(c, "Failed to generate tokens")
		return
	}

	response.Success(c, AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, "Token refreshed successfully")
}

// Logout godoc
// @Summary Log out
// @Description Tokens are stateless; clients discard them on logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	response.Success(c, nil, "Logged out successfully")
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /auth/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.repo.FindByID(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err, "User not found")
		return
	}

	response.Success(c, user, "Profile retrieved successfully")
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("userID")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateProfilePicture(req.ProfilePicture); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updates := bson.M{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Bio != "" {
		updates["bio"] = req.Bio
	}
	if req.ProfilePicture != "" {
		updates["profilePicture"] = req.ProfilePicture
	}

	if len(updates) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	if err := h.repo.UpdateProfile(c.Request.Context(), userID, updates); err != nil {
		response.FromError(c, err, "Failed to update profile")
		return
	}

	user, err := h.repo.FindByID(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve updated profile")
		return
	}

	response.Success(c, user, "Profile updated successfully")
}

// ChangePassword godoc
// @Summary Replace the authenticated user's password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/password [put]
func (h *Handler) ChangePassword(c *gin.Context) {
	userID := c.GetString("userID")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateChangePassword(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.repo.FindByID(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err, "User not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		response.BadRequest(c, "Current password is incorrect")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	if err := h.repo.UpdatePassword(c.Request.Context(), userID, string(hashedPassword)); err != nil {
		response.FromError(c, err, "Failed to update password")
		return
	}

	response.Success(c, nil, "Password updated successfully")
}
