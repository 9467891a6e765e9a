package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user can hold.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// User represents a registered user in the system
// @Description Registered user account
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	Email          string             `bson:"email" json:"email" example:"ada@example.com"`
	Password       string             `bson:"password" json:"-"`
	Name           string             `bson:"name" json:"name" example:"Ada Lovelace"`
	Role           string             `bson:"role" json:"role" enums:"student,instructor,admin"`
	Bio            string             `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfilePicture string             `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RegisterRequest represents the payload for account registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required" example:"ada@example.com"`
	Password string `json:"password" binding:"required" example:"Sup3rSecret"`
	Name     string `json:"name" binding:"required" example:"Ada Lovelace"`
	Bio      string `json:"bio" binding:"omitempty,max=500"`
}

// LoginRequest represents the payload for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents the payload for refreshing a token pair
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest represents the payload for replacing a password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// UpdateProfileRequest represents the payload for updating the profile
type UpdateProfileRequest struct {
	Name           string `json:"name" binding:"omitempty,min=2,max=100"`
	Bio            string `json:"bio" binding:"omitempty,max=500"`
	ProfilePicture string `json:"profilePicture" binding:"omitempty"`
}

// AuthResponse is returned after successful registration, login or refresh
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
