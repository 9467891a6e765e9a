// ================== internal/features/courses/model.go ==================
package courses

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course difficulty levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Course lifecycle statuses.
const (
	StatusDraft       = "draft"
	StatusPublished   = "published"
	StatusUnpublished = "unpublished"
)

// Course represents a learning product owned by an instructor
// @Description Course with all its properties
type Course struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id" example:"507f1f77bcf86cd799439011"`
	Title           string             `bson:"title" json:"title" example:"Intro to Distributed Systems"`
	Description     string             `bson:"description" json:"description"`
	Category        string             `bson:"category" json:"category" example:"engineering"`
	Level           string             `bson:"level" json:"level" enums:"beginner,intermediate,advanced"`
	Price           float64            `bson:"price" json:"price" example:"49.99"`
	InstructorID    primitive.ObjectID `bson:"instructorId" json:"instructorId"`
	Status          string             `bson:"status" json:"status" enums:"draft,published,unpublished"`
	Duration        float64            `bson:"duration,omitempty" json:"duration,omitempty" example:"12.5"`
	Rating          float64            `bson:"rating" json:"rating" example:"4.7"`
	EnrollmentCount int64              `bson:"enrollmentCount" json:"enrollmentCount" example:"130"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=200"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Level       string   `json:"level" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Duration    float64  `json:"duration" binding:"omitempty,gt=0"`
}

// UpdateCourseRequest represents course update data. The owning instructor
// is not part of the patch surface; ownership is immutable post-creation.
type UpdateCourseRequest struct {
	Title       string   `json:"title" binding:"omitempty,min=3,max=200"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Level       string   `json:"level"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Duration    *float64 `json:"duration" binding:"omitempty,gt=0"`
}

// UpdateStatusRequest represents a status transition
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListQuery represents the query parameters of the public course listing
type ListQuery struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Category  string `form:"category"`
	Level     string `form:"level"`
	Status    string `form:"status"`
	Search    string `form:"search"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

// InstructorSummary is the resolved owner embedded in a course detail
type InstructorSummary struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Bio            string             `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfilePicture string             `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
}

// SectionSummary is the section list embedded in a course detail
type SectionSummary struct {
	ID                primitive.ObjectID `bson:"_id" json:"id"`
	Title             string             `bson:"title" json:"title"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	LearningObjective string             `bson:"learningObjective,omitempty" json:"learningObjective,omitempty"`
	Order             int                `bson:"order" json:"order"`
}

// CourseDetail is the full course view with resolved relations
type CourseDetail struct {
	Course     *Course            `json:"course"`
	Instructor *InstructorSummary `json:"instructor,omitempty"`
	Sections   []SectionSummary   `json:"sections"`
}

// InstructorStats aggregates over the courses an instructor owns
type InstructorStats struct {
	TotalCourses       int64   `bson:"totalCourses" json:"totalCourses"`
	PublishedCourses   int64   `bson:"publishedCourses" json:"publishedCourses"`
	DraftCourses       int64   `bson:"draftCourses" json:"draftCourses"`
	UnpublishedCourses int64   `bson:"unpublishedCourses" json:"unpublishedCourses"`
	TotalEnrollments   int64   `bson:"totalEnrollments" json:"totalEnrollments"`
	AverageRating      float64 `bson:"averageRating" json:"averageRating"`
	TotalRevenue       float64 `bson:"totalRevenue" json:"totalRevenue"`
}

// ListMeta is the pagination block of course list responses
type ListMeta struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalCourses int64 `json:"totalCourses"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}
