// ================== internal/features/content/model.go ==================
package content

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Module content types.
const (
	TypeVideo      = "video"
	TypeVideoSlide = "video_slide"
	TypeArticle    = "article"
	TypeQuiz       = "quiz"
	TypeAssignment = "assignment"
)

// Section is an ordered grouping of modules within a course. No two
// sections of the same course share an order.
type Section struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID          primitive.ObjectID `bson:"courseId" json:"courseId"`
	Title             string             `bson:"title" json:"title" example:"Getting Started"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	LearningObjective string             `bson:"learningObjective,omitempty" json:"learningObjective,omitempty"`
	Order             int                `bson:"order" json:"order" example:"1"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Module is an ordered atomic content unit within a section. No two
// modules of the same section share an order.
type Module struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SectionID primitive.ObjectID `bson:"sectionId" json:"sectionId"`
	Title     string             `bson:"title" json:"title" example:"What is a goroutine?"`
	Type      string             `bson:"type" json:"type" enums:"video,video_slide,article,quiz,assignment"`
	Content   string             `bson:"content" json:"content"`
	Order     int                `bson:"order" json:"order" example:"1"`
	Duration  float64            `bson:"duration,omitempty" json:"duration,omitempty" example:"8.5"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateSectionRequest represents section creation data
type CreateSectionRequest struct {
	Title             string `json:"title" binding:"required,min=3,max=200"`
	Description       string `json:"description"`
	LearningObjective string `json:"learningObjective"`
	Order             *int   `json:"order" binding:"required,gt=0"`
}

// UpdateSectionRequest represents a section patch
type UpdateSectionRequest struct {
	Title             string `json:"title" binding:"omitempty,min=3,max=200"`
	Description       string `json:"description"`
	LearningObjective string `json:"learningObjective"`
	Order             *int   `json:"order" binding:"omitempty,gt=0"`
}

// CreateModuleRequest represents module creation data
type CreateModuleRequest struct {
	Title    string  `json:"title" binding:"required,min=3,max=200"`
	Type     string  `json:"type" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	Order    *int    `json:"order" binding:"required,gt=0"`
	Duration float64 `json:"duration" binding:"omitempty,gt=0"`
}

// UpdateModuleRequest represents a module patch
type UpdateModuleRequest struct {
	Title    string   `json:"title" binding:"omitempty,min=3,max=200"`
	Type     string   `json:"type"`
	Content  string   `json:"content"`
	Order    *int     `json:"order" binding:"omitempty,gt=0"`
	Duration *float64 `json:"duration" binding:"omitempty,gt=0"`
}

// SectionOrder is one entry of a section reorder batch
type SectionOrder struct {
	SectionID string `json:"sectionId" binding:"required"`
	Order     int    `json:"order" binding:"required,gt=0"`
}

// ReorderSectionsRequest carries the batch of new section positions
type ReorderSectionsRequest struct {
	SectionOrders []SectionOrder `json:"sectionOrders" binding:"required,min=1,dive"`
}

// ModuleOrder is one entry of a module reorder batch
type ModuleOrder struct {
	ModuleID string `json:"moduleId" binding:"required"`
	Order    int    `json:"order" binding:"required,gt=0"`
}

// ReorderModulesRequest carries the batch of new module positions
type ReorderModulesRequest struct {
	ModuleOrders []ModuleOrder `json:"moduleOrders" binding:"required,min=1,dive"`
}
