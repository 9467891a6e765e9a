// ================== internal/features/content/handler.go ==================
package content

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/debanjo31/uLearnApi/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// fetchOwnedCourse resolves the course and enforces that the actor owns
// it. It writes the error response itself and returns nil when the
// caller should bail out.
func (h *Handler) fetchOwnedCourse(c *gin.Context, courseID string) *CourseRef {
	course, err := h.repo.GetCourseRef(c.Request.Context(), courseID)
	if err != nil {
		response.FromError(c, err, "Course not found")
		return nil
	}

	if course.InstructorID.Hex() != c.GetString("userID") {
		response.Forbidden(c, "You do not own this course")
		return nil
	}

	return course
}

// fetchOwnedSection resolves the section, walks up to its course and
// enforces ownership there. Module mutations go through this.
func (h *Handler) fetchOwnedSection(c *gin.Context, sectionID string) *Section {
	section, err := h.repo.GetSectionByID(c.Request.Context(), sectionID)
	if err != nil {
		response.FromError(c, err, "Section not found")
		return nil
	}

	course, err := h.repo.GetCourseRef(c.Request.Context(), section.CourseID.Hex())
	if err != nil {
		response.FromError(c, err, "Course not found")
		return nil
	}

	if course.InstructorID.Hex() != c.GetString("userID") {
		response.Forbidden(c, "You do not own this course")
		return nil
	}

	return section
}

// ---------------------------------------------------------------- sections

// CreateSection godoc
// @Summary Add a section to a course
// @Description Sibling orders are unique per course; a taken order is rejected, never shifted
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param request body CreateSectionRequest true "Section data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /content/{courseId}/sections [post]
func (h *Handler) CreateSection(c *gin.Context) {
	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	course := h.fetchOwnedCourse(c, c.Param("courseId"))
	if course == nil {
		return
	}

	section := &Section{
		CourseID:          course.ID,
		Title:             req.Title,
		Description:       req.Description,
		LearningObjective: req.LearningObjective,
		Order:             *req.Order,
	}

	if err := h.repo.CreateSection(c.Request.Context(), section); err != nil {
		response.FromError(c, err, "A section with that order already exists")
		return
	}

	response.Created(c, section, "Section created successfully")
}

// GetSections godoc
// @Summary List a course's sections sorted by order
// @Tags content
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /content/{courseId}/sections [get]
func (h *Handler) GetSections(c *gin.Context) {
	course, err := h.repo.GetCourseRef(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		response.FromError(c, err, "Course not found")
		return
	}

	sections, err := h.repo.GetSections(c.Request.Context(), course.ID)
	if err != nil {
		response.InternalServerError(c, "Failed to load sections")
		return
	}

	response.Success(c, sections, "Sections retrieved successfully")
}

// GetSection godoc
// @Summary Get one section of a course
// @Tags content
// @Produce json
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /content/{courseId}/sections/{sectionId} [get]
func (h *Handler) GetSection(c *gin.Context) {
	course, err := h.repo.GetCourseRef(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		response.FromError(c, err, "Course not found")
		return
	}

	section, err := h.repo.GetSection(c.Request.Context(), course.ID, c.Param("sectionId"))
	if err != nil {
		response.FromError(c, err, "Section not found")
		return
	}

	response.Success(c, section, "Section retrieved successfully")
}

// UpdateSection godoc
// @Summary Update a section of a course the actor owns
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Param request body UpdateSectionRequest true "Section patch"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /content/{courseId}/sections/{sectionId} [put]
func (h *Handler) UpdateSection(c *gin.Context) {
	var req UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	course := h.fetchOwnedCourse(c, c.Param("courseId"))
	if course == nil {
		return
	}

	updates := bson.M{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.LearningObjective != "" {
		updates["learningObjective"] = req.LearningObjective
	}
	if req.Order != nil {
		updates["order"] = *req.Order
	}

	if len(updates) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	section, err := h.repo.UpdateSection(c.Request.Context(), course.ID, c.Param("sectionId"), updates)
	if err != nil {
		response.FromError(c, err, "Failed to update section")
		return
	}

	response.Success(c, section, "Section updated successfully")
}

// DeleteSection godoc
// @Summary Delete a section and all its modules
// @Description The section and its modules go in one transaction
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param sectionId path string true "Section ID"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /content/{courseId}/sections/{sectionId} [delete]
func (h *Handler) DeleteSection(c *gin.Context) {
	course := h.fetchOwnedCourse(c, c.Param("courseId"))
	if course == nil {
		return
	}

	if err := h.repo.DeleteSectionCascade(c.Request.Context(), course.ID, c.Param("sectionId")); err != nil {
		response.FromError(c, err, "Failed to delete section")
		return
	}

	response.Success(c, nil, "Section and its modules deleted successfully")
}

// ReorderSections godoc
// @Summary Reorder a course's sections in one batch
// @Description All-or-nothing: every id must belong to the course and the resulting orders must be unique
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param request body ReorderSectionsRequest true "New section positions"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /content/{courseId}/sections/reorder [post]
func (h *Handler) ReorderSections(c *gin.Context) {
	var req ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateReorderSections(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	course := h.fetchOwnedCourse(c, c.Param("courseId"))
	if course == nil {
		return
	}

	sections, err := h.repo.ReorderSections(c.Request.Context(), course.ID, req.SectionOrders)
	if err != nil {
		response.FromError(c, err, "Failed to reorder sections")
		return
	}

	response.Success(c, sections, "Sections reordered successfully")
}

// ---------------------------------------------------------------- modules

// CreateModule godoc
// @Summary Add a module to a section
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sectionId path string true "Section ID"
// @Param request body CreateModuleRequest true "Module data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /content/sections/{sectionId}/modules [post]
func (h *Handler) CreateModule(c *gin.Context) {
	var req CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateModule(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	section := h.fetchOwnedSection(c, c.Param("sectionId"))
	if section == nil {
		return
	}

	module := &Module{
		SectionID: section.ID,
		Title:     req.Title,
		Type:      req.Type,
		Content:   req.Content,
		Order:     *req.Order,
		Duration:  req.Duration,
	}

	if err := h.repo.CreateModule(c.Request.Context(), module); err != nil {
		response.FromError(c, err, "A module with that order already exists")
		return
	}

	response.Created(c, module, "Module created successfully")
}

// GetModules godoc
// @Summary List a section's modules sorted by order
// @Tags content
// @Produce json
// @Param sectionId path string true "Section ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /content/sections/{sectionId}/modules [get]
func (h *Handler) GetModules(c *gin.Context) {
	section, err := h.repo.GetSectionByID(c.Request.Context(), c.Param("sectionId"))
	if err != nil {
		response.FromError(c, err, "Section not found")
		return
	}

	modules, err := h.repo.GetModules(c.Request.Context(), section.ID)
	if err != nil {
		response.InternalServerError(c, "Failed to load modules")
		return
	}

	response.Success(c, modules, "Modules retrieved successfully")
}

// GetModule godoc
// @Summary Get one module of a section
// @Tags content
// @Produce json
// @Param sectionId path string true "Section ID"
// @Param moduleId path string true "Module ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /content/sections/{sectionId}/modules/{moduleId} [get]
func (h *Handler) GetModule(c *gin.Context) {
	section, err := h.repo.GetSectionByID(c.Request.Context(), c.Param("sectionId"))
	if err != nil {
		response.FromError(c, err, "Section not found")
		return
	}

	module, err := h.repo.GetModule(c.Request.Context(), section.ID, c.Param("moduleId"))
	if err != nil {
		response.FromError(c, err, "Module not found")
		return
	}

	response.Success(c, module, "Module retrieved successfully")
}

// UpdateModule godoc
// @Summary Update a module of a section the actor owns
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sectionId path string true "Section ID"
// @Param moduleId path string true "Module ID"
// @Param request body UpdateModuleRequest true "Module patch"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /content/sections/{sectionId}/modules/{moduleId} [put]
func (h *Handler) UpdateModule(c *gin.Context) {
	var req UpdateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdateModule(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	section := h.fetchOwnedSection(c, c.Param("sectionId"))
	if section == nil {
		return
	}

	updates := bson.M{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Type != "" {
		updates["type"] = req.Type
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.Order != nil {
		updates["order"] = *req.Order
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}

	if len(updates) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	module, err := h.repo.UpdateModule(c.Request.Context(), section.ID, c.Param("moduleId"), updates)
	if err != nil {
		response.FromError(c, err, "Failed to update module")
		return
	}

	response.Success(c, module, "Module updated successfully")
}

// DeleteModule godoc
// @Summary Delete a module from a section the actor owns
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param sectionId path string true "Section ID"
// @Param moduleId path string true "Module ID"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /content/sections/{sectionId}/modules/{moduleId} [delete]
func (h *Handler) DeleteModule(c *gin.Context) {
	section := h.fetchOwnedSection(c, c.Param("sectionId"))
	if section == nil {
		return
	}

	if err := h.repo.DeleteModule(c.Request.Context(), section.ID, c.Param("moduleId")); err != nil {
		response.FromError(c, err, "Failed to delete module")
		return
	}

	response.Success(c, nil, "Module deleted successfully")
}

// ReorderModules godoc
// @Summary Reorder a section's modules in one batch
// @Description All-or-nothing: every id must belong to the section and the resulting orders must be unique
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sectionId path string true "Section ID"
// @Param request body ReorderModulesRequest true "New module positions"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /content/sections/{sectionId}/modules/reorder [post]
func (h *Handler) ReorderModules(c *gin.Context) {
	var req ReorderModulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateReorderModules(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	section := h.fetchOwnedSection(c, c.Param("sectionId"))
	if section == nil {
		return
	}

	modules, err := h.repo.ReorderModules(c.Request.Context(), section.ID, req.ModuleOrders)
	if err != nil {
		response.FromError(c, err, "Failed to reorder modules")
		return
	}

	response.Success(c, modules, "Modules reordered successfully")
}
