// ================== internal/features/courses/handler.go ==================
package courses

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/debanjo31/uLearnApi/internal/pkg/pagination"
	"github.com/debanjo31/uLearnApi/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// fetchOwnedCourse loads the course and enforces that the actor owns it.
// It writes the error response itself and returns nil when the caller
// should bail out.
func (h *Handler) fetchOwnedCourse(c *gin.Context, courseID string) *Course {
	course, err := h.repo.GetByID(c.Request.Context(), courseID)
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

// Create godoc
// @Summary Create a new course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCourseRequest true "Course data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Router /courses [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreate(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	instructorID, err := primitive.ObjectIDFromHex(c.GetString("userID"))
	if err != nil {
		response.Unauthorized(c, "Invalid actor identity")
		return
	}

	course := &Course{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Level:        req.Level,
		Price:        *req.Price,
		Duration:     req.Duration,
		InstructorID: instructorID,
		Status:       StatusDraft,
	}

	if err := h.repo.Create(c.Request.Context(), course); err != nil {
		response.InternalServerError(c, "Failed to create course")
		return
	}

	response.Created(c, course, "Course created successfully")
}

// List godoc
// @Summary List published courses
// @Description Filter, search, sort and paginate the course catalogue
// @Tags courses
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Param category query string false "Category filter"
// @Param level query string false "Level filter"
// @Param status query string false "Status filter (defaults to published)"
// @Param search query string false "Full-text search over title and description"
// @Param sortBy query string false "Sort field" Enums(createdAt, title, price, rating, enrollmentCount)
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} response.APIResponse
// @Router /courses [get]
func (h *Handler) List(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	if query.Level != "" && !IsValidLevel(query.Level) {
		response.BadRequest(c, "level must be one of beginner, intermediate or advanced")
		return
	}
	if query.Status != "" && !IsValidStatus(query.Status) {
		response.BadRequest(c, "status must be one of draft, published or unpublished")
		return
	}

	page := pagination.New(query.Page, query.Limit, 0)

	listed, total, err := h.repo.List(c.Request.Context(), ListOptions{
		Category:  query.Category,
		Level:     query.Level,
		Status:    query.Status,
		Search:    query.Search,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
		Offset:    page.GetOffset(),
		Limit:     page.GetLimit(),
	})
	if err != nil {
		response.InternalServerError(c, "Failed to list courses")
		return
	}

	meta := pagination.New(page.CurrentPage, page.Limit, total)
	response.Paginated(c, listed, ListMeta{
		CurrentPage:  meta.CurrentPage,
		TotalPages:   meta.TotalPages,
		TotalCourses: meta.TotalItems,
		HasNextPage:  meta.HasNextPage,
		HasPrevPage:  meta.HasPrevPage,
	}, "Courses retrieved successfully")
}

// ListMine godoc
// @Summary List the authenticated instructor's courses in every status
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Router /courses/instructor [get]
func (h *Handler) ListMine(c *gin.Context) {
	instructorID, err := primitive.ObjectIDFromHex(c.GetString("userID"))
	if err != nil {
		response.Unauthorized(c, "Invalid actor identity")
		return
	}

	pageReq := pagination.FromRequest(c.Query("page"), c.Query("limit"))
	page := pagination.New(pageReq.Page, pageReq.Limit, 0)

	listed, total, err := h.repo.ListByInstructor(c.Request.Context(), instructorID, page.GetOffset(), page.GetLimit())
	if err != nil {
		response.InternalServerError(c, "Failed to list courses")
		return
	}

	meta := pagination.New(page.CurrentPage, page.Limit, total)
	response.Paginated(c, listed, ListMeta{
		CurrentPage:  meta.CurrentPage,
		TotalPages:   meta.TotalPages,
		TotalCourses: meta.TotalItems,
		HasNextPage:  meta.HasNextPage,
		HasPrevPage:  meta.HasPrevPage,
	}, "Courses retrieved successfully")
}

// Stats godoc
// @Summary Aggregate stats over the authenticated instructor's courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Router /courses/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	instructorID, err := primitive.ObjectIDFromHex(c.GetString("userID"))
	if err != nil {
		response.Unauthorized(c, "Invalid actor identity")
		return
	}

	stats, err := h.repo.InstructorStats(c.Request.Context(), instructorID)
	if err != nil {
		response.InternalServerError(c, "Failed to aggregate stats")
		return
	}

	response.Success(c, stats, "Stats retrieved successfully")
}

// Get godoc
// @Summary Get a course with its instructor and section list
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /courses/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	course, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err, "Course not found")
		return
	}

	instructor, err := h.repo.ResolveInstructor(c.Request.Context(), course.InstructorID)
	if err != nil {
		response.InternalServerError(c, "Failed to resolve instructor")
		return
	}

	sections, err := h.repo.GetCourseSections(c.Request.Context(), course.ID)
	if err != nil {
		response.InternalServerError(c, "Failed to load sections")
		return
	}

	response.Success(c, CourseDetail{
		Course:     course,
		Instructor: instructor,
		Sections:   sections,
	}, "Course retrieved successfully")
}

// Update godoc
// @Summary Update a course the actor owns
// @Description The owning instructor cannot be changed by this operation
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body UpdateCourseRequest true "Course patch"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /courses/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdate(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	course := h.fetchOwnedCourse(c, c.Param("id"))
	if course == nil {
		return
	}

	// Build the patch from the typed request; instructorId never makes it
	// into the update document.
	updates := bson.M{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Level != "" {
		updates["level"] = req.Level
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}

	if len(updates) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	if err := h.repo.Update(c.Request.Context(), course.ID, updates); err != nil {
		response.FromError(c, err, "Failed to update course")
		return
	}

	updated, err := h.repo.GetByID(c.Request.Context(), course.ID.Hex())
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve updated course")
		return
	}

	response.Success(c, updated, "Course updated successfully")
}

// UpdateStatus godoc
// @Summary Transition a course between draft, published and unpublished
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /courses/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if !IsValidStatus(req.Status) {
		response.BadRequest(c, "status must be one of draft, published or unpublished")
		return
	}

	course := h.fetchOwnedCourse(c, c.Param("id"))
	if course == nil {
		return
	}

	if err := h.repo.Update(c.Request.Context(), course.ID, bson.M{"status": req.Status}); err != nil {
		response.FromError(c, err, "Failed to update course status")
		return
	}

	course.Status = req.Status
	response.Success(c, course, "Course status updated successfully")
}

// Delete godoc
// @Summary Delete a course the actor owns
// @Description Rejected while the course has active enrollments
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /courses/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	course := h.fetchOwnedCourse(c, c.Param("id"))
	if course == nil {
		return
	}

	if course.EnrollmentCount > 0 {
		response.Conflict(c, "Cannot delete a course with active enrollments")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), course.ID); err != nil {
		response.FromError(c, err, "Failed to delete course")
		return
	}

	response.Success(c, nil, "Course deleted successfully")
}
