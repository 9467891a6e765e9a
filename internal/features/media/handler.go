// ================== internal/features/media/handler.go ==================
package media

import (
	"github.com/gin-gonic/gin"

	"github.com/debanjo31/uLearnApi/internal/pkg/cloudinary"
	"github.com/debanjo31/uLearnApi/internal/pkg/logger"
	"github.com/debanjo31/uLearnApi/internal/pkg/response"
)

type Handler struct {
	uploads *cloudinary.Service
}

func NewHandler(uploads *cloudinary.Service) *Handler {
	return &Handler{uploads: uploads}
}

// UploadResponse is the asset descriptor returned after an upload
type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Format   string `json:"format"`
	FileSize int64  `json:"fileSize"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// Upload godoc
// @Summary Upload an image or video asset
// @Description Multipart form with a "file" part and a "type" field of image or video
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Asset to upload"
// @Param type formData string false "image (default) or video"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 503 {object} response.APIResponse
// @Router /media/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	if h.uploads == nil {
		response.Error(c, 503, "Media uploads are not configured")
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "A file part is required")
		return
	}

	mediaType := c.PostForm("type")
	if mediaType == "" {
		mediaType = "image"
	}

	switch mediaType {
	case "image":
		if err := cloudinary.ValidateImageFile(header); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	case "video":
		if err := cloudinary.ValidateVideoFile(header); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	default:
		response.BadRequest(c, "type must be image or video")
		return
	}

	file, err := header.Open()
	if err != nil {
		response.InternalServerError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	var result *cloudinary.UploadResult
	if mediaType == "video" {
		result, err = h.uploads.UploadVideo(c.Request.Context(), file, header.Filename)
	} else {
		result, err = h.uploads.UploadImage(c.Request.Context(), file, header.Filename)
	}
	if err != nil {
		logger.Error("media upload failed: %v", err)
		response.InternalServerError(c, "Failed to upload file")
		return
	}

	response.Created(c, UploadResponse{
		URL:      result.URL,
		PublicID: result.PublicID,
		Format:   result.Format,
		FileSize: result.FileSize,
		Width:    result.Width,
		Height:   result.Height,
	}, "File uploaded successfully")
}
