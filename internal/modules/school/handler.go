package school

import (
	"errors"
	"net/http"
	"strconv"

	"schooldirectory/internal/blob"
	"schooldirectory/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/schools
func (h *Handler) List(c *gin.Context) {
	schools, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("error fetching schools")
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, schools)
}

// Create handles POST /api/schools (multipart form)
func (h *Handler) Create(c *gin.Context) {
	var sub SchoolSubmission
	_ = c.ShouldBind(&sub)

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	created, err := h.service.Create(c.Request.Context(), sub, image)
	if err != nil {
		switch {
		case errors.Is(err, ErrFieldsRequired):
			response.Error(c, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, blob.ErrFileTooLarge):
			response.Error(c, http.StatusBadRequest, "File too large. Maximum size is 5MB.")
		case errors.Is(err, blob.ErrNotImage):
			response.Error(c, http.StatusBadRequest, "Only image files are allowed!")
		default:
			log.Error().Err(err).Msg("error inserting school")
			response.Error(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusCreated, CreateResponse{
		Message: "School added successfully",
		ID:      created.ID,
		Image:   created.Image,
	})
}

// GetByID handles GET /api/schools/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "School not found")
		return
	}

	school, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "School not found")
			return
		}
		log.Error().Err(err).Int64("id", id).Msg("error fetching school")
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, school)
}

// Delete handles DELETE /api/schools/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "School not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "School not found")
			return
		}
		log.Error().Err(err).Int64("id", id).Msg("error deleting school")
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}

	response.Message(c, http.StatusOK, "School deleted successfully")
}

// RegisterRoutes registers all school routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	schools := r.Group("/schools")
	{
		schools.GET("", h.List)
		schools.POST("", h.Create)
		schools.GET("/:id", h.GetByID)
		schools.DELETE("/:id", h.Delete)
	}
}
