package artist

import (
	"errors"
	"net/http"

	"sonata/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.POST("/artist-application", h.Apply)
}

// Apply accepts a new artist application and notifies the administrator.
func (h *Handler) Apply(c *gin.Context) {
	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	_, sent, err := h.service.Apply(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyApplied) {
			response.Error(c, http.StatusBadRequest, "EMAIL_ALREADY_APPLIED", "An application already exists for this email")
			return
		}
		response.Error(c, http.StatusInternalServerError, "APPLICATION_FAILED", "Failed to submit application")
		return
	}

	message := "Application received! We will get back to you soon."
	if !sent {
		message = "Application received, but the notification email could not be sent."
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":    message,
		"email_sent": sent,
	})
}
