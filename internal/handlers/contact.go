package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omaratef3221/omaratef3221.github.io/internal/models"
	"github.com/omaratef3221/omaratef3221.github.io/internal/services"
	"github.com/omaratef3221/omaratef3221.github.io/pkg/logger"
)

const (
	contactSuccessMessage = "Your message has been sent successfully! I will get back to you soon."
	contactFailureMessage = "An error occurred while sending your message. Please try again."
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if _, err := h.contactService.Submit(c.Request.Context(), &msg); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   verr.Message,
			})
			return
		}

		logger.WithError(err).Error("Failed to process contact form")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   contactFailureMessage,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": contactSuccessMessage,
	})
}
