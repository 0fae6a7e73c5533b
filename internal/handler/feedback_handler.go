package handler

import (
	"net/http"

	"github.com/An2rei-84/skystore/internal/model"
	"github.com/An2rei-84/skystore/internal/validate"
	"github.com/An2rei-84/skystore/pkg/database"
	"github.com/An2rei-84/skystore/pkg/logger"
	"github.com/An2rei-84/skystore/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// FeedbackRequest defines the structure for feedback form submissions
type FeedbackRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// CreateFeedback stores a feedback message. Publicly accessible;
// feedback records are write-once and never updated or deleted.
func CreateFeedback(c echo.Context) error {
	log := logger.FromContext(c)

	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if err := validate.FeedbackInput(req.Name, req.Phone, req.Message); err != nil {
		log.Warn("Feedback validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	feedback := model.Feedback{
		Name:    req.Name,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if result := database.GetDB().Create(&feedback); result.Error != nil {
		log.Error("Failed to store feedback", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to store feedback"})
	}

	prometheus.FeedbackReceivedCounter.Inc()
	log.Info("Feedback received", zap.String("name", feedback.Name))
	return c.JSON(http.StatusCreated, echo.Map{"message": "Thank you for your feedback"})
}

// GetContacts returns the company contact information
func GetContacts(c echo.Context) error {
	log := logger.FromContext(c)

	var contact model.Contact
	result := database.GetDB().First(&contact)
	if result.Error != nil {
		log.Warn("Contact info not found", zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Contact information is not available"})
	}

	return c.JSON(http.StatusOK, contact)
}
