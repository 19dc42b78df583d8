package handlers

import (
	"net/http"

	"mojamalca-api/config"
	"mojamalca-api/mailer"
	"mojamalca-api/middleware"
	"mojamalca-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Mail is the transactional email client, wired in main and swapped for
// a fake in tests.
var Mail *mailer.Client

// ListDeliveryMenu returns the public storefront items
func ListDeliveryMenu(c *gin.Context) {
	var items []models.DeliveryMenuItem
	query := config.DB
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	query.Order("category asc, name asc").Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Contact forwards the marketing site's contact form to the email
// provider. Missing fields are a 400, a missing provider key or a
// provider failure is a 500.
func Contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	if Mail == nil || Mail.APIKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email provider is not configured"})
		return
	}

	err := Mail.Send(
		config.App.ContactFrom,
		[]string{config.App.ContactTo},
		"New inquiry from the website contact form",
		mailer.ContactHTML(req.Name, req.Company, req.Email, req.Message),
	)
	if err != nil {
		middleware.RequestLogger(c).Error("contact email failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
