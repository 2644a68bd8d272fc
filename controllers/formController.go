package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/ChatAT/initializers"
	"github.com/ChatAT/models"
	"github.com/ChatAT/services"
)

// bindSubmission decodes the request body into dest. Missing,
// non-parseable, null, and empty-object payloads all count as no data.
func bindSubmission(c *gin.Context, dest any) bool {
	var payload map[string]any
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil || len(payload) == 0 {
		return false
	}
	return c.ShouldBindBodyWith(dest, binding.JSON) == nil
}

func SubmitPrayerRequest(c *gin.Context) {
	var submission models.PrayerRequestSubmission

	if !bindSubmission(c, &submission) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	requestText := strings.TrimSpace(submission.Request)
	if requestText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prayer request text is required"})
		return
	}

	name := strings.TrimSpace(submission.Name)
	email := strings.TrimSpace(submission.Email)

	if !submission.IsAnonymous {
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required for non-anonymous requests"})
			return
		}
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required for non-anonymous requests"})
			return
		}
		if !validateEmail(email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
			return
		}
	}

	category := sanitizeInput(submission.Category)
	if category == "" {
		category = "general"
	}

	language := submission.Language
	if language == "" {
		language = "en"
	}

	prayerRequest := models.PrayerRequest{
		Request:      sanitizeInput(requestText),
		Category:     category,
		Is_Anonymous: submission.IsAnonymous,
		Language:     language,
	}

	// Supplied name/email are discarded for anonymous submissions.
	if !submission.IsAnonymous {
		sanitizedName := sanitizeInput(name)
		prayerRequest.Name = &sanitizedName
		prayerRequest.Email = &email
	}

	insert := initializers.DB.Insert("prayer_request").Rows(prayerRequest).Returning("id")

	var insertedID int
	if _, err := insert.Executor().ScanVal(&insertedID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	prayerRequest.ID = insertedID
	prayerRequest.Created_At = time.Now().UTC()

	emailSent := false
	if emailService := services.GetEmailService(); emailService != nil {
		emailSent = emailService.SendPrayerRequestNotification(prayerRequest)
	} else {
		log.Println("Email service not initialized; skipping prayer request notification")
	}

	response := gin.H{
		"success": true,
		"message": "Prayer request submitted successfully",
		"id":      insertedID,
	}
	if !emailSent {
		response["warning"] = "Prayer request saved but email notification failed"
	}

	c.JSON(http.StatusCreated, response)
}

func SubmitContact(c *gin.Context) {
	var submission models.ContactSubmissionCreate

	if !bindSubmission(c, &submission) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	name := strings.TrimSpace(submission.Name)
	email := strings.TrimSpace(submission.Email)
	subject := strings.TrimSpace(submission.Subject)
	message := strings.TrimSpace(submission.Message)

	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}
	if !validateEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}
	if subject == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subject is required"})
		return
	}
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	language := submission.Language
	if language == "" {
		language = "en"
	}

	contactSubmission := models.ContactSubmission{
		Name:     sanitizeInput(name),
		Email:    email,
		Subject:  sanitizeInput(subject),
		Message:  sanitizeInput(message),
		Language: language,
	}

	insert := initializers.DB.Insert("contact_submission").Rows(contactSubmission).Returning("id")

	var insertedID int
	if _, err := insert.Executor().ScanVal(&insertedID); err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	contactSubmission.ID = insertedID
	contactSubmission.Created_At = time.Now().UTC()

	emailSent := false
	if emailService := services.GetEmailService(); emailService != nil {
		emailSent = emailService.SendContactNotification(contactSubmission)
	} else {
		log.Println("Email service not initialized; skipping contact notification")
	}

	response := gin.H{
		"success": true,
		"message": "Contact form submitted successfully",
		"id":      insertedID,
	}
	if !emailSent {
		response["warning"] = "Contact form saved but email notification failed"
	}

	c.JSON(http.StatusCreated, response)
}
