package controllers

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/ChatAT/initializers"
	"github.com/ChatAT/models"
	"github.com/doug-martin/goqu/v9"
	"golang.org/x/crypto/bcrypt"
)

// AdminLogin authenticates against the env-configured admin credential
// and issues a short-lived token for the listing endpoints.
func AdminLogin(c *gin.Context) {
	var login models.Login

	if err := c.ShouldBindJSON(&login); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPasswordHash := os.Getenv("ADMIN_PASSWORD_HASH")

	if adminUsername == "" || adminPasswordHash == "" {
		log.Println("ADMIN_USERNAME or ADMIN_PASSWORD_HASH not set")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin login is not configured"})
		return
	}

	if login.Username != adminUsername {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adminPasswordHash), []byte(login.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	generateToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": login.Username,
		"role":     "admin",
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	})

	token, err := generateToken.SignedString([]byte(os.Getenv("SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Admin logged in successfully.",
		"token":   token,
	})
}

func paginationParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if err != nil || perPage < 1 {
		perPage = 10
	}

	return page, perPage
}

func pageCount(total int64, perPage int) int64 {
	return (total + int64(perPage) - 1) / int64(perPage)
}

func GetPrayerRequests(c *gin.Context) {
	page, perPage := paginationParams(c)

	total, err := initializers.DB.From("prayer_request").Count()
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var prayerRequests []models.PrayerRequest
	err = initializers.DB.From("prayer_request").
		Order(goqu.I("created_at").Desc()).
		Limit(uint(perPage)).
		Offset(uint((page - 1) * perPage)).
		ScanStructs(&prayerRequests)

	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views := make([]map[string]any, 0, len(prayerRequests))
	for _, pr := range prayerRequests {
		views = append(views, pr.ToDict())
	}

	c.JSON(http.StatusOK, gin.H{
		"prayer_requests": views,
		"total":           total,
		"pages":           pageCount(total, perPage),
		"current_page":    page,
	})
}

func GetContactSubmissions(c *gin.Context) {
	page, perPage := paginationParams(c)

	total, err := initializers.DB.From("contact_submission").Count()
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var submissions []models.ContactSubmission
	err = initializers.DB.From("contact_submission").
		Order(goqu.I("created_at").Desc()).
		Limit(uint(perPage)).
		Offset(uint((page - 1) * perPage)).
		ScanStructs(&submissions)

	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views := make([]map[string]any, 0, len(submissions))
	for _, cs := range submissions {
		views = append(views, cs.ToDict())
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions":  views,
		"total":        total,
		"pages":        pageCount(total, perPage),
		"current_page": page,
	})
}
