package controllers

import (
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/acme-gaming/acme-store-api/config"
	"github.com/acme-gaming/acme-store-api/models"
)

// RegisterRequest represents the request body for account registration.
// A role field in the request is deliberately ignored: registration can
// never self-escalate privileges.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

// Register handles POST /api/v1/auth/register - creates a new customer account
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	// Validate required fields
	if req.Email == "" || req.Password == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields",
		})
		return
	}

	// Validate email format
	if !emailPattern.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email format",
		})
		return
	}

	// Validate password length
	if len(req.Password) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Password must be at least 6 characters",
		})
		return
	}

	db := config.GetDB()
	email := strings.ToLower(req.Email)

	// Check if user already exists
	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "User with this email already exists",
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Registration lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create account. Please try again.",
		})
		return
	}

	// Hash password
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Registration error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create account. Please try again.",
		})
		return
	}

	// Role is always "user" regardless of request input
	user := models.User{
		Email:    email,
		Password: string(hashed),
		Name:     req.Name,
		Role:     models.RoleUser,
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("Registration error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create account. Please try again.",
		})
		return
	}

	// Don't send the password hash back
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}
