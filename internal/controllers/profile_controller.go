package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"accounts-be/internal/middleware"
	"accounts-be/internal/models"
	"accounts-be/internal/service"
)

type ProfileController struct {
	profileService service.ProfileService
}

func NewProfileController(profileService service.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetProfile handles GET /me
func (pc *ProfileController) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

// UpdateProfile handles PATCH /me
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	// An absent body counts as an empty update, same as `{}`
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := pc.profileService.UpdateProfile(middleware.CurrentUser(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, user)
}
