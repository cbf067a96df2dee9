package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolio/internal/database"
)

// ProfileHandler serves the singleton site-owner profile. The row lives
// under a fixed primary key so at most one instance can ever exist.
type ProfileHandler struct {
	db *gorm.DB
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

type updateProfileRequest struct {
	Name               *string               `json:"name"`
	Title              *string               `json:"title"`
	Introduction       *string               `json:"introduction"`
	ProfileImage       *string               `json:"profileImage"`
	Resume             *string               `json:"resume"`
	Email              *string               `json:"email"`
	Phone              *string               `json:"phone"`
	Location           *string               `json:"location"`
	YearsExperience    *int                  `json:"yearsExperience"`
	ProjectsCompleted  *int                  `json:"projectsCompleted"`
	ClientSatisfaction *int                  `json:"clientSatisfaction"`
	SocialLinks        *database.SocialLinks `json:"socialLinks"`
}

// defaultProfile is the payload served before any profile has been saved.
func defaultProfile() gin.H {
	return gin.H{
		"name":         "Portfolio Owner",
		"title":        "Full-Stack Developer",
		"introduction": "Building modern web applications",
		"email":        "contact@example.com",
		"socialLinks":  database.SocialLinks{},
	}
}

// Get returns the profile, or the fixed default payload when none exists
// yet. This endpoint never answers 404.
func (h *ProfileHandler) Get(c *gin.Context) {
	var profile database.Profile
	err := h.db.WithContext(c.Request.Context()).First(&profile, database.ProfileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, defaultProfile())
			return
		}
		logError(c, "Profile", "get", err)
		Internal(c, "Server error fetching profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Update upserts the singleton: the first write creates it, later writes
// apply partial-update semantics to the same row.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	var profile database.Profile
	err := h.db.WithContext(ctx).First(&profile, database.ProfileID).Error
	creating := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !creating {
		logError(c, "Profile", "get", err)
		Internal(c, "Server error updating profile")
		return
	}
	if creating {
		profile = database.Profile{
			Model:              database.Model{ID: database.ProfileID},
			Name:               "Portfolio Owner",
			Title:              "Full-Stack Developer",
			Introduction:       "Building modern web applications",
			Email:              "contact@example.com",
			YearsExperience:    5,
			ProjectsCompleted:  20,
			ClientSatisfaction: 100,
		}
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Title != nil {
		profile.Title = *req.Title
	}
	if req.Introduction != nil {
		profile.Introduction = *req.Introduction
	}
	if req.ProfileImage != nil {
		profile.ProfileImage = *req.ProfileImage
	}
	if req.Resume != nil {
		profile.Resume = *req.Resume
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.YearsExperience != nil {
		profile.YearsExperience = *req.YearsExperience
	}
	if req.ProjectsCompleted != nil {
		profile.ProjectsCompleted = *req.ProjectsCompleted
	}
	if req.ClientSatisfaction != nil {
		profile.ClientSatisfaction = *req.ClientSatisfaction
	}
	if req.SocialLinks != nil {
		profile.SocialLinks = datatypes.NewJSONType(*req.SocialLinks)
	}

	if creating {
		err = h.db.WithContext(ctx).Create(&profile).Error
	} else {
		err = h.db.WithContext(ctx).Save(&profile).Error
	}
	if err != nil {
		logError(c, "Profile", "update", err)
		Internal(c, "Server error updating profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}
