package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio/internal/database"
)

// EducationHandler serves the education endpoints.
type EducationHandler struct {
	resource[database.Education]
}

// NewEducationHandler constructs an EducationHandler.
func NewEducationHandler(db *gorm.DB) *EducationHandler {
	return &EducationHandler{resource: resource[database.Education]{
		db:    db,
		label: "Education",
		sort:  `"order" ASC, start_year DESC`,
	}}
}

type createEducationRequest struct {
	Institution       string `json:"institution"`
	Degree            string `json:"degree"`
	FieldOfStudy      string `json:"fieldOfStudy"`
	StartYear         *int   `json:"startYear"`
	EndYear           *int   `json:"endYear"`
	CurrentlyStudying bool   `json:"currentlyStudying"`
	Description       string `json:"description"`
	Logo              string `json:"logo"`
	Order             int    `json:"order"`
}

type updateEducationRequest struct {
	Institution       *string `json:"institution"`
	Degree            *string `json:"degree"`
	FieldOfStudy      *string `json:"fieldOfStudy"`
	StartYear         *int    `json:"startYear"`
	EndYear           *int    `json:"endYear"`
	CurrentlyStudying *bool   `json:"currentlyStudying"`
	Description       *string `json:"description"`
	Logo              *string `json:"logo"`
	Order             *int    `json:"order"`
}

// List returns every education entry, newest first within the same order.
func (h *EducationHandler) List(c *gin.Context) {
	h.list(c, nil)
}

// ListAdmin returns every education entry.
func (h *EducationHandler) ListAdmin(c *gin.Context) {
	h.list(c, nil)
}

// GetByID returns one education entry by id.
func (h *EducationHandler) GetByID(c *gin.Context) {
	h.getByID(c)
}

// Create validates the required fields and persists a new entry.
func (h *EducationHandler) Create(c *gin.Context) {
	var req createEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	missing := missingFields(map[string]string{
		"institution":  req.Institution,
		"degree":       req.Degree,
		"fieldOfStudy": req.FieldOfStudy,
	})
	if req.StartYear == nil {
		missing = append(missing, "startYear")
	}
	if len(missing) > 0 {
		ValidationError(c, "Institution, degree, field of study, and start year are required", missing)
		return
	}

	education := database.Education{
		Institution:       req.Institution,
		Degree:            req.Degree,
		FieldOfStudy:      req.FieldOfStudy,
		StartYear:         *req.StartYear,
		EndYear:           req.EndYear,
		CurrentlyStudying: req.CurrentlyStudying,
		Description:       req.Description,
		Logo:              req.Logo,
		Order:             req.Order,
	}
	// The end year only means something once studies have finished.
	if education.CurrentlyStudying {
		education.EndYear = nil
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&education).Error; err != nil {
		h.logError(c, "create", err)
		Internal(c, "Server error creating education")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Education created successfully",
		"education": education,
	})
}

// Update applies the fields present in the body.
func (h *EducationHandler) Update(c *gin.Context) {
	var req updateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	education, err := h.findByID(ctx, c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	if req.Institution != nil {
		education.Institution = *req.Institution
	}
	if req.Degree != nil {
		education.Degree = *req.Degree
	}
	if req.FieldOfStudy != nil {
		education.FieldOfStudy = *req.FieldOfStudy
	}
	if req.StartYear != nil {
		education.StartYear = *req.StartYear
	}
	if req.EndYear != nil {
		education.EndYear = req.EndYear
	}
	if req.CurrentlyStudying != nil {
		education.CurrentlyStudying = *req.CurrentlyStudying
	}
	if education.CurrentlyStudying {
		education.EndYear = nil
	}
	if req.Description != nil {
		education.Description = *req.Description
	}
	if req.Logo != nil {
		education.Logo = *req.Logo
	}
	if req.Order != nil {
		education.Order = *req.Order
	}

	if err := h.db.WithContext(ctx).Save(education).Error; err != nil {
		h.logError(c, "update", err)
		Internal(c, "Server error updating education")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Education updated successfully",
		"education": education,
	})
}

// Delete removes one education entry by id.
func (h *EducationHandler) Delete(c *gin.Context) {
	h.deleteByID(c)
}
