package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio/internal/database"
)

// ExperienceHandler serves the work experience endpoints.
type ExperienceHandler struct {
	resource[database.Experience]
}

// NewExperienceHandler constructs an ExperienceHandler.
func NewExperienceHandler(db *gorm.DB) *ExperienceHandler {
	return &ExperienceHandler{resource: resource[database.Experience]{
		db:    db,
		label: "Experience",
		sort:  `"order" ASC, start_date DESC`,
	}}
}

type createExperienceRequest struct {
	Company          string     `json:"company"`
	Role             string     `json:"role"`
	EmploymentType   string     `json:"employmentType"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	CurrentlyWorking bool       `json:"currentlyWorking"`
	Description      string     `json:"description"`
	Logo             string     `json:"logo"`
	Order            int        `json:"order"`
}

type updateExperienceRequest struct {
	Company          *string    `json:"company"`
	Role             *string    `json:"role"`
	EmploymentType   *string    `json:"employmentType"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	CurrentlyWorking *bool      `json:"currentlyWorking"`
	Description      *string    `json:"description"`
	Logo             *string    `json:"logo"`
	Order            *int       `json:"order"`
}

// List returns every experience entry, most recent first within the same order.
func (h *ExperienceHandler) List(c *gin.Context) {
	h.list(c, nil)
}

// ListAdmin returns every experience entry.
func (h *ExperienceHandler) ListAdmin(c *gin.Context) {
	h.list(c, nil)
}

// GetByID returns one experience entry by id.
func (h *ExperienceHandler) GetByID(c *gin.Context) {
	h.getByID(c)
}

// Create validates the required fields and the employment type enum.
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req createExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	missing := missingFields(map[string]string{
		"company":        req.Company,
		"role":           req.Role,
		"employmentType": req.EmploymentType,
		"description":    req.Description,
	})
	if req.StartDate == nil {
		missing = append(missing, "startDate")
	}
	if len(missing) > 0 {
		ValidationError(c, "Company, role, employment type, start date, and description are required", missing)
		return
	}

	if !database.ValidEmploymentType(req.EmploymentType) {
		BadRequest(c, "Employment type must be one of Full-time, Part-time, Contract, Freelance, Internship")
		return
	}

	experience := database.Experience{
		Company:          req.Company,
		Role:             req.Role,
		EmploymentType:   req.EmploymentType,
		StartDate:        *req.StartDate,
		EndDate:          req.EndDate,
		CurrentlyWorking: req.CurrentlyWorking,
		Description:      req.Description,
		Logo:             req.Logo,
		Order:            req.Order,
	}
	// An ongoing position has no end date.
	if experience.CurrentlyWorking {
		experience.EndDate = nil
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&experience).Error; err != nil {
		h.logError(c, "create", err)
		Internal(c, "Server error creating experience")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Experience created successfully",
		"experience": experience,
	})
}

// Update applies the fields present in the body.
func (h *ExperienceHandler) Update(c *gin.Context) {
	var req updateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	experience, err := h.findByID(ctx, c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	if req.EmploymentType != nil && !database.ValidEmploymentType(*req.EmploymentType) {
		BadRequest(c, "Employment type must be one of Full-time, Part-time, Contract, Freelance, Internship")
		return
	}

	if req.Company != nil {
		experience.Company = *req.Company
	}
	if req.Role != nil {
		experience.Role = *req.Role
	}
	if req.EmploymentType != nil {
		experience.EmploymentType = *req.EmploymentType
	}
	if req.StartDate != nil {
		experience.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		experience.EndDate = req.EndDate
	}
	if req.CurrentlyWorking != nil {
		experience.CurrentlyWorking = *req.CurrentlyWorking
	}
	if experience.CurrentlyWorking {
		experience.EndDate = nil
	}
	if req.Description != nil {
		experience.Description = *req.Description
	}
	if req.Logo != nil {
		experience.Logo = *req.Logo
	}
	if req.Order != nil {
		experience.Order = *req.Order
	}

	if err := h.db.WithContext(ctx).Save(experience).Error; err != nil {
		h.logError(c, "update", err)
		Internal(c, "Server error updating experience")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Experience updated successfully",
		"experience": experience,
	})
}

// Delete removes one experience entry by id.
func (h *ExperienceHandler) Delete(c *gin.Context) {
	h.deleteByID(c)
}
