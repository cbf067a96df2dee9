package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio/internal/database"
)

// CertificationHandler serves the certification endpoints.
type CertificationHandler struct {
	resource[database.Certification]
}

// NewCertificationHandler constructs a CertificationHandler.
func NewCertificationHandler(db *gorm.DB) *CertificationHandler {
	return &CertificationHandler{resource: resource[database.Certification]{
		db:    db,
		label: "Certification",
		sort:  `"order" ASC, issue_date DESC`,
	}}
}

type createCertificationRequest struct {
	Title         string     `json:"title"`
	Issuer        string     `json:"issuer"`
	IssueDate     *time.Time `json:"issueDate"`
	ExpiryDate    *time.Time `json:"expiryDate"`
	CredentialID  string     `json:"credentialId"`
	CredentialURL string     `json:"credentialUrl"`
	Image         string     `json:"image"`
	Description   string     `json:"description"`
	Visible       *bool      `json:"visible"`
	Order         int        `json:"order"`
}

type updateCertificationRequest struct {
	Title         *string    `json:"title"`
	Issuer        *string    `json:"issuer"`
	IssueDate     *time.Time `json:"issueDate"`
	ExpiryDate    *time.Time `json:"expiryDate"`
	CredentialID  *string    `json:"credentialId"`
	CredentialURL *string    `json:"credentialUrl"`
	Image         *string    `json:"image"`
	Description   *string    `json:"description"`
	Visible       *bool      `json:"visible"`
	Order         *int       `json:"order"`
}

// List returns visible certifications, most recently issued first within
// the same order.
func (h *CertificationHandler) List(c *gin.Context) {
	h.list(c, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("visible = ?", true)
	})
}

// ListAdmin returns every certification regardless of visibility.
func (h *CertificationHandler) ListAdmin(c *gin.Context) {
	h.list(c, nil)
}

// GetByID returns one certification by id (admin route).
func (h *CertificationHandler) GetByID(c *gin.Context) {
	h.getByID(c)
}

// Create validates the required fields and persists a new certification.
func (h *CertificationHandler) Create(c *gin.Context) {
	var req createCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	missing := missingFields(map[string]string{
		"title":  req.Title,
		"issuer": req.Issuer,
	})
	if req.IssueDate == nil {
		missing = append(missing, "issueDate")
	}
	if len(missing) > 0 {
		ValidationError(c, "Title, issuer, and issue date are required", missing)
		return
	}

	certification := database.Certification{
		Title:         req.Title,
		Issuer:        req.Issuer,
		IssueDate:     *req.IssueDate,
		ExpiryDate:    req.ExpiryDate,
		CredentialID:  req.CredentialID,
		CredentialURL: req.CredentialURL,
		Image:         req.Image,
		Description:   req.Description,
		Visible:       true,
		Order:         req.Order,
	}
	if req.Visible != nil {
		certification.Visible = *req.Visible
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&certification).Error; err != nil {
		h.logError(c, "create", err)
		Internal(c, "Server error creating certification")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Certification created successfully",
		"certification": certification,
	})
}

// Update applies the fields present in the body.
func (h *CertificationHandler) Update(c *gin.Context) {
	var req updateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	certification, err := h.findByID(ctx, c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	if req.Title != nil {
		certification.Title = *req.Title
	}
	if req.Issuer != nil {
		certification.Issuer = *req.Issuer
	}
	if req.IssueDate != nil {
		certification.IssueDate = *req.IssueDate
	}
	if req.ExpiryDate != nil {
		certification.ExpiryDate = req.ExpiryDate
	}
	if req.CredentialID != nil {
		certification.CredentialID = *req.CredentialID
	}
	if req.CredentialURL != nil {
		certification.CredentialURL = *req.CredentialURL
	}
	if req.Image != nil {
		certification.Image = *req.Image
	}
	if req.Description != nil {
		certification.Description = *req.Description
	}
	if req.Visible != nil {
		certification.Visible = *req.Visible
	}
	if req.Order != nil {
		certification.Order = *req.Order
	}

	if err := h.db.WithContext(ctx).Save(certification).Error; err != nil {
		h.logError(c, "update", err)
		Internal(c, "Server error updating certification")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Certification updated successfully",
		"certification": certification,
	})
}

// Delete removes one certification by id.
func (h *CertificationHandler) Delete(c *gin.Context) {
	h.deleteByID(c)
}
