package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio/internal/database"
)

// SkillHandler serves the skill endpoints.
type SkillHandler struct {
	resource[database.Skill]
}

// NewSkillHandler constructs a SkillHandler.
func NewSkillHandler(db *gorm.DB) *SkillHandler {
	return &SkillHandler{resource: resource[database.Skill]{
		db:    db,
		label: "Skill",
		sort:  `"order" ASC, name ASC`,
	}}
}

type createSkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    *int   `json:"level"`
	Icon     string `json:"icon"`
	URL      string `json:"url"`
	Visible  *bool  `json:"visible"`
	Order    int    `json:"order"`
}

type updateSkillRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Level    *int    `json:"level"`
	Icon     *string `json:"icon"`
	URL      *string `json:"url"`
	Visible  *bool   `json:"visible"`
	Order    *int    `json:"order"`
}

func validSkillLevel(level int) bool {
	return level >= 0 && level <= 100
}

// List returns visible skills, optionally filtered by category.
func (h *SkillHandler) List(c *gin.Context) {
	category := c.Query("category")
	h.list(c, func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("visible = ?", true)
		if category != "" {
			tx = tx.Where("category = ?", category)
		}
		return tx
	})
}

// ListAdmin returns every skill regardless of visibility.
func (h *SkillHandler) ListAdmin(c *gin.Context) {
	h.list(c, nil)
}

// GetByID returns one skill by id.
func (h *SkillHandler) GetByID(c *gin.Context) {
	h.getByID(c)
}

// Create validates the required fields and the level bound.
func (h *SkillHandler) Create(c *gin.Context) {
	var req createSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	missing := missingFields(map[string]string{
		"name":     req.Name,
		"category": req.Category,
	})
	if req.Level == nil {
		missing = append(missing, "level")
	}
	if len(missing) > 0 {
		ValidationError(c, "Name, category, and level are required", missing)
		return
	}

	if !database.ValidSkillCategory(req.Category) {
		BadRequest(c, "Category must be one of Frontend, Backend, Tools, Other")
		return
	}
	if !validSkillLevel(*req.Level) {
		BadRequest(c, "Level must be between 0 and 100")
		return
	}

	skill := database.Skill{
		Name:     req.Name,
		Category: req.Category,
		Level:    *req.Level,
		Icon:     req.Icon,
		URL:      req.URL,
		Visible:  true,
		Order:    req.Order,
	}
	if req.Visible != nil {
		skill.Visible = *req.Visible
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&skill).Error; err != nil {
		h.logError(c, "create", err)
		Internal(c, "Server error creating skill")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Skill created successfully",
		"skill":   skill,
	})
}

// Update applies the fields present in the body, re-validating the level
// bound when a new level is supplied.
func (h *SkillHandler) Update(c *gin.Context) {
	var req updateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	skill, err := h.findByID(ctx, c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	if req.Level != nil && !validSkillLevel(*req.Level) {
		BadRequest(c, "Level must be between 0 and 100")
		return
	}
	if req.Category != nil && !database.ValidSkillCategory(*req.Category) {
		BadRequest(c, "Category must be one of Frontend, Backend, Tools, Other")
		return
	}

	if req.Name != nil {
		skill.Name = *req.Name
	}
	if req.Category != nil {
		skill.Category = *req.Category
	}
	if req.Level != nil {
		skill.Level = *req.Level
	}
	if req.Icon != nil {
		skill.Icon = *req.Icon
	}
	if req.URL != nil {
		skill.URL = *req.URL
	}
	if req.Visible != nil {
		skill.Visible = *req.Visible
	}
	if req.Order != nil {
		skill.Order = *req.Order
	}

	if err := h.db.WithContext(ctx).Save(skill).Error; err != nil {
		h.logError(c, "update", err)
		Internal(c, "Server error updating skill")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Skill updated successfully",
		"skill":   skill,
	})
}

// Delete removes one skill by id.
func (h *SkillHandler) Delete(c *gin.Context) {
	h.deleteByID(c)
}
