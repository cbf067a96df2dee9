package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio/internal/database"
)

// TagHandler serves the tag lookup endpoints. Tags are a flat name list;
// blogs reference them by string only.
type TagHandler struct {
	db *gorm.DB
}

// NewTagHandler constructs a TagHandler.
func NewTagHandler(db *gorm.DB) *TagHandler {
	return &TagHandler{db: db}
}

type createTagRequest struct {
	Name string `json:"name"`
}

// List returns only the tag names, sorted alphabetically.
func (h *TagHandler) List(c *gin.Context) {
	var names []string
	err := h.db.WithContext(c.Request.Context()).
		Model(&database.Tag{}).
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		logError(c, "Tag", "list", err)
		Internal(c, "Server error fetching tags")
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"tags": names})
}

// Create normalizes the name (trim, lowercase) and treats an existing tag
// as a successful no-op rather than a conflict.
func (h *TagHandler) Create(c *gin.Context) {
	var req createTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	name := strings.ToLower(strings.TrimSpace(req.Name))
	if name == "" {
		BadRequest(c, "Tag name is required")
		return
	}

	ctx := c.Request.Context()
	var existing database.Tag
	err := h.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"tag": existing.Name, "message": "Tag already exists"})
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fall through to create
	default:
		logError(c, "Tag", "lookup", err)
		Internal(c, "Server error creating tag")
		return
	}

	tag := database.Tag{Name: name}
	if err := h.db.WithContext(ctx).Create(&tag).Error; err != nil {
		logError(c, "Tag", "create", err)
		Internal(c, "Server error creating tag")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"tag": tag.Name, "message": "Tag created successfully"})
}

// Delete removes a tag by its (lowercased) name.
func (h *TagHandler) Delete(c *gin.Context) {
	name := strings.ToLower(c.Param("name"))
	ctx := c.Request.Context()

	var tag database.Tag
	err := h.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Tag not found")
			return
		}
		logError(c, "Tag", "lookup", err)
		Internal(c, "Server error deleting tag")
		return
	}

	if err := h.db.WithContext(ctx).Delete(&tag).Error; err != nil {
		logError(c, "Tag", "delete", err)
		Internal(c, "Server error deleting tag")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted successfully"})
}
