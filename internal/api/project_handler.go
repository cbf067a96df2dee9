package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolio/internal/database"
)

// ProjectHandler serves the portfolio project endpoints.
type ProjectHandler struct {
	resource[database.Project]
}

// NewProjectHandler constructs a ProjectHandler.
func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{resource: resource[database.Project]{
		db:    db,
		label: "Project",
		sort:  `"order" ASC, created_at DESC`,
	}}
}

type createProjectRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Image            string   `json:"image"`
	TechStack        []string `json:"techStack"`
	GithubLink       string   `json:"githubLink"`
	LiveLink         string   `json:"liveLink"`
	Featured         bool     `json:"featured"`
	Order            int      `json:"order"`
}

type updateProjectRequest struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	ShortDescription *string   `json:"shortDescription"`
	Image            *string   `json:"image"`
	TechStack        *[]string `json:"techStack"`
	GithubLink       *string   `json:"githubLink"`
	LiveLink         *string   `json:"liveLink"`
	Featured         *bool     `json:"featured"`
	Order            *int      `json:"order"`
}

// List returns projects, optionally only the featured ones.
func (h *ProjectHandler) List(c *gin.Context) {
	var scope scopeFunc
	if c.Query("featured") == "true" {
		scope = func(tx *gorm.DB) *gorm.DB {
			return tx.Where("featured = ?", true)
		}
	}
	h.list(c, scope)
}

// ListAdmin returns every project.
func (h *ProjectHandler) ListAdmin(c *gin.Context) {
	h.list(c, nil)
}

// GetByID returns one project by id.
func (h *ProjectHandler) GetByID(c *gin.Context) {
	h.getByID(c)
}

// Create validates the required fields and persists a new project.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if missing := missingFields(map[string]string{
		"title":            req.Title,
		"description":      req.Description,
		"shortDescription": req.ShortDescription,
	}); len(missing) > 0 {
		ValidationError(c, "Title, description, and short description are required", missing)
		return
	}

	project := database.Project{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Image:            req.Image,
		TechStack:        datatypes.NewJSONSlice(req.TechStack),
		GithubLink:       req.GithubLink,
		LiveLink:         req.LiveLink,
		Featured:         req.Featured,
		Order:            req.Order,
	}
	if project.TechStack == nil {
		project.TechStack = datatypes.NewJSONSlice([]string{})
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&project).Error; err != nil {
		h.logError(c, "create", err)
		Internal(c, "Server error creating project")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": project,
	})
}

// Update applies the fields present in the body.
func (h *ProjectHandler) Update(c *gin.Context) {
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	project, err := h.findByID(ctx, c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ShortDescription != nil {
		project.ShortDescription = *req.ShortDescription
	}
	if req.Image != nil {
		project.Image = *req.Image
	}
	if req.TechStack != nil {
		project.TechStack = datatypes.NewJSONSlice(*req.TechStack)
	}
	if req.GithubLink != nil {
		project.GithubLink = *req.GithubLink
	}
	if req.LiveLink != nil {
		project.LiveLink = *req.LiveLink
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.Order != nil {
		project.Order = *req.Order
	}

	if err := h.db.WithContext(ctx).Save(project).Error; err != nil {
		h.logError(c, "update", err)
		Internal(c, "Server error updating project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": project,
	})
}

// Delete removes one project by id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	h.deleteByID(c)
}
