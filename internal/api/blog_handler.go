package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"portfolio/internal/database"
)

// BlogHandler serves the blog post endpoints.
type BlogHandler struct {
	resource[database.Blog]
}

// NewBlogHandler constructs a BlogHandler.
func NewBlogHandler(db *gorm.DB) *BlogHandler {
	return &BlogHandler{resource: resource[database.Blog]{
		db:    db,
		label: "Blog",
		sort:  "created_at DESC",
	}}
}

type createBlogRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	CoverImage string   `json:"coverImage"`
	Tags       []string `json:"tags"`
}

type updateBlogRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Excerpt    *string   `json:"excerpt"`
	CoverImage *string   `json:"coverImage"`
	Tags       *[]string `json:"tags"`
	Published  *bool     `json:"published"`
}

type blogPagination struct {
	Current int   `json:"current"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
}

// ListPublished returns published posts, newest publication first, paginated.
func (h *BlogHandler) ListPublished(c *gin.Context) {
	h.listPage(c, "published_at DESC", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("published = ?", true)
	})
}

// ListAdmin returns every post regardless of publication state.
func (h *BlogHandler) ListAdmin(c *gin.Context) {
	h.listPage(c, "created_at DESC", nil)
}

func (h *BlogHandler) listPage(c *gin.Context, order string, scope scopeFunc) {
	page, limit := ParsePagination(c)
	ctx := c.Request.Context()

	tx := h.db.WithContext(ctx).Model(&database.Blog{})
	if scope != nil {
		tx = scope(tx)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		h.logError(c, "count", err)
		Internal(c, "Server error fetching blogs")
		return
	}

	var blogs []database.Blog
	if err := tx.Order(order).Offset((page - 1) * limit).Limit(limit).Find(&blogs).Error; err != nil {
		h.logError(c, "list", err)
		Internal(c, "Server error fetching blogs")
		return
	}
	if blogs == nil {
		blogs = []database.Blog{}
	}

	c.JSON(http.StatusOK, gin.H{
		"blogs": blogs,
		"pagination": blogPagination{
			Current: page,
			Total:   (total + int64(limit) - 1) / int64(limit),
			Limit:   limit,
		},
	})
}

// GetByID returns one post by id (admin route).
func (h *BlogHandler) GetByID(c *gin.Context) {
	h.getByID(c)
}

// GetBySlug returns one published post and counts the read. The increment
// is an observable side effect: two reads of the same slug yield views
// N and N+1.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	ctx := c.Request.Context()

	var blog database.Blog
	err := h.db.WithContext(ctx).
		Where("slug = ? AND published = ?", c.Param("slug"), true).
		First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Blog post not found")
			return
		}
		h.logError(c, "getBySlug", err)
		Internal(c, "Server error fetching blog")
		return
	}

	if err := h.db.WithContext(ctx).
		Model(&blog).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		h.logError(c, "incrementViews", err)
		Internal(c, "Server error fetching blog")
		return
	}
	blog.Views++

	c.JSON(http.StatusOK, blog)
}

// Create validates the required fields, derives the slug from the title
// and rejects duplicates. New posts always start unpublished.
func (h *BlogHandler) Create(c *gin.Context) {
	var req createBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if missing := missingFields(map[string]string{
		"title":   req.Title,
		"content": req.Content,
		"excerpt": req.Excerpt,
	}); len(missing) > 0 {
		ValidationError(c, "Title, content, and excerpt are required", missing)
		return
	}

	ctx := c.Request.Context()
	blogSlug := slug.Make(req.Title)

	var count int64
	if err := h.db.WithContext(ctx).
		Model(&database.Blog{}).
		Where("slug = ?", blogSlug).
		Count(&count).Error; err != nil {
		h.logError(c, "slugLookup", err)
		Internal(c, "Server error creating blog")
		return
	}
	if count > 0 {
		BadRequest(c, "A blog with this title already exists")
		return
	}

	blog := database.Blog{
		Title:      req.Title,
		Slug:       blogSlug,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		Tags:       datatypes.NewJSONSlice(req.Tags),
		Published:  false,
		Author:     "Admin",
	}
	if blog.Tags == nil {
		blog.Tags = datatypes.NewJSONSlice([]string{})
	}

	if err := h.db.WithContext(ctx).Create(&blog).Error; err != nil {
		h.logError(c, "create", err)
		Internal(c, "Server error creating blog")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Blog created successfully",
		"blog":    blog,
	})
}

// Update applies the fields present in the body. A new title re-derives
// the slug; publishedAt is stamped only on the false-to-true publication
// transition and never overwritten afterwards.
func (h *BlogHandler) Update(c *gin.Context) {
	var req updateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	blog, err := h.findByID(ctx, c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	if req.Title != nil {
		blog.Title = *req.Title
		blog.Slug = slug.Make(*req.Title)
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.Excerpt != nil {
		blog.Excerpt = *req.Excerpt
	}
	if req.CoverImage != nil {
		blog.CoverImage = *req.CoverImage
	}
	if req.Tags != nil {
		blog.Tags = datatypes.NewJSONSlice(*req.Tags)
	}
	if req.Published != nil {
		if *req.Published && !blog.Published {
			now := time.Now()
			blog.PublishedAt = &now
		}
		blog.Published = *req.Published
	}

	if err := h.db.WithContext(ctx).Save(blog).Error; err != nil {
		h.logError(c, "update", err)
		Internal(c, "Server error updating blog")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Blog updated successfully",
		"blog":    blog,
	})
}

// Delete removes one post by id.
func (h *BlogHandler) Delete(c *gin.Context) {
	h.deleteByID(c)
}
