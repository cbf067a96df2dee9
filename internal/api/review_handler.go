package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio/internal/database"
)

// ReviewHandler serves the client review endpoints.
type ReviewHandler struct {
	resource[database.Review]
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{resource: resource[database.Review]{
		db:    db,
		label: "Review",
		sort:  `"order" ASC, created_at DESC`,
	}}
}

type createReviewRequest struct {
	ClientName  string `json:"clientName"`
	ClientTitle string `json:"clientTitle"`
	ClientImage string `json:"clientImage"`
	Rating      *int   `json:"rating"`
	Comment     string `json:"comment"`
	Featured    *bool  `json:"featured"`
	Order       int    `json:"order"`
}

type updateReviewRequest struct {
	ClientName  *string `json:"clientName"`
	ClientTitle *string `json:"clientTitle"`
	ClientImage *string `json:"clientImage"`
	Rating      *int    `json:"rating"`
	Comment     *string `json:"comment"`
	Featured    *bool   `json:"featured"`
	Order       *int    `json:"order"`
}

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// List returns featured reviews in display order.
func (h *ReviewHandler) List(c *gin.Context) {
	h.list(c, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("featured = ?", true)
	})
}

// ListAdmin returns every review.
func (h *ReviewHandler) ListAdmin(c *gin.Context) {
	h.list(c, nil)
}

// GetByID returns one review by id.
func (h *ReviewHandler) GetByID(c *gin.Context) {
	h.getByID(c)
}

// Create validates the required fields; the rating defaults to 5 and is
// bounded to [1,5].
func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if missing := missingFields(map[string]string{
		"clientName": req.ClientName,
		"comment":    req.Comment,
	}); len(missing) > 0 {
		ValidationError(c, "Client name and comment are required", missing)
		return
	}

	rating := 5
	if req.Rating != nil {
		rating = *req.Rating
	}
	if !validRating(rating) {
		BadRequest(c, "Rating must be between 1 and 5")
		return
	}

	review := database.Review{
		ClientName:  req.ClientName,
		ClientTitle: req.ClientTitle,
		ClientImage: req.ClientImage,
		Rating:      rating,
		Comment:     req.Comment,
		Featured:    true,
		Order:       req.Order,
	}
	if req.Featured != nil {
		review.Featured = *req.Featured
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&review).Error; err != nil {
		h.logError(c, "create", err)
		Internal(c, "Server error creating review")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review created successfully",
		"review":  review,
	})
}

// Update applies the fields present in the body, re-validating the rating
// bound when a new rating is supplied.
func (h *ReviewHandler) Update(c *gin.Context) {
	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	review, err := h.findByID(ctx, c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	if req.Rating != nil && !validRating(*req.Rating) {
		BadRequest(c, "Rating must be between 1 and 5")
		return
	}

	if req.ClientName != nil {
		review.ClientName = *req.ClientName
	}
	if req.ClientTitle != nil {
		review.ClientTitle = *req.ClientTitle
	}
	if req.ClientImage != nil {
		review.ClientImage = *req.ClientImage
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	if req.Featured != nil {
		review.Featured = *req.Featured
	}
	if req.Order != nil {
		review.Order = *req.Order
	}

	if err := h.db.WithContext(ctx).Save(review).Error; err != nil {
		h.logError(c, "update", err)
		Internal(c, "Server error updating review")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review updated successfully",
		"review":  review,
	})
}

// Delete removes one review by id.
func (h *ReviewHandler) Delete(c *gin.Context) {
	h.deleteByID(c)
}
