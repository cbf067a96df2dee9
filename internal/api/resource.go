package api

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio/internal/api/middleware"
)

var errInvalidID = errors.New("invalid resource id")

// resource bundles the store plumbing shared by every content type:
// listing with a fixed sort, lookup by id, and delete. Create and update
// stay with the per-resource handlers because their validation differs.
type resource[M any] struct {
	db    *gorm.DB
	label string
	sort  string
}

// scopeFunc narrows a list query, e.g. to published or visible rows.
type scopeFunc func(*gorm.DB) *gorm.DB

func (r *resource[M]) list(c *gin.Context, scope scopeFunc) {
	tx := r.db.WithContext(c.Request.Context()).Order(r.sort)
	if scope != nil {
		tx = scope(tx)
	}

	var items []M
	if err := tx.Find(&items).Error; err != nil {
		r.logError(c, "list", err)
		Internal(c, "Server error fetching "+strings.ToLower(r.label))
		return
	}
	if items == nil {
		items = []M{}
	}
	c.JSON(http.StatusOK, items)
}

// findByID resolves a path id to a stored document. A malformed id is
// reported as errInvalidID; callers treat both that and
// gorm.ErrRecordNotFound as "not found".
func (r *resource[M]) findByID(ctx context.Context, raw string) (*M, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, errInvalidID
	}

	var item M
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *resource[M]) getByID(c *gin.Context) {
	item, err := r.findByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		r.respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (r *resource[M]) deleteByID(c *gin.Context) {
	ctx := c.Request.Context()
	item, err := r.findByID(ctx, c.Param("id"))
	if err != nil {
		r.respondLookupError(c, err)
		return
	}

	if err := r.db.WithContext(ctx).Delete(item).Error; err != nil {
		r.logError(c, "delete", err)
		Internal(c, "Server error deleting "+strings.ToLower(r.label))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": r.label + " deleted successfully"})
}

// respondLookupError maps lookup failures: unresolvable or malformed ids
// both answer 404, anything else is logged and answers 500.
func (r *resource[M]) respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidID), errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, r.label+" not found")
	default:
		r.logError(c, "lookup", err)
		Internal(c, "Server error fetching "+strings.ToLower(r.label))
	}
}

func (r *resource[M]) logError(c *gin.Context, op string, err error) {
	logError(c, r.label, op, err)
}

// logError records the original cause server-side before a generic 500
// goes back to the client.
func logError(c *gin.Context, label, op string, err error) {
	middleware.LoggerFromContext(c).Error("store operation failed",
		"resource", label,
		"op", op,
		"error", err,
	)
}

// missingFields returns the sorted names of required string fields whose
// value is empty, for the 400 validation envelope.
func missingFields(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// ParsePagination reads page/limit query values, falling back to the
// defaults on anything malformed or non-positive.
func ParsePagination(c *gin.Context) (page, limit int) {
	page, limit = 1, 10
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	return page, limit
}
