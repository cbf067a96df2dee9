package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error writes the uniform error envelope {"message": ...}.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// ValidationError writes a 400 with field-level detail alongside the message.
func ValidationError(c *gin.Context, msg string, errs any) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg, "errors": errs})
}

func Unauthorized(c *gin.Context)           { Error(c, http.StatusUnauthorized, "unauthorized") }
func BadRequest(c *gin.Context, msg string) { Error(c, http.StatusBadRequest, msg) }
func NotFound(c *gin.Context, msg string)   { Error(c, http.StatusNotFound, msg) }
func Internal(c *gin.Context, msg string)   { Error(c, http.StatusInternalServerError, msg) }
