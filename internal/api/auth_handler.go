package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/api/middleware"
	"portfolio/internal/auth"
)

// AuthHandler serves admin login and identity lookup.
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges the admin credential for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if missing := missingFields(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	}); len(missing) > 0 {
		ValidationError(c, "Email and password are required", missing)
		return
	}

	if !h.authService.Authenticate(req.Email, req.Password) {
		Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.authService.GenerateToken()
	if err != nil {
		logError(c, "Auth", "sign", err)
		Internal(c, "Server error during login")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Me returns the authenticated principal.
func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := middleware.AdminEmailFromContext(c)
	if !ok {
		Unauthorized(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email, "role": "admin"})
}
