package public

import (
	"net/http"
	"time"

	"github.com/freshmart/freshmart/internal/http/response"
	"github.com/freshmart/freshmart/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserProfile is the account shape returned by auth endpoints.
type UserProfile struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func newUserProfile(user *models.User) UserProfile {
	return UserProfile{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}

// Register creates a customer account and returns an access token.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required", err)
		return
	}

	user, token, expiresAt, err := h.AuthService.Register(req.Email, req.Password, req.Name)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.Created(c, gin.H{
		"message":    "User registered successfully",
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
		"user":       newUserProfile(user),
	})
}

// Login verifies credentials and returns an access token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required", err)
		return
	}

	user, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.OK(c, gin.H{
		"message":    "Login successful",
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
		"user":       newUserProfile(user),
	})
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.AuthService.GetUser(uid)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	response.OK(c, gin.H{"user": newUserProfile(user)})
}
