package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/sharongvarghese/ShopCart/internal/models"
	"github.com/sharongvarghese/ShopCart/internal/redis"
	"github.com/sharongvarghese/ShopCart/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService services.UserService
	redisClient *redis.Client
	sessionTTL  time.Duration
}

func NewAuthHandler(userService services.UserService, redisClient *redis.Client, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{userService: userService, redisClient: redisClient, sessionTTL: sessionTTL}
}

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered, please login"})
			return
		}
		if errors.Is(err, services.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "username": user.Username, "email": user.Email})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	now := time.Now()
	session := &redis.SessionData{
		UserID:    user.ID,
		Username:  user.Username,
		IsAdmin:   user.Role == string(models.RoleAdmin),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.redisClient.SetSession(c.Request.Context(), sessionID(c), session, h.sessionTTL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username, "is_admin": session.IsAdmin})
}

// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.redisClient.DeleteSession(c.Request.Context(), sessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
