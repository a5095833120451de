package handlers

import (
	"errors"
	"net/http"
	"strings"

	"travelplanner/internal/models"
	"travelplanner/internal/service"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "currentUser"

const (
	errTokenMissing = "Access denied. Token missing."
	errTokenInvalid = "Access denied. Invalid token."
	errTokenNoUser  = "Access denied. User not found."
)

// authMiddleware resolves the bearer token to a full user record and stores
// it in the Gin context for the handlers downstream.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errTokenMissing})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errTokenMissing})
		return
	}

	user, err := h.services.Auth.Authenticate(c.Request.Context(), parts[1])
	if err != nil {
		msg := errTokenInvalid
		if errors.Is(err, service.ErrUserNotFound) {
			msg = errTokenNoUser
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
		return
	}

	c.Set(ctxUserKey, user)
	c.Next()
}

// currentUser returns the user placed in the context by authMiddleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok && u != nil
}

// mustCurrentUser is for handlers behind authMiddleware; a missing user means
// the route was wired without the middleware.
func (h *Handler) mustCurrentUser(c *gin.Context) (*models.User, bool) {
	u, ok := currentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errTokenNoUser})
	}
	return u, ok
}
