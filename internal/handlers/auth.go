package handlers

import (
	"errors"
	"net/http"

	"travelplanner/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errAuthUserNotFound = "Authentication failed. User not found."
	errAuthBadPassword  = "Authentication failed. Incorrect password."
	errAuthFailed       = "Failed to authenticate user."
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  map[string]string  "token"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	token, err := h.services.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": errAuthUserNotFound})
		case errors.Is(err, service.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": errAuthBadPassword})
		default:
			if h.log != nil {
				h.log.Errorw("auth_login_failed", "email", req.Email, "err", err)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": errAuthFailed})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  changePasswordRequest  true  "New password"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/auth/changePassword [post]
// @Security     BearerAuth
func (h *Handler) changePassword(c *gin.Context) {
	u, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	var req changePasswordRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if err := h.services.Auth.ChangePassword(c.Request.Context(), u.ID.Hex(), req.NewPassword); err != nil {
		h.respondError(c, err, "auth_change_password_failed", "User not found.", "Failed to change password.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully."})
}
