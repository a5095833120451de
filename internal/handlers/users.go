package handlers

import (
	"errors"
	"net/http"

	"travelplanner/internal/models"
	"travelplanner/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errUserFieldsRequired = "Username, email, and password are required."
	errEmailImmutable     = "Email cannot be updated."
	errUserMissed         = "User not found."
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary      Register user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "Account"
// @Success      201  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/users [post]
func (h *Handler) createUser(c *gin.Context) {
	var req registerRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errUserFieldsRequired})
		return
	}

	created, err := h.services.Users.Create(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.respondError(c, err, "user_create_failed", errUserMissed, "Failed to create user.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      Authenticated user's profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Router       /api/users [get]
// @Security     BearerAuth
func (h *Handler) getProfile(c *gin.Context) {
	u, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Update profile
// @Description  Email cannot be moved to an address without an account.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  models.UserUpdate  true  "Fields to change"
// @Success      200  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users [put]
// @Security     BearerAuth
func (h *Handler) updateProfile(c *gin.Context) {
	u, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	var upd models.UserUpdate
	if ok := h.bindJSONOrBadRequest(c, &upd); !ok {
		return
	}

	updated, err := h.services.Users.Update(c.Request.Context(), u.ID.Hex(), upd)
	if err != nil {
		if errors.Is(err, service.ErrEmailImmutable) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errEmailImmutable})
			return
		}
		h.respondError(c, err, "user_update_failed", errUserMissed, "Failed to update user.")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete account
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users [delete]
// @Security     BearerAuth
func (h *Handler) deleteProfile(c *gin.Context) {
	u, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	deleted, err := h.services.Users.Delete(c.Request.Context(), u.ID.Hex())
	if err != nil {
		h.respondError(c, err, "user_delete_failed", errUserMissed, "Failed to delete user.")
		return
	}
	c.JSON(http.StatusOK, deleted)
}

// @Summary      Authenticated user's upcoming trips
// @Description  Trips whose end date is at or after now; the split is computed at read time.
// @Tags         users
// @Produce      json
// @Success      200  {array}  models.TripPlan
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/users/upcoming-trips [get]
// @Security     BearerAuth
func (h *Handler) upcomingTrips(c *gin.Context) {
	u, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	trips, err := h.services.Users.UpcomingTrips(c.Request.Context(), u.ID.Hex())
	if err != nil {
		h.respondError(c, err, "user_upcoming_trips_failed", errUserMissed, "Failed to fetch trips.")
		return
	}
	c.JSON(http.StatusOK, trips)
}

// @Summary      Authenticated user's past trips
// @Tags         users
// @Produce      json
// @Success      200  {array}  models.TripPlan
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/users/past-trips [get]
// @Security     BearerAuth
func (h *Handler) pastTrips(c *gin.Context) {
	u, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	trips, err := h.services.Users.PastTrips(c.Request.Context(), u.ID.Hex())
	if err != nil {
		h.respondError(c, err, "user_past_trips_failed", errUserMissed, "Failed to fetch trips.")
		return
	}
	c.JSON(http.StatusOK, trips)
}

// @Summary      All of the authenticated user's trips
// @Tags         users
// @Produce      json
// @Success      200  {array}  models.TripPlan
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/users/all-trips [get]
// @Security     BearerAuth
func (h *Handler) allTrips(c *gin.Context) {
	u, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	trips, err := h.services.Users.TripPlans(c.Request.Context(), u.ID.Hex())
	if err != nil {
		h.respondError(c, err, "user_all_trips_failed", errUserMissed, "Failed to fetch trips.")
		return
	}
	c.JSON(http.StatusOK, trips)
}

// @Summary      Authenticated user's bookings (expanded)
// @Tags         users
// @Produce      json
// @Success      200  {array}  models.Booking
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/users/bookings [get]
// @Security     BearerAuth
func (h *Handler) userBookings(c *gin.Context) {
	u, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	bookings, err := h.services.Users.Bookings(c.Request.Context(), u.ID.Hex())
	if err != nil {
		h.respondError(c, err, "user_bookings_failed", errUserMissed, "Failed to fetch bookings.")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// @Summary      Authenticated user's reviews (expanded)
// @Tags         users
// @Produce      json
// @Success      200  {array}  models.Review
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/users/reviews [get]
// @Security     BearerAuth
func (h *Handler) userReviews(c *gin.Context) {
	u, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	reviews, err := h.services.Users.Reviews(c.Request.Context(), u.ID.Hex())
	if err != nil {
		h.respondError(c, err, "user_reviews_failed", errUserMissed, "Failed to fetch reviews.")
		return
	}
	c.JSON(http.StatusOK, reviews)
}
