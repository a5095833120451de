package handlers

import (
	"net/http"

	"travelplanner/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	errReviewFieldsRequired = "User, destination and rating are required."
	errRatingRequired       = "Min and max rating are required."
	errDestNameRequired     = "Destination name is required."
	errReviewMissed         = "Review not found."
)

type reviewRequest struct {
	User        string   `json:"user"`
	Destination string   `json:"destination"`
	Rating      *float64 `json:"rating"`
	Comment     string   `json:"comment"`
}

// @Summary      Create review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body  reviewRequest  true  "Review"
// @Success      201  {object}  models.Review
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/reviews [post]
// @Security     BearerAuth
func (h *Handler) createReview(c *gin.Context) {
	var req reviewRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	if req.User == "" || req.Destination == "" || req.Rating == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errReviewFieldsRequired})
		return
	}
	userID, errU := primitive.ObjectIDFromHex(req.User)
	destID, errD := primitive.ObjectIDFromHex(req.Destination)
	if errU != nil || errD != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errReviewFieldsRequired})
		return
	}

	created, err := h.services.Reviews.Create(c.Request.Context(), models.Review{
		User:        userID,
		Destination: destID,
		Rating:      *req.Rating,
		Comment:     req.Comment,
	})
	if err != nil {
		h.respondError(c, err, "review_create_failed", errReviewMissed, "Failed to create review.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  models.Review
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/reviews [get]
// @Security     BearerAuth
func (h *Handler) listReviews(c *gin.Context) {
	reviews, err := h.services.Reviews.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "review_list_failed", errReviewMissed, "Failed to fetch reviews.")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// @Summary      Search reviews by destination name
// @Description  Resolves destinations by case-insensitive name first; zero matches is a 404.
// @Tags         reviews
// @Produce      json
// @Param        destinationName  query  string  true  "Destination name fragment"
// @Success      200  {array}  models.Review
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/reviews/search [get]
// @Security     BearerAuth
func (h *Handler) searchReviews(c *gin.Context) {
	name := c.Query("destinationName")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errDestNameRequired})
		return
	}
	reviews, err := h.services.Reviews.SearchByDestination(c.Request.Context(), name)
	if err != nil {
		h.respondError(c, err, "review_search_failed", errReviewMissed, "Failed to search reviews.")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// @Summary      Search reviews by rating range
// @Tags         reviews
// @Produce      json
// @Param        min  query  number  true  "Minimum rating (inclusive)"
// @Param        max  query  number  true  "Maximum rating (inclusive)"
// @Success      200  {array}  models.Review
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/reviews/search/rating [get]
// @Security     BearerAuth
func (h *Handler) searchReviewsByRating(c *gin.Context) {
	min, max, ok := parseRange(c, errRatingRequired)
	if !ok {
		return
	}
	reviews, err := h.services.Reviews.SearchByRatingRange(c.Request.Context(), min, max)
	if err != nil {
		h.respondError(c, err, "review_rating_search_failed", errReviewMissed, "Failed to search reviews.")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// @Summary      Get review
// @Tags         reviews
// @Produce      json
// @Param        id  path  string  true  "Review id"
// @Success      200  {object}  models.Review
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/reviews/{id} [get]
// @Security     BearerAuth
func (h *Handler) getReview(c *gin.Context) {
	r, err := h.services.Reviews.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "review_get_failed", errReviewMissed, "Failed to fetch review.")
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary      Update review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Review id"
// @Param        body  body  models.ReviewUpdate  true  "Fields to change"
// @Success      200  {object}  models.Review
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/reviews/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateReview(c *gin.Context) {
	var upd models.ReviewUpdate
	if ok := h.bindJSONOrBadRequest(c, &upd); !ok {
		return
	}
	r, err := h.services.Reviews.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		h.respondError(c, err, "review_update_failed", errReviewMissed, "Failed to update review.")
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary      Delete review
// @Tags         reviews
// @Produce      json
// @Param        id  path  string  true  "Review id"
// @Success      200  {object}  models.Review
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/reviews/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteReview(c *gin.Context) {
	r, err := h.services.Reviews.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "review_delete_failed", errReviewMissed, "Failed to delete review.")
		return
	}
	c.JSON(http.StatusOK, r)
}
