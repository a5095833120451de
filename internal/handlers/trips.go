package handlers

import (
	"net/http"
	"time"

	"travelplanner/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	errTripFieldsRequired = "User and destination are required."
	errTripMissed         = "Trip plan not found."
)

type tripRequest struct {
	User           string                       `json:"user"`
	Destination    string                       `json:"destination"`
	StartDate      time.Time                    `json:"startDate"`
	EndDate        time.Time                    `json:"endDate"`
	Budget         float64                      `json:"budget"`
	Activities     []string                     `json:"activities"`
	Accommodations *models.AccommodationDetails `json:"accommodations"`
}

// @Summary      Create trip plan
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        body  body  tripRequest  true  "Trip plan"
// @Success      201  {object}  models.TripPlan
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/trips [post]
// @Security     BearerAuth
func (h *Handler) createTrip(c *gin.Context) {
	var req tripRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	if req.User == "" || req.Destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errTripFieldsRequired})
		return
	}
	userID, errU := primitive.ObjectIDFromHex(req.User)
	destID, errD := primitive.ObjectIDFromHex(req.Destination)
	if errU != nil || errD != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errTripFieldsRequired})
		return
	}

	created, err := h.services.TripPlans.Create(c.Request.Context(), models.TripPlan{
		User:           userID,
		Destination:    destID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Budget:         req.Budget,
		Activities:     req.Activities,
		Accommodations: req.Accommodations,
	})
	if err != nil {
		h.respondError(c, err, "trip_create_failed", errTripMissed, "Failed to create trip plan.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      List trip plans
// @Tags         trips
// @Produce      json
// @Success      200  {array}  models.TripPlan
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/trips [get]
// @Security     BearerAuth
func (h *Handler) listTrips(c *gin.Context) {
	trips, err := h.services.TripPlans.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "trip_list_failed", errTripMissed, "Failed to fetch trip plans.")
		return
	}
	c.JSON(http.StatusOK, trips)
}

// @Summary      Popular trip plans
// @Description  Trip plans ranked by how many bookings share their destination, most-booked first.
// @Tags         trips
// @Produce      json
// @Success      200  {array}  models.TripPlan
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/trips/popular [get]
// @Security     BearerAuth
func (h *Handler) popularTrips(c *gin.Context) {
	trips, err := h.services.TripPlans.Popular(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "trip_popular_failed", errTripMissed, "Failed to fetch popular trip plans.")
		return
	}
	c.JSON(http.StatusOK, trips)
}

// @Summary      Search trip plans
// @Description  Either destinationName, or min and max budget bounds.
// @Tags         trips
// @Produce      json
// @Param        destinationName  query  string  false  "Destination name fragment"
// @Param        min              query  number  false  "Minimum budget (inclusive)"
// @Param        max              query  number  false  "Maximum budget (inclusive)"
// @Success      200  {array}  models.TripPlan
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/trips/search [get]
// @Security     BearerAuth
func (h *Handler) searchTrips(c *gin.Context) {
	if name := c.Query("destinationName"); name != "" {
		trips, err := h.services.TripPlans.SearchByDestination(c.Request.Context(), name)
		if err != nil {
			h.respondError(c, err, "trip_search_failed", errTripMissed, "Failed to search trip plans.")
			return
		}
		c.JSON(http.StatusOK, trips)
		return
	}

	min, max, ok := parseRange(c, errBudgetRequired)
	if !ok {
		return
	}
	trips, err := h.services.TripPlans.SearchByBudgetRange(c.Request.Context(), min, max)
	if err != nil {
		h.respondError(c, err, "trip_budget_search_failed", errTripMissed, "Failed to search trip plans.")
		return
	}
	c.JSON(http.StatusOK, trips)
}

// @Summary      Authenticated user's trip plans
// @Tags         trips
// @Produce      json
// @Success      200  {array}  models.TripPlan
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/trips/me [get]
// @Security     BearerAuth
func (h *Handler) myTrips(c *gin.Context) {
	u, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	trips, err := h.services.TripPlans.ListByUser(c.Request.Context(), u.ID.Hex())
	if err != nil {
		h.respondError(c, err, "trip_mine_failed", errTripMissed, "Failed to fetch trip plans.")
		return
	}
	c.JSON(http.StatusOK, trips)
}

// @Summary      Get trip plan
// @Tags         trips
// @Produce      json
// @Param        id  path  string  true  "Trip plan id"
// @Success      200  {object}  models.TripPlan
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/trips/{id} [get]
// @Security     BearerAuth
func (h *Handler) getTrip(c *gin.Context) {
	t, err := h.services.TripPlans.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "trip_get_failed", errTripMissed, "Failed to fetch trip plan.")
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary      Update trip plan
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Trip plan id"
// @Param        body  body  models.TripPlanUpdate  true  "Fields to change"
// @Success      200  {object}  models.TripPlan
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/trips/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateTrip(c *gin.Context) {
	var upd models.TripPlanUpdate
	if ok := h.bindJSONOrBadRequest(c, &upd); !ok {
		return
	}
	t, err := h.services.TripPlans.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		h.respondError(c, err, "trip_update_failed", errTripMissed, "Failed to update trip plan.")
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary      Delete trip plan
// @Tags         trips
// @Produce      json
// @Param        id  path  string  true  "Trip plan id"
// @Success      200  {object}  models.TripPlan
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/trips/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTrip(c *gin.Context) {
	t, err := h.services.TripPlans.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "trip_delete_failed", errTripMissed, "Failed to delete trip plan.")
		return
	}
	c.JSON(http.StatusOK, t)
}
