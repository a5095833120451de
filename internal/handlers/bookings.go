package handlers

import (
	"net/http"
	"time"

	"travelplanner/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	errBookingSearchRequired = "Status or destination name is required."
	errBookingMissed         = "Booking not found."
)

type bookingRequest struct {
	User                 string                       `json:"user"`
	Destination          string                       `json:"destination"`
	StartDate            time.Time                    `json:"startDate"`
	EndDate              time.Time                    `json:"endDate"`
	Status               string                       `json:"status"`
	FlightDetails        *models.FlightDetails        `json:"flightDetails"`
	AccommodationDetails *models.AccommodationDetails `json:"accommodationDetails"`
}

// @Summary      Create booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body  bookingRequest  true  "Booking"
// @Success      201  {object}  models.Booking
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/bookings [post]
// @Security     BearerAuth
func (h *Handler) createBooking(c *gin.Context) {
	var req bookingRequest
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

	created, err := h.services.Bookings.Create(c.Request.Context(), models.Booking{
		User:                 userID,
		Destination:          destID,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		Status:               req.Status,
		FlightDetails:        req.FlightDetails,
		AccommodationDetails: req.AccommodationDetails,
	})
	if err != nil {
		h.respondError(c, err, "booking_create_failed", errBookingMissed, "Failed to create booking.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      Authenticated user's bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}  models.Booking
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/bookings [get]
// @Security     BearerAuth
func (h *Handler) myBookings(c *gin.Context) {
	u, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	bookings, err := h.services.Bookings.ListByUser(c.Request.Context(), u.ID.Hex())
	if err != nil {
		h.respondError(c, err, "booking_mine_failed", errBookingMissed, "Failed to fetch bookings.")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// @Summary      Search bookings
// @Description  Exact status match, or destination name fragment.
// @Tags         bookings
// @Produce      json
// @Param        status           query  string  false  "Booking status"
// @Param        destinationName  query  string  false  "Destination name fragment"
// @Success      200  {array}  models.Booking
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/bookings/search [get]
// @Security     BearerAuth
func (h *Handler) searchBookings(c *gin.Context) {
	var (
		bookings []models.Booking
		err      error
	)
	switch {
	case c.Query("status") != "":
		bookings, err = h.services.Bookings.SearchByStatus(c.Request.Context(), c.Query("status"))
	case c.Query("destinationName") != "":
		bookings, err = h.services.Bookings.SearchByDestination(c.Request.Context(), c.Query("destinationName"))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": errBookingSearchRequired})
		return
	}
	if err != nil {
		h.respondError(c, err, "booking_search_failed", errBookingMissed, "Failed to search bookings.")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// @Summary      Authenticated user's upcoming bookings
// @Description  Bookings whose start date is at or after now.
// @Tags         bookings
// @Produce      json
// @Success      200  {array}  models.Booking
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/bookings/upcoming [get]
// @Security     BearerAuth
func (h *Handler) upcomingBookings(c *gin.Context) {
	u, ok := h.mustCurrentUser(c)
	if !ok {
		return
	}
	bookings, err := h.services.Bookings.UpcomingForUser(c.Request.Context(), u.ID.Hex())
	if err != nil {
		h.respondError(c, err, "booking_upcoming_failed", errBookingMissed, "Failed to fetch bookings.")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// @Summary      Get booking
// @Tags         bookings
// @Produce      json
// @Param        id  path  string  true  "Booking id"
// @Success      200  {object}  models.Booking
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/bookings/{id} [get]
// @Security     BearerAuth
func (h *Handler) getBooking(c *gin.Context) {
	b, err := h.services.Bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "booking_get_failed", errBookingMissed, "Failed to fetch booking.")
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary      Update booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "Booking id"
// @Param        body  body  models.BookingUpdate  true  "Fields to change"
// @Success      200  {object}  models.Booking
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/bookings/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateBooking(c *gin.Context) {
	var upd models.BookingUpdate
	if ok := h.bindJSONOrBadRequest(c, &upd); !ok {
		return
	}
	b, err := h.services.Bookings.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		h.respondError(c, err, "booking_update_failed", errBookingMissed, "Failed to update booking.")
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary      Delete booking
// @Tags         bookings
// @Produce      json
// @Param        id  path  string  true  "Booking id"
// @Success      200  {object}  models.Booking
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/bookings/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteBooking(c *gin.Context) {
	b, err := h.services.Bookings.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "booking_delete_failed", errBookingMissed, "Failed to delete booking.")
		return
	}
	c.JSON(http.StatusOK, b)
}
