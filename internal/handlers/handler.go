package handlers

import (
	"errors"
	"net/http"

	"travelplanner/internal/logger"
	"travelplanner/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Top-rated feed over WebSocket (HTTP upgrade), same port
	router.GET("/ws", h.wsTopRated)

	api := router.Group("/api")

	// Registration and login are the only unauthenticated API calls.
	api.POST("/auth/login", h.login)
	api.POST("/users", h.createUser)

	protected := api.Group("", h.authMiddleware)
	{
		protected.POST("/auth/changePassword", h.changePassword)
		h.registerDestinationRoutes(protected)
		h.registerReviewRoutes(protected)
		h.registerTripRoutes(protected)
		h.registerBookingRoutes(protected)
		h.registerUserRoutes(protected)
	}

	return router
}

func (h *Handler) registerDestinationRoutes(api *gin.RouterGroup) {
	destinations := api.Group("/destinations")
	{
		destinations.POST("", h.createDestination)
		destinations.GET("", h.listDestinations)
		destinations.GET("/top-rated", h.topRatedDestinations)
		destinations.GET("/search", h.searchDestinations)
		destinations.GET("/search/budget", h.searchDestinationsByBudget)
		destinations.GET("/:id", h.getDestination)
		destinations.PUT("/:id", h.updateDestination)
		destinations.DELETE("/:id", h.deleteDestination)
	}
}

func (h *Handler) registerReviewRoutes(api *gin.RouterGroup) {
	reviews := api.Group("/reviews")
	{
		reviews.POST("", h.createReview)
		reviews.GET("", h.listReviews)
		reviews.GET("/search", h.searchReviews)
		reviews.GET("/search/rating", h.searchReviewsByRating)
		reviews.GET("/:id", h.getReview)
		reviews.PUT("/:id", h.updateReview)
		reviews.DELETE("/:id", h.deleteReview)
	}
}

func (h *Handler) registerTripRoutes(api *gin.RouterGroup) {
	trips := api.Group("/trips")
	{
		trips.POST("", h.createTrip)
		trips.GET("", h.listTrips)
		trips.GET("/popular", h.popularTrips)
		trips.GET("/search", h.searchTrips)
		trips.GET("/me", h.myTrips)
		trips.GET("/:id", h.getTrip)
		trips.PUT("/:id", h.updateTrip)
		trips.DELETE("/:id", h.deleteTrip)
	}
}

func (h *Handler) registerBookingRoutes(api *gin.RouterGroup) {
	bookings := api.Group("/bookings")
	{
		bookings.POST("", h.createBooking)
		bookings.GET("", h.myBookings)
		bookings.GET("/search", h.searchBookings)
		bookings.GET("/upcoming", h.upcomingBookings)
		bookings.GET("/:id", h.getBooking)
		bookings.PUT("/:id", h.updateBooking)
		bookings.DELETE("/:id", h.deleteBooking)
	}
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.GET("", h.getProfile)
		users.PUT("", h.updateProfile)
		users.DELETE("", h.deleteProfile)
		users.GET("/upcoming-trips", h.upcomingTrips)
		users.GET("/past-trips", h.pastTrips)
		users.GET("/all-trips", h.allTrips)
		users.GET("/bookings", h.userBookings)
		users.GET("/reviews", h.userReviews)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a
// 400 JSON on failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return false
	}
	return true
}

// respondError maps service failures to status codes: invalid input is a 400
// with the failure text, a miss is a 404 with notFoundMsg, anything else a
// 500 with failMsg.
func (h *Handler) respondError(c *gin.Context, err error, logKey, notFoundMsg, failMsg string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoMatchingDestinations):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
	}
}
