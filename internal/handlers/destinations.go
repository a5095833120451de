package handlers

import (
	"net/http"
	"strconv"

	"travelplanner/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	errNameRequired      = "Name is required."
	errBudgetRequired    = "Min and max budget are required."
	errDestinationMissed = "Destination not found."
)

type destinationRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Budget      float64  `json:"budget"`
	ImageURL    string   `json:"imageUrl"`
	Attractions []string `json:"attractions"`
}

// parseRange reads the min/max query pair; both bounds are mandatory, so a
// missing or malformed one fails before any store access.
func parseRange(c *gin.Context, missingMsg string) (min, max float64, ok bool) {
	minStr, maxStr := c.Query("min"), c.Query("max")
	if minStr == "" || maxStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": missingMsg})
		return 0, 0, false
	}
	min, errMin := strconv.ParseFloat(minStr, 64)
	max, errMax := strconv.ParseFloat(maxStr, 64)
	if errMin != nil || errMax != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": missingMsg})
		return 0, 0, false
	}
	return min, max, true
}

// @Summary      Create destination
// @Tags         destinations
// @Accept       json
// @Produce      json
// @Param        body  body  destinationRequest  true  "Destination"
// @Success      201  {object}  models.Destination
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/destinations [post]
// @Security     BearerAuth
func (h *Handler) createDestination(c *gin.Context) {
	var req destinationRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errNameRequired})
		return
	}

	created, err := h.services.Destinations.Create(c.Request.Context(), models.Destination{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Budget:      req.Budget,
		ImageURL:    req.ImageURL,
		Attractions: req.Attractions,
	})
	if err != nil {
		h.respondError(c, err, "destination_create_failed", errDestinationMissed, "Failed to create destination.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      List destinations
// @Tags         destinations
// @Produce      json
// @Success      200  {array}  models.Destination
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/destinations [get]
// @Security     BearerAuth
func (h *Handler) listDestinations(c *gin.Context) {
	dests, err := h.services.Destinations.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "destination_list_failed", errDestinationMissed, "Failed to fetch destinations.")
		return
	}
	c.JSON(http.StatusOK, dests)
}

// @Summary      Top-rated destinations
// @Description  Destinations whose mean review rating is at least 4.0, best first.
// @Tags         destinations
// @Produce      json
// @Success      200  {array}  models.Destination
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/destinations/top-rated [get]
// @Security     BearerAuth
func (h *Handler) topRatedDestinations(c *gin.Context) {
	dests, err := h.services.Destinations.TopRated(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "destination_top_rated_failed", errDestinationMissed, "Failed to fetch top-rated destinations.")
		return
	}
	c.JSON(http.StatusOK, dests)
}

// @Summary      Search destinations
// @Description  Case-insensitive substring match on name or category.
// @Tags         destinations
// @Produce      json
// @Param        name      query  string  false  "Name fragment"
// @Param        category  query  string  false  "Category fragment"
// @Success      200  {array}  models.Destination
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/destinations/search [get]
// @Security     BearerAuth
func (h *Handler) searchDestinations(c *gin.Context) {
	name := c.Query("name")
	category := c.Query("category")

	var (
		dests []models.Destination
		err   error
	)
	switch {
	case name != "":
		dests, err = h.services.Destinations.SearchByName(c.Request.Context(), name)
	case category != "":
		dests, err = h.services.Destinations.SearchByCategory(c.Request.Context(), category)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": errNameRequired})
		return
	}
	if err != nil {
		h.respondError(c, err, "destination_search_failed", errDestinationMissed, "Failed to search destinations.")
		return
	}
	c.JSON(http.StatusOK, dests)
}

// @Summary      Search destinations by budget
// @Tags         destinations
// @Produce      json
// @Param        min  query  number  true  "Minimum budget (inclusive)"
// @Param        max  query  number  true  "Maximum budget (inclusive)"
// @Success      200  {array}  models.Destination
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/destinations/search/budget [get]
// @Security     BearerAuth
func (h *Handler) searchDestinationsByBudget(c *gin.Context) {
	min, max, ok := parseRange(c, errBudgetRequired)
	if !ok {
		return
	}
	dests, err := h.services.Destinations.SearchByBudgetRange(c.Request.Context(), min, max)
	if err != nil {
		h.respondError(c, err, "destination_budget_search_failed", errDestinationMissed, "Failed to search destinations.")
		return
	}
	c.JSON(http.StatusOK, dests)
}

// @Summary      Get destination
// @Tags         destinations
// @Produce      json
// @Param        id  path  string  true  "Destination id"
// @Success      200  {object}  models.Destination
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/destinations/{id} [get]
// @Security     BearerAuth
func (h *Handler) getDestination(c *gin.Context) {
	d, err := h.services.Destinations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "destination_get_failed", errDestinationMissed, "Failed to fetch destination.")
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary      Update destination
// @Tags         destinations
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Destination id"
// @Param        body  body  models.DestinationUpdate  true  "Fields to change"
// @Success      200  {object}  models.Destination
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/destinations/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateDestination(c *gin.Context) {
	var upd models.DestinationUpdate
	if ok := h.bindJSONOrBadRequest(c, &upd); !ok {
		return
	}
	d, err := h.services.Destinations.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		h.respondError(c, err, "destination_update_failed", errDestinationMissed, "Failed to update destination.")
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary      Delete destination
// @Tags         destinations
// @Produce      json
// @Param        id  path  string  true  "Destination id"
// @Success      200  {object}  models.Destination
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/destinations/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteDestination(c *gin.Context) {
	d, err := h.services.Destinations.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "destination_delete_failed", errDestinationMissed, "Failed to delete destination.")
		return
	}
	c.JSON(http.StatusOK, d)
}
