package handlers

import (
	"net/http"

	"clampacked-backend/catalog"
	"clampacked-backend/dtos"
	"clampacked-backend/middleware"
	"clampacked-backend/state"
	"clampacked-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RideHandler struct {
	State *state.Store
}

// GetLocations lists every taxi endpoint in the active region, islands and
// mainland hubs alike.
func (h *RideHandler) GetLocations(c *gin.Context) {
	region := h.State.Region()
	c.JSON(http.StatusOK, region.Islands)
}

// GetRouteQuote returns the price/duration estimate for a route. Pair order
// doesn't matter. An unserved pair is a 404 and the screen shows its
// empty state.
func (h *RideHandler) GetRouteQuote(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	route, ok := catalog.RouteInfo(from, to)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No route between these locations"})
		return
	}

	c.JSON(http.StatusOK, dtos.RouteQuote{
		TaxiRoute: route,
		FromName:  catalog.LocationName(from),
		ToName:    catalog.LocationName(to),
	})
}

// GetRides lists scheduled departures serving a route in either direction.
// An empty list is a normal answer.
func (h *RideHandler) GetRides(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	c.JSON(http.StatusOK, catalog.RidesForRoute(from, to))
}

// UpdateRide merges a partial update into the ride draft.
func (h *RideHandler) UpdateRide(c *gin.Context) {
	var patch state.RidePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sess := h.State.SetRideDetails(middleware.SessionID(c), patch)
	c.JSON(http.StatusOK, sessionResponse(h.State, sess))
}

// ResetRide abandons the ride draft; passengers return to the floor of 1.
func (h *RideHandler) ResetRide(c *gin.Context) {
	sess := h.State.ResetRide(middleware.SessionID(c))
	c.JSON(http.StatusOK, sessionResponse(h.State, sess))
}

// SubmitRide confirms the booking: the drafted ride must still exist, the
// party has to fit in the remaining seats, and any contact phone given must
// be dialable. Bookings are session-only; the confirmation is the receipt.
func (h *RideHandler) SubmitRide(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	sess := h.State.Session(sessionID)

	if sess.Ride.RideID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No ride selected"})
		return
	}
	ride, ok := catalog.GetRide(sess.Ride.RideID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ride not found"})
		return
	}

	passengers := sess.Ride.Passengers
	if passengers < 1 {
		passengers = 1
	}
	if passengers > ride.SeatsLeft {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough seats left on this ride"})
		return
	}

	if sess.Ride.ContactPhone != "" && !utils.ValidContactPhone(sess.Ride.ContactPhone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Contact phone is not a valid number"})
		return
	}

	confirmation := dtos.RideConfirmation{
		BookingRef:    uuid.NewString(),
		FromName:      catalog.LocationName(ride.From),
		ToName:        catalog.LocationName(ride.To),
		Captain:       ride.Captain,
		DepartureTime: ride.DepartureTime,
		Passengers:    passengers,
		TotalPrice:    ride.Price * float64(passengers),
		ContactName:   sess.Ride.ContactName,
	}

	h.State.ResetRide(sessionID)

	c.JSON(http.StatusOK, confirmation)
}
