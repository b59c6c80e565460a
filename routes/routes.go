package routes

import (
	"time"

	"clampacked-backend/handlers"
	"clampacked-backend/middleware"
	"clampacked-backend/state"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, appState *state.Store) {
	// Initialize handlers
	regionHandler := &handlers.RegionHandler{State: appState}
	deliveryHandler := &handlers.DeliveryHandler{State: appState}
	sessionHandler := &handlers.SessionHandler{State: appState}
	orderHandler := &handlers.OrderHandler{State: appState}
	rideHandler := &handlers.RideHandler{State: appState}
	operatorHandler := &handlers.OperatorHandler{State: appState}

	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware())
	{
		// Region catalog
		api.GET("/regions", regionHandler.GetRegions)
		api.GET("/region", regionHandler.GetActiveRegion)

		// Delivery surface
		api.GET("/islands", deliveryHandler.GetIslands)
		api.GET("/islands/:id/schedule", deliveryHandler.GetIslandSchedule)
		api.GET("/islands/:id/next-delivery", deliveryHandler.GetNextDelivery)
		api.GET("/stores", deliveryHandler.GetStores)
		api.GET("/stores/:id", deliveryHandler.GetStore)
		api.GET("/ferry-status", deliveryHandler.GetFerryStatus)

		// Taxi surface
		api.GET("/taxi/locations", rideHandler.GetLocations)
		api.GET("/taxi/route", rideHandler.GetRouteQuote)
		api.GET("/taxi/rides", rideHandler.GetRides)

		// Draft session
		api.GET("/session", sessionHandler.GetSession)
		api.PUT("/session/mode", sessionHandler.SetMode)
		api.PUT("/session/island", sessionHandler.SelectIsland)
		api.PATCH("/session/order", orderHandler.UpdateOrder)
		api.DELETE("/session/order", orderHandler.ResetOrder)
		api.POST("/session/order/submit", orderHandler.SubmitOrder)
		api.PATCH("/session/ride", rideHandler.UpdateRide)
		api.DELETE("/session/ride", rideHandler.ResetRide)
		api.POST("/session/ride/submit", rideHandler.SubmitRide)
	}

	// Admin routes (region switching). Rate limited: a misbehaving admin
	// client hammering region switches would reset every live draft.
	admin := api.Group("/admin")
	admin.Use(middleware.NewRateLimiter(30, time.Minute).Middleware())
	{
		admin.PUT("/region", regionHandler.SetRegion)
	}

	// Operator console (read-only views)
	operator := api.Group("/operator")
	{
		operator.GET("/pricing", operatorHandler.GetPricing)
		operator.GET("/schedule", operatorHandler.GetSchedule)
		operator.GET("/captains", operatorHandler.GetCaptains)
		operator.GET("/stores", operatorHandler.GetStores)
		operator.GET("/support", operatorHandler.GetSupport)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
