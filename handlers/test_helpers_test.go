package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"clampacked-backend/middleware"
	"clampacked-backend/state"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newState returns a store without persistence; the storage path is covered
// by the state and database package tests.
func newState() *state.Store {
	return state.NewStore(nil)
}

// setupTestRouter registers the full API surface against a fresh engine,
// minus the admin rate limiter so tests can hammer endpoints freely.
func setupTestRouter(st *state.Store) *gin.Engine {
	r := gin.New()

	regionHandler := &RegionHandler{State: st}
	deliveryHandler := &DeliveryHandler{State: st}
	sessionHandler := &SessionHandler{State: st}
	orderHandler := &OrderHandler{State: st}
	rideHandler := &RideHandler{State: st}
	operatorHandler := &OperatorHandler{State: st}

	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware())

	api.GET("/regions", regionHandler.GetRegions)
	api.GET("/region", regionHandler.GetActiveRegion)
	api.PUT("/admin/region", regionHandler.SetRegion)

	api.GET("/islands", deliveryHandler.GetIslands)
	api.GET("/islands/:id/schedule", deliveryHandler.GetIslandSchedule)
	api.GET("/islands/:id/next-delivery", deliveryHandler.GetNextDelivery)
	api.GET("/stores", deliveryHandler.GetStores)
	api.GET("/stores/:id", deliveryHandler.GetStore)
	api.GET("/ferry-status", deliveryHandler.GetFerryStatus)

	api.GET("/taxi/locations", rideHandler.GetLocations)
	api.GET("/taxi/route", rideHandler.GetRouteQuote)
	api.GET("/taxi/rides", rideHandler.GetRides)

	api.GET("/session", sessionHandler.GetSession)
	api.PUT("/session/mode", sessionHandler.SetMode)
	api.PUT("/session/island", sessionHandler.SelectIsland)
	api.PATCH("/session/order", orderHandler.UpdateOrder)
	api.DELETE("/session/order", orderHandler.ResetOrder)
	api.POST("/session/order/submit", orderHandler.SubmitOrder)
	api.PATCH("/session/ride", rideHandler.UpdateRide)
	api.DELETE("/session/ride", rideHandler.ResetRide)
	api.POST("/session/ride/submit", rideHandler.SubmitRide)

	api.GET("/operator/pricing", operatorHandler.GetPricing)
	api.GET("/operator/schedule", operatorHandler.GetSchedule)
	api.GET("/operator/captains", operatorHandler.GetCaptains)
	api.GET("/operator/stores", operatorHandler.GetStores)
	api.GET("/operator/support", operatorHandler.GetSupport)

	return r
}

// jsonRequest builds a request with an optional JSON body and session id.
func jsonRequest(method, url string, body interface{}, sessionID string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}
	return req
}

func parseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func parseResponseArray(w *httptest.ResponseRecorder) []map[string]interface{} {
	var resp []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}
