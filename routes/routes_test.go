package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clampacked-backend/state"

	"github.com/gin-gonic/gin"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, state.NewStore(nil))
	return r
}

func TestHealthCheck(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestPublicRoutesRegistered(t *testing.T) {
	router := testRouter()

	paths := []string{
		"/api/regions",
		"/api/region",
		"/api/islands",
		"/api/stores",
		"/api/ferry-status",
		"/api/taxi/locations",
		"/api/session",
		"/api/operator/pricing",
		"/api/operator/schedule",
		"/api/operator/captains",
		"/api/operator/stores",
		"/api/operator/support",
	}

	for _, path := range paths {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/unknown", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestSessionEndpointsSetHeader(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/session", nil))

	if w.Header().Get("X-Session-ID") == "" {
		t.Error("session middleware should be installed on /api")
	}
}
