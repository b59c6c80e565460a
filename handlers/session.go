package handlers

import (
	"net/http"

	"clampacked-backend/dtos"
	"clampacked-backend/middleware"
	"clampacked-backend/models"
	"clampacked-backend/state"
	"clampacked-backend/utils"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	State *state.Store
}

// sessionResponse derives the submit-button readiness from the drafted store's
// flow type. No store drafted (or a store id left over from another region)
// means not ready: the check fails closed.
func sessionResponse(st *state.Store, sess models.Session) dtos.SessionResponse {
	ready := false
	region := st.Region()
	if store := region.Store(sess.Order.StoreID); store != nil {
		ready = models.OrderReady(store.FlowType, sess.Order)
	}
	return dtos.SessionResponse{Session: sess, OrderReady: ready}
}

// GetSession returns the caller's draft snapshot.
func (h *SessionHandler) GetSession(c *gin.Context) {
	sess := h.State.Session(middleware.SessionID(c))
	c.JSON(http.StatusOK, sessionResponse(h.State, sess))
}

// SetMode sets the coarse navigation context. Drafts are untouched.
func (h *SessionHandler) SetMode(c *gin.Context) {
	var req dtos.SetModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	sess := h.State.SetMode(middleware.SessionID(c), models.ServiceMode(req.Mode))
	c.JSON(http.StatusOK, sessionResponse(h.State, sess))
}

// SelectIsland records the home-screen map shortcut. The island must be a
// delivery destination in the active region.
func (h *SessionHandler) SelectIsland(c *gin.Context) {
	var req dtos.SelectIslandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	region := h.State.Region()
	island := region.Island(req.IslandID)
	if island == nil || island.IsMainland {
		c.JSON(http.StatusNotFound, gin.H{"error": "Island not found"})
		return
	}

	sess := h.State.SetSelectedIsland(middleware.SessionID(c), req.IslandID)
	c.JSON(http.StatusOK, sessionResponse(h.State, sess))
}
