package handlers

import (
	"net/http"

	"clampacked-backend/dtos"
	"clampacked-backend/middleware"
	"clampacked-backend/models"
	"clampacked-backend/state"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	State *state.Store
}

// UpdateOrder merges a partial update into the order draft. The wizard sends
// one field per screen, so nothing is validated here; readiness is a derived
// value the client reads back.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var patch state.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sess := h.State.SetOrderDetails(middleware.SessionID(c), patch)
	c.JSON(http.StatusOK, sessionResponse(h.State, sess))
}

// ResetOrder abandons the order draft.
func (h *OrderHandler) ResetOrder(c *gin.Context) {
	sess := h.State.ResetOrder(middleware.SessionID(c))
	c.JSON(http.StatusOK, sessionResponse(h.State, sess))
}

// SubmitOrder finalizes the draft. The flow-type check is fail closed: a
// store id that no longer resolves, or a flow type this build doesn't know,
// can never submit.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	sess := h.State.Session(sessionID)
	region := h.State.Region()

	store := region.Store(sess.Order.StoreID)
	if store == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No store selected"})
		return
	}

	if !models.OrderReady(store.FlowType, sess.Order) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order is missing required details"})
		return
	}

	confirmation := dtos.OrderConfirmation{
		ConfirmationID: uuid.NewString(),
		StoreName:      store.Name,
		FlowType:       store.FlowType,
		DeliveryDate:   sess.Order.DeliveryDate,
		DeliveryFee:    region.BaseDeliveryFee,
	}
	if island := region.Island(sess.Order.IslandID); island != nil {
		confirmation.IslandName = island.Name
	}

	// Orders are not persisted; the confirmation is the whole outcome and
	// the draft is done.
	h.State.ResetOrder(sessionID)

	c.JSON(http.StatusOK, confirmation)
}
