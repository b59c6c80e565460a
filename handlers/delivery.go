package handlers

import (
	"net/http"

	"clampacked-backend/catalog"
	"clampacked-backend/dtos"
	"clampacked-backend/models"
	"clampacked-backend/state"

	"github.com/gin-gonic/gin"
)

type DeliveryHandler struct {
	State *state.Store
}

// GetIslands lists the active region's delivery destinations with their
// soonest delivery date. Mainland hubs are taxi endpoints, not delivery
// destinations, so they are excluded here.
func (h *DeliveryHandler) GetIslands(c *gin.Context) {
	region := h.State.Region()

	islands := []dtos.IslandWithDelivery{}
	for _, isl := range region.DeliveryIslands() {
		entry := dtos.IslandWithDelivery{Island: isl}
		if next, ok := catalog.NextDelivery(isl.ID); ok {
			entry.NextDelivery = &next
		}
		islands = append(islands, entry)
	}

	c.JSON(http.StatusOK, islands)
}

// GetIslandSchedule returns the full upcoming schedule for one island. An
// island with no schedule gets an empty list, not an error.
func (h *DeliveryHandler) GetIslandSchedule(c *gin.Context) {
	region := h.State.Region()
	island := region.Island(c.Param("id"))
	if island == nil || island.IsMainland {
		c.JSON(http.StatusNotFound, gin.H{"error": "Island not found"})
		return
	}

	schedule := catalog.DeliverySchedules[island.ID]
	if schedule == nil {
		schedule = []models.DeliveryDate{}
	}
	c.JSON(http.StatusOK, gin.H{
		"island":   island,
		"schedule": schedule,
	})
}

// GetNextDelivery returns the soonest delivery date for one island.
func (h *DeliveryHandler) GetNextDelivery(c *gin.Context) {
	region := h.State.Region()
	island := region.Island(c.Param("id"))
	if island == nil || island.IsMainland {
		c.JSON(http.StatusNotFound, gin.H{"error": "Island not found"})
		return
	}

	next, ok := catalog.NextDelivery(island.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No upcoming deliveries for this island"})
		return
	}
	c.JSON(http.StatusOK, next)
}

// GetStores lists the active region's partner stores with flow labels.
func (h *DeliveryHandler) GetStores(c *gin.Context) {
	region := h.State.Region()

	stores := make([]dtos.StoreWithLabel, 0, len(region.Stores))
	for _, s := range region.Stores {
		stores = append(stores, dtos.StoreWithLabel{Store: s, FlowLabel: s.FlowType.Label()})
	}
	c.JSON(http.StatusOK, stores)
}

// GetStore returns one partner store.
func (h *DeliveryHandler) GetStore(c *gin.Context) {
	region := h.State.Region()
	store := region.Store(c.Param("id"))
	if store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}
	c.JSON(http.StatusOK, dtos.StoreWithLabel{Store: *store, FlowLabel: store.FlowType.Label()})
}

// GetFerryStatus returns the ferry disruption banner contents.
func (h *DeliveryHandler) GetFerryStatus(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.CurrentFerryStatus)
}
