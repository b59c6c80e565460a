package handlers

import (
	"net/http"

	"clampacked-backend/catalog"
	"clampacked-backend/dtos"
	"clampacked-backend/state"
	"clampacked-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegionHandler struct {
	State *state.Store
}

// GetRegions returns the tenant catalog as picker cards, in declaration
// order, with the active one flagged.
func (h *RegionHandler) GetRegions(c *gin.Context) {
	active := h.State.Region()

	type card struct {
		dtos.RegionSummary
		Active bool `json:"active"`
	}
	cards := make([]card, 0, len(catalog.Regions))
	for _, r := range catalog.ListRegions() {
		cards = append(cards, card{
			RegionSummary: dtos.SummarizeRegion(r),
			Active:        r.ID == active.ID,
		})
	}

	c.JSON(http.StatusOK, cards)
}

// GetActiveRegion returns the full active region configuration.
func (h *RegionHandler) GetActiveRegion(c *gin.Context) {
	c.JSON(http.StatusOK, h.State.Region())
}

// SetRegion switches the active tenant. The state layer treats an unknown id
// as a no-op that keeps the previous region; here it surfaces as a 404 so the
// admin screen can tell a typo from a successful switch.
func (h *RegionHandler) SetRegion(c *gin.Context) {
	var req dtos.SetRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if _, ok := catalog.GetRegion(req.RegionID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Region not found"})
		return
	}

	region, _ := h.State.SetRegionByID(req.RegionID)
	c.JSON(http.StatusOK, region)
}
